package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
)

const markerRadius = 5

// RenderSystem draws the scene from above: model footprints shaded by their
// material and baked lightmap, light and camera markers on top.
type RenderSystem struct {
	view  *View
	debug bool
}

func NewRenderSystem(view *View, debug bool) *RenderSystem {
	return &RenderSystem{view: view, debug: debug}
}

func (r *RenderSystem) Update(w *ecs.World) {}

type drawItem struct {
	e      ecs.Entity
	model  *component.Model
	pose   ecs.Pose
	bottom float64
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil || r.view == nil {
		return
	}
	screen.Fill(clearColor(w))

	var items []drawItem
	ecs.ForEach(w, component.ModelComponent.Kind(), func(e ecs.Entity, m *component.Model) {
		if !m.Enabled || !w.EnabledInHierarchy(e) || hasLayer(m.Layers, component.LayerUI) {
			return
		}
		pose := ecs.WorldPose(w, e)
		items = append(items, drawItem{e: e, model: m, pose: pose, bottom: pose.Position.Y - pose.Scale.Y/2})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].bottom < items[j].bottom })

	for _, it := range items {
		fill := ModelColor(w, it.e, it.model)
		switch it.model.Type {
		case component.ModelTypeAsset:
			r.drawAsset(screen, it)
		case component.ModelTypeSphere:
			x, y := r.view.ToScreen(it.pose.Position.X, it.pose.Position.Z)
			radius := it.pose.Scale.X / 2 * r.view.Scale()
			vector.FillCircle(screen, float32(x), float32(y), float32(radius), fill, true)
		default:
			x0, y0 := r.view.ToScreen(it.pose.Position.X-it.pose.Scale.X/2, it.pose.Position.Z-it.pose.Scale.Z/2)
			s := r.view.Scale()
			vector.FillRect(screen, float32(x0), float32(y0), float32(it.pose.Scale.X*s), float32(it.pose.Scale.Z*s), fill, false)
		}
	}

	ecs.ForEach(w, component.LightComponent.Kind(), func(e ecs.Entity, l *component.Light) {
		if !l.Enabled || !w.EnabledInHierarchy(e) {
			return
		}
		p := ecs.WorldPosition(w, e)
		x, y := r.view.ToScreen(p.X, p.Z)
		vector.StrokeCircle(screen, float32(x), float32(y), markerRadius, 1.5, l.Color.NRGBA(), true)
	})

	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, c *component.Camera) {
		if !c.Enabled || !w.EnabledInHierarchy(e) {
			return
		}
		r.drawCamera(screen, ecs.WorldPose(w, e))
	})

	if r.debug {
		r.drawDebug(w, screen)
	}
}

func (r *RenderSystem) drawAsset(screen *ebiten.Image, it drawItem) {
	m := it.model.Asset.Model()
	if m == nil {
		return
	}
	s := r.view.Scale()
	for _, mesh := range m.Meshes {
		x0, y0 := r.view.ToScreen(it.pose.Position.X+mesh.Min[0]*it.pose.Scale.X, it.pose.Position.Z+mesh.Min[2]*it.pose.Scale.Z)
		wdt := (mesh.Max[0] - mesh.Min[0]) * it.pose.Scale.X * s
		hgt := (mesh.Max[2] - mesh.Min[2]) * it.pose.Scale.Z * s
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(math.Max(wdt, 1)), float32(math.Max(hgt, 1)), 2, colornames.Slategray, false)
	}
}

func (r *RenderSystem) drawCamera(screen *ebiten.Image, pose ecs.Pose) {
	x, y := r.view.ToScreen(pose.Position.X, pose.Position.Z)
	forward := pose.Rotation.MulVec(common.Vec3{Z: -1})
	fx, fy := x+forward.X*markerRadius*3, y+forward.Z*markerRadius*3
	vector.FillCircle(screen, float32(x), float32(y), markerRadius, colornames.Orange, true)
	vector.StrokeLine(screen, float32(x), float32(y), float32(fx), float32(fy), 2, colornames.Orange, true)
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	input := InputState(w)
	text := fmt.Sprintf("entities: %d\nFPS: %.0f", len(ecs.Entities(w)), ebiten.ActualFPS())
	if input.CursorValid {
		text += fmt.Sprintf("\ncursor: %.2f, %.2f", input.Cursor.X, input.Cursor.Y)
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

// ModelColor is the flat color a model is drawn with: its material's diffuse
// modulated by the baked lightmap, plus emission.
func ModelColor(w *ecs.World, e ecs.Entity, m *component.Model) color.NRGBA {
	base := common.White
	var emissive common.Color
	if mat := m.MaterialAsset.Material(); mat != nil {
		base = common.Color{R: mat.Diffuse[0], G: mat.Diffuse[1], B: mat.Diffuse[2], A: mat.Opacity}
		emissive = common.Color{R: mat.Emissive[0], G: mat.Emissive[1], B: mat.Emissive[2]}.Scale(mat.EmissiveIntensity)
	}
	if m.Lightmapped {
		if lm, ok := ecs.Get(w, e, component.LightmapComponent.Kind()); ok {
			base = base.Mul(common.Color{R: lm.Color.R, G: lm.Color.G, B: lm.Color.B, A: 1})
		}
	}
	return base.Add(emissive).NRGBA()
}

func clearColor(w *ecs.World) color.Color {
	var (
		best  *component.Camera
		found bool
	)
	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, c *component.Camera) {
		if !c.Enabled || !w.EnabledInHierarchy(e) {
			return
		}
		if !found || c.Priority > best.Priority {
			best, found = c, true
		}
	})
	if !found {
		return colornames.Black
	}
	return best.ClearColor.NRGBA()
}

func hasLayer(layers []component.Layer, layer component.Layer) bool {
	for _, l := range layers {
		if l == layer {
			return true
		}
	}
	return false
}
