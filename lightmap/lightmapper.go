// Package lightmap bakes static lighting for lightmapped models.
package lightmap

import (
	"log"
	"math"

	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
)

type Mode int

const (
	// BakeColor stores the accumulated light color only.
	BakeColor Mode = iota
	// BakeColorDir also stores the dominant light direction.
	BakeColorDir
)

type Settings struct {
	Ambient        common.Color
	SizeMultiplier float64
	MaxResolution  int
}

// Lightmapper evaluates every baked light at each lightmapped model.
type Lightmapper struct {
	world    *ecs.World
	settings Settings
}

func New(w *ecs.World, settings Settings) *Lightmapper {
	return &Lightmapper{world: w, settings: settings}
}

func (l *Lightmapper) Settings() Settings {
	return l.settings
}

func (l *Lightmapper) SetSettings(s Settings) {
	l.settings = s
}

type bakeLight struct {
	light *component.Light
	pose  ecs.Pose
}

// Bake writes a Lightmap component to each lightmapped model among nodes and
// their descendants. A nil nodes slice bakes every entity. It returns the
// number of models baked.
func (l *Lightmapper) Bake(nodes []ecs.Entity, mode Mode) int {
	w := l.world
	var targets []ecs.Entity
	if nodes == nil {
		targets = w.Entities()
	} else {
		seen := map[ecs.Entity]struct{}{}
		for _, n := range nodes {
			for _, e := range append([]ecs.Entity{n}, w.Descendants(n)...) {
				if _, ok := seen[e]; !ok {
					seen[e] = struct{}{}
					targets = append(targets, e)
				}
			}
		}
	}

	var lights []bakeLight
	ecs.ForEach(w, component.LightComponent.Kind(), func(e ecs.Entity, light *component.Light) {
		if !light.Bake || !light.Enabled || !w.EnabledInHierarchy(e) {
			return
		}
		lights = append(lights, bakeLight{light: light, pose: ecs.WorldPose(w, e)})
	})

	baked := 0
	for _, e := range targets {
		model, ok := ecs.Get(w, e, component.ModelComponent.Kind())
		if !ok || !model.Lightmapped {
			continue
		}
		pose := ecs.WorldPose(w, e)
		center, extent := footprint(model, pose)

		color := l.settings.Ambient
		var dir common.Vec3
		for _, bl := range lights {
			c, incoming := contribution(bl, center)
			color = color.Add(c)
			lum := (c.R + c.G + c.B) / 3
			dir = dir.Add(incoming.Scale(lum))
		}
		color.A = 1

		lm := &component.Lightmap{Color: color, Resolution: l.resolution(model, extent)}
		if mode == BakeColorDir {
			lm.Direction = dir.Normalize()
		}
		if err := ecs.Add(w, e, component.LightmapComponent.Kind(), lm); err != nil {
			log.Printf("lightmap: bake %v: %v", e, err)
			continue
		}
		baked++
	}
	log.Printf("lightmap: baked %d models from %d lights", baked, len(lights))
	return baked
}

// footprint returns the world-space sample point and the XZ extent of a model.
func footprint(model *component.Model, pose ecs.Pose) (common.Vec3, common.Vec2) {
	lo := common.Vec3{X: -0.5, Y: -0.5, Z: -0.5}
	hi := common.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	if m := model.Asset.Model(); model.Type == component.ModelTypeAsset && m != nil {
		a, b := m.Bounds()
		lo = common.Vec3{X: a[0], Y: a[1], Z: a[2]}
		hi = common.Vec3{X: b[0], Y: b[1], Z: b[2]}
	}
	local := lo.Add(hi).Scale(0.5)
	center := pose.Position.Add(pose.Rotation.MulVec(pose.Scale.Mul(local)))
	size := hi.Sub(lo).Mul(pose.Scale)
	return center, common.Vec2{X: math.Abs(size.X), Y: math.Abs(size.Z)}
}

func (l *Lightmapper) resolution(model *component.Model, extent common.Vec2) int {
	mult := l.settings.SizeMultiplier
	if mult <= 0 {
		mult = 1
	}
	if model.LightmapSizeMultiplier > 0 {
		mult *= model.LightmapSizeMultiplier
	}
	size := math.Sqrt(extent.X*extent.Y) * mult
	res := nextPow2(int(math.Ceil(size)))
	if l.settings.MaxResolution > 0 && res > l.settings.MaxResolution {
		res = l.settings.MaxResolution
	}
	return res
}

// contribution returns the light arriving at p and the unit direction it
// travels in.
func contribution(bl bakeLight, p common.Vec3) (common.Color, common.Vec3) {
	light := bl.light
	base := light.Color.Scale(light.Intensity)
	if light.Type == component.LightTypeDirectional {
		return base, bl.pose.Down()
	}

	d := p.Sub(bl.pose.Position)
	dist := d.Length()
	if light.Range > 0 && dist > light.Range {
		return common.Color{}, common.Vec3{}
	}
	dir := d.Normalize()
	atten := falloff(light, dist)

	if light.Type == component.LightTypeSpot {
		cosAngle := dir.Dot(bl.pose.Down())
		inner := math.Cos(common.DegToRad(light.InnerConeAngle))
		outer := math.Cos(common.DegToRad(light.OuterConeAngle))
		atten *= common.Smoothstep(outer, inner, cosAngle)
	}
	return base.Scale(atten), dir
}

func falloff(light *component.Light, dist float64) float64 {
	if light.Range <= 0 {
		return 1
	}
	if light.FalloffMode == component.FalloffInverseSquared {
		r := dist / light.Range
		window := common.Clamp01(1 - r*r*r*r)
		return window * window / (dist*dist + 1)
	}
	return common.Clamp01(1 - dist/light.Range)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
