package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
)

func TestViewRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		x, z float64
	}{
		{"origin", 0, 0},
		{"positive", 3.5, 2},
		{"negative", -12.5, -7.25},
	}
	v := NewView(1280, 720)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sx, sy := v.ToScreen(c.x, c.z)
			x, z := v.ToWorld(sx, sy)
			if math.Abs(x-c.x) > 1e-9 || math.Abs(z-c.z) > 1e-9 {
				t.Fatalf("round trip = (%v, %v), want (%v, %v)", x, z, c.x, c.z)
			}
		})
	}
	if sx, sy := v.ToScreen(0, 0); sx != 640 || sy != 360 {
		t.Fatalf("origin maps to (%v, %v)", sx, sy)
	}
}

func TestModelColor(t *testing.T) {
	red := &assets.Asset{Kind: assets.KindMaterial, Loaded: true, Resource: &assets.Material{Diffuse: [3]float64{1, 0, 0}, Opacity: 1}}
	glow := &assets.Asset{Kind: assets.KindMaterial, Loaded: true, Resource: &assets.Material{Emissive: [3]float64{0, 0, 1}, EmissiveIntensity: 1, Opacity: 1}}

	cases := []struct {
		name     string
		model    component.Model
		lightmap *component.Lightmap
		want     color.NRGBA
	}{
		{"no_material", component.Model{}, nil, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"diffuse", component.Model{MaterialAsset: red}, nil, color.NRGBA{R: 255, A: 255}},
		{"lightmapped", component.Model{MaterialAsset: red, Lightmapped: true}, &component.Lightmap{Color: common.Color{R: 0.5, G: 0.5, B: 0.5}}, color.NRGBA{R: 128, A: 255}},
		{"lightmap_ignored_when_off", component.Model{MaterialAsset: red}, &component.Lightmap{Color: common.Color{R: 0.5}}, color.NRGBA{R: 255, A: 255}},
		{"emissive", component.Model{MaterialAsset: glow}, nil, color.NRGBA{B: 255, A: 255}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			m := c.model
			if c.lightmap != nil {
				if err := ecs.Add(w, e, component.LightmapComponent.Kind(), c.lightmap); err != nil {
					t.Fatalf("add lightmap: %v", err)
				}
			}
			if got := ModelColor(w, e, &m); got != c.want {
				t.Fatalf("ModelColor = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestUIHelpers(t *testing.T) {
	w := ecs.NewWorld()
	screen := named(t, w, "2D Screen")
	if err := ecs.Add(w, screen, component.ScreenComponent.Kind(), &component.Screen{ScreenSpace: true, Enabled: true}); err != nil {
		t.Fatalf("add screen: %v", err)
	}
	button := named(t, w, "Button")
	label := named(t, w, "Text")
	if err := w.AddChild(screen, button); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := w.AddChild(button, label); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	el := component.DefaultElement()
	el.Type = component.ElementTypeText
	el.Text = "VR"
	if err := ecs.Add(w, label, component.ElementComponent.Kind(), &el); err != nil {
		t.Fatalf("add element: %v", err)
	}

	if got, ok := findScreen(w); !ok || got != screen {
		t.Fatalf("findScreen = %v, %v", got, ok)
	}
	if got, gotEl, ok := buttonLabel(w, button); !ok || got != label || gotEl.Text != "VR" {
		t.Fatalf("buttonLabel = %v, %v", got, ok)
	}
	if !elementVisible(w, label) {
		t.Fatalf("label should be visible")
	}
	w.SetEnabled(button, false)
	if elementVisible(w, label) {
		t.Fatalf("label visible under a disabled button")
	}
	w.SetEnabled(button, true)
	el.Enabled = false
	if elementVisible(w, label) {
		t.Fatalf("label visible with a disabled element")
	}
}
