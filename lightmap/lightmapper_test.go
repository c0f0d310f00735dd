package lightmap

import (
	"testing"

	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
)

func addModel(t *testing.T, w *ecs.World, x, y, z float64, lightmapped bool) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	tr := component.NewTransform()
	tr.Translate(x, y, z)
	model := component.DefaultModel()
	model.Type = component.ModelTypeBox
	model.Lightmapped = lightmapped
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ModelComponent.Kind(), &model); err != nil {
		t.Fatal(err)
	}
	return e
}

func addSpot(t *testing.T, w *ecs.World, x, y, z float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	tr := component.NewTransform()
	tr.Translate(x, y, z)
	light := component.DefaultLight()
	light.Type = component.LightTypeSpot
	light.Bake = true
	light.Intensity = 4
	light.Range = 30
	light.FalloffMode = component.FalloffInverseSquared
	light.InnerConeAngle = 40
	light.OuterConeAngle = 75
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.LightComponent.Kind(), &light); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestBake(t *testing.T) {
	w := ecs.NewWorld()
	ambient := common.RGB255(51, 51, 51)
	lm := New(w, Settings{Ambient: ambient, SizeMultiplier: 32, MaxResolution: 2048})

	lit := addModel(t, w, 0, 1, 0, true)
	far := addModel(t, w, 100, 1, 0, true)
	plain := addModel(t, w, 0, 1, 0, false)
	addSpot(t, w, 0, 9, 0)

	if n := lm.Bake(nil, BakeColorDir); n != 2 {
		t.Fatalf("baked %d models, want 2", n)
	}

	got, ok := ecs.Get(w, lit, component.LightmapComponent.Kind())
	if !ok {
		t.Fatal("lit model has no lightmap")
	}
	if got.Color.R <= ambient.R {
		t.Fatalf("lit color %+v not brighter than ambient", got.Color)
	}
	if got.Resolution != 32 {
		t.Fatalf("resolution = %d, want 32", got.Resolution)
	}
	if got.Direction.Y >= 0 {
		t.Fatalf("direction %+v should point down", got.Direction)
	}

	farMap, _ := ecs.Get(w, far, component.LightmapComponent.Kind())
	if farMap.Color != (common.Color{R: ambient.R, G: ambient.G, B: ambient.B, A: 1}) {
		t.Fatalf("out of range color = %+v, want ambient", farMap.Color)
	}
	if ecs.Has(w, plain, component.LightmapComponent.Kind()) {
		t.Fatal("non-lightmapped model was baked")
	}
}

func TestBakeSubsetAndDisabledLights(t *testing.T) {
	w := ecs.NewWorld()
	lm := New(w, Settings{SizeMultiplier: 1, MaxResolution: 4})

	parent := w.CreateEntity()
	child := addModel(t, w, 0, 0, 0, true)
	if err := w.AddChild(parent, child); err != nil {
		t.Fatal(err)
	}
	other := addModel(t, w, 5, 0, 0, true)
	light := addSpot(t, w, 0, 5, 0)
	w.SetEnabled(light, false)

	if n := lm.Bake([]ecs.Entity{parent}, BakeColor); n != 1 {
		t.Fatalf("baked %d, want 1", n)
	}
	got, _ := ecs.Get(w, child, component.LightmapComponent.Kind())
	if got.Color.R != 0 || got.Direction != (common.Vec3{}) {
		t.Fatalf("disabled light contributed: %+v", got)
	}
	if ecs.Has(w, other, component.LightmapComponent.Kind()) {
		t.Fatal("entity outside the subset was baked")
	}
}

func TestNextPow2(t *testing.T) {
	for in, want := range map[int]int{0: 1, 1: 1, 3: 4, 32: 32, 807: 1024} {
		if got := nextPow2(in); got != want {
			t.Fatalf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}
