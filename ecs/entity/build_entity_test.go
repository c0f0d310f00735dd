package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
	"github.com/milk9111/vrroom/prefabs"
)

type finderFunc func(name string, kind assets.Kind) *assets.Asset

func (f finderFunc) Find(name string, kind assets.Kind) *assets.Asset { return f(name, kind) }

func onlyFont(name string, kind assets.Kind) *assets.Asset {
	if kind == assets.KindFont {
		return &assets.Asset{Name: name, Kind: kind, Loaded: true}
	}
	return nil
}

func TestBuildScreenPrefab(t *testing.T) {
	w := ecs.NewWorld()
	screen, err := BuildEntity(w, 0, "screen.yaml", finderFunc(onlyFont))
	if err != nil {
		t.Fatalf("BuildEntity: %v", err)
	}

	if got := len(w.Children(screen)); got != 3 {
		t.Fatalf("screen children = %d, want 3", got)
	}
	button, ok := FindByName(w, screen, "Button")
	if !ok {
		t.Fatal("Button not found")
	}
	b, ok := ecs.Get(w, button, component.ButtonComponent.Kind())
	if !ok || ecs.Entity(b.ImageEntity) != button {
		t.Fatalf("button image entity = %v, want %v", b, button)
	}
	if b.InactiveTint != common.RGB255(0, 0, 20) {
		t.Fatalf("inactive tint = %+v", b.InactiveTint)
	}

	text, _ := FindByName(w, button, "Text")
	el, ok := ecs.Get(w, text, component.ElementComponent.Kind())
	if !ok || el.Text != "VR" || el.FontSize != 48 || el.Type != component.ElementTypeText {
		t.Fatalf("button text = %+v", el)
	}
	if el.FontAsset == nil || el.FontAsset.Name != "Montserrat-Black.json" {
		t.Fatalf("font asset = %+v", el.FontAsset)
	}

	s, ok := ecs.Get(w, screen, component.ScreenComponent.Kind())
	if !ok || !s.ScreenSpace || s.ScaleMode != component.ScaleModeBlend || s.ReferenceResolution != (common.Vec2{X: 1280, Y: 960}) {
		t.Fatalf("screen = %+v", s)
	}
	if p := Transform(w, screen).Position; p != (common.Vec3{Y: 4}) {
		t.Fatalf("screen position = %+v", p)
	}
}

func TestBuildResolvesEntityReferences(t *testing.T) {
	w := ecs.NewWorld()
	rig, err := BuildEntity(w, 0, "camera_rig.yaml", nil)
	if err != nil {
		t.Fatalf("BuildEntity: %v", err)
	}
	camera, ok := FindByName(w, rig, "Camera")
	if !ok {
		t.Fatal("Camera not found")
	}
	s, ok := ecs.Get(w, rig, component.ScriptComponent.Kind())
	if !ok {
		t.Fatal("rig has no script")
	}
	inst := s.Get("camera-controller")
	if inst == nil || inst.Attributes["camera"] != camera || inst.Attributes["height"] != 1.6 {
		t.Fatalf("camera-controller attrs = %+v", inst)
	}
	cam, _ := ecs.Get(w, camera, component.CameraComponent.Kind())
	if cam.ClearColor != common.RGB255(184, 184, 184) {
		t.Fatalf("clear color = %+v", cam.ClearColor)
	}
}

func TestMissingAssetYieldsNilReference(t *testing.T) {
	w := ecs.NewWorld()
	box, err := BuildEntity(w, 0, "box.yaml", finderFunc(func(string, assets.Kind) *assets.Asset { return nil }))
	if err != nil {
		t.Fatalf("BuildEntity: %v", err)
	}
	m, ok := ecs.Get(w, box, component.ModelComponent.Kind())
	if !ok || m.MaterialAsset != nil || m.Type != component.ModelTypeBox || !m.Lightmapped {
		t.Fatalf("model = %+v", m)
	}
	tags, _ := ecs.Get(w, box, component.TagsComponent.Kind())
	if !tags.Has(component.TagPickable) || !tags.Has(component.TagInteractive) {
		t.Fatalf("tags = %v", tags.List())
	}
}

func TestFailedAssetYieldsNilReference(t *testing.T) {
	failed := &assets.Asset{Name: "Box.json", Kind: assets.KindMaterial, Err: errors.New("read failed")}
	w := ecs.NewWorld()
	box, err := BuildEntity(w, 0, "box.yaml", finderFunc(func(string, assets.Kind) *assets.Asset { return failed }))
	if err != nil {
		t.Fatalf("BuildEntity: %v", err)
	}
	m, ok := ecs.Get(w, box, component.ModelComponent.Kind())
	if !ok || m.MaterialAsset != nil {
		t.Fatalf("model = %+v", m)
	}
}

func TestAddComponentDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewEntity(w, 0, "Light")
	if err != nil {
		t.Fatal(err)
	}
	intensity := 0.4
	if err := AddComponent(w, e, "light", prefabs.LightComponentSpec{Intensity: &intensity}, nil); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	l, _ := ecs.Get(w, e, component.LightComponent.Kind())
	want := component.DefaultLight()
	want.Intensity = 0.4
	if l.Intensity != want.Intensity || l.Type != want.Type || l.Range != want.Range || l.Color != want.Color {
		t.Fatalf("light = %+v", l)
	}

	tests := []struct {
		name string
		kind string
		raw  any
	}{
		{"unknown kind", "sound", nil},
		{"bad model type", "model", map[string]any{"type": "teapot"}},
		{"bad layer", "light", map[string]any{"layers": []any{"sky"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := AddComponent(w, e, tt.kind, tt.raw, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestScriptInstancesMerge(t *testing.T) {
	w := ecs.NewWorld()
	root, _ := NewEntity(w, 0, "Root")
	for _, name := range []string{"vr", "controllers"} {
		spec := prefabs.ScriptComponentSpec{Instances: []prefabs.ScriptInstanceSpec{{Name: name}}}
		if err := AddComponent(w, root, "script", spec, nil); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	dup := prefabs.ScriptComponentSpec{Instances: []prefabs.ScriptInstanceSpec{{Name: "vr"}}}
	if err := AddComponent(w, root, "script", dup, nil); err == nil {
		t.Fatal("duplicate script accepted")
	}
	s, _ := ecs.Get(w, root, component.ScriptComponent.Kind())
	if len(s.Instances) != 2 {
		t.Fatalf("instances = %d, want 2", len(s.Instances))
	}
}
