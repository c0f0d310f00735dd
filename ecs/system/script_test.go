package system

import (
	"math"
	"testing"

	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
	"github.com/milk9111/vrroom/script"
)

type pickerFunc func(x, z float64) (ecs.Entity, bool)

func (f pickerFunc) Pick(x, z float64) (ecs.Entity, bool) { return f(x, z) }

func mustRegistry(t *testing.T, files ...string) *script.Registry {
	t.Helper()
	reg := script.NewRegistry()
	for _, f := range files {
		src, err := assets.LoadFile("scripts/" + f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		typ, err := script.Parse(src)
		if err != nil {
			t.Fatalf("parse %s: %v", f, err)
		}
		reg.Register(typ)
	}
	return reg
}

func named(t *testing.T, w *ecs.World, name string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		t.Fatalf("add name: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform()); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func attachScript(t *testing.T, w *ecs.World, e ecs.Entity, name string, attrs map[string]any) {
	t.Helper()
	sc, ok := ecs.Get(w, e, component.ScriptComponent.Kind())
	if !ok {
		def := component.DefaultScript()
		sc = &def
		if err := ecs.Add(w, e, component.ScriptComponent.Kind(), sc); err != nil {
			t.Fatalf("add script: %v", err)
		}
	}
	sc.Create(name, attrs)
}

func TestVRScriptTogglesScreenElements(t *testing.T) {
	cases := []struct {
		name                        string
		xr, secure                  bool
		wantButton, wantUnsupported bool
		wantHTTPS                   bool
	}{
		{"no_xr", false, false, false, true, false},
		{"xr_insecure", true, false, false, false, true},
		{"xr_secure", true, true, true, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			root := named(t, w, "Root")
			button := named(t, w, "Button")
			unsupported := named(t, w, "Text Unsupported")
			https := named(t, w, "Text HTTPS required")
			camera := named(t, w, "Camera")
			attachScript(t, w, root, "vr", map[string]any{
				"buttonVr":             button,
				"elementUnsupported":   unsupported,
				"elementHttpsRequired": https,
				"cameraEntity":         camera,
			})

			xr, secure := c.xr, c.secure
			sys := NewScriptSystem(mustRegistry(t, "vr.tengo"), nil, Capabilities{
				XRAvailable: func() bool { return xr },
				Secure:      func() bool { return secure },
			})
			sys.Update(w)

			if got := w.Enabled(button); got != c.wantButton {
				t.Fatalf("button enabled = %v, want %v", got, c.wantButton)
			}
			if got := w.Enabled(unsupported); got != c.wantUnsupported {
				t.Fatalf("unsupported enabled = %v, want %v", got, c.wantUnsupported)
			}
			if got := w.Enabled(https); got != c.wantHTTPS {
				t.Fatalf("https enabled = %v, want %v", got, c.wantHTTPS)
			}
		})
	}
}

func TestVRScriptButtonPress(t *testing.T) {
	w := ecs.NewWorld()
	root := named(t, w, "Root")
	button := named(t, w, "Button")
	attachScript(t, w, root, "vr", map[string]any{
		"buttonVr":             button,
		"elementUnsupported":   named(t, w, "Text Unsupported"),
		"elementHttpsRequired": named(t, w, "Text HTTPS required"),
	})
	yes := func() bool { return true }
	sys := NewScriptSystem(mustRegistry(t, "vr.tengo"), nil, Capabilities{XRAvailable: yes, Secure: yes})

	sys.Update(w)
	InputState(w).Clicked = uint64(button)
	sys.Update(w)

	inst, ok := sys.Instance(root, "vr")
	if !ok {
		t.Fatalf("vr instance missing")
	}
	if active, _ := inst.State()["active"].(bool); !active {
		t.Fatalf("state.active = %v after click", inst.State()["active"])
	}
}

func TestScriptsSkipDisabledEntities(t *testing.T) {
	w := ecs.NewWorld()
	parent := named(t, w, "Controllers")
	ctrl := named(t, w, "Controller")
	if err := w.AddChild(parent, ctrl); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	attachScript(t, w, ctrl, "controller", nil)
	w.SetEnabled(parent, false)

	sys := NewScriptSystem(mustRegistry(t, "controller.tengo"), nil, Capabilities{})
	sys.Update(w)
	if _, ok := sys.Instance(ctrl, "controller"); ok {
		t.Fatalf("script instantiated under a disabled parent")
	}

	w.SetEnabled(parent, true)
	sys.SetDelta(0.5)
	sys.Update(w)
	tr, _ := ecs.Get(w, ctrl, component.TransformComponent.Kind())
	if math.Abs(tr.Euler.Y-15) > 1e-9 {
		t.Fatalf("euler.y = %v, want 15", tr.Euler.Y)
	}
}

func TestControllersFollowInputSources(t *testing.T) {
	w := ecs.NewWorld()
	root := named(t, w, "Root")
	template := named(t, w, "Controller")
	attachScript(t, w, root, "controllers", map[string]any{"controllerTemplate": template})

	sys := NewScriptSystem(mustRegistry(t, "controllers.tengo"), nil, Capabilities{})
	sys.Update(w)
	if w.Enabled(template) {
		t.Fatalf("template enabled without input sources")
	}
	InputState(w).Sources = 1
	sys.Update(w)
	if !w.Enabled(template) {
		t.Fatalf("template disabled with one input source")
	}
}

func TestObjectPickerTeleportsRig(t *testing.T) {
	w := ecs.NewWorld()
	root := named(t, w, "Root")
	rig := named(t, w, "Camera Parent")
	floor := named(t, w, "Floor")
	tags := &component.Tags{}
	tags.Add(component.TagTeleportable)
	if err := ecs.Add(w, floor, component.TagsComponent.Kind(), tags); err != nil {
		t.Fatalf("add tags: %v", err)
	}
	rigTransform, _ := ecs.Get(w, rig, component.TransformComponent.Kind())
	rigTransform.Position = common.Vec3{Y: 1.5}
	attachScript(t, w, root, "objectPicker", nil)

	picker := pickerFunc(func(x, z float64) (ecs.Entity, bool) { return floor, true })
	sys := NewScriptSystem(mustRegistry(t, "object-picker.tengo"), picker, Capabilities{})

	input := InputState(w)
	input.MousePressed = true
	input.Cursor = common.Vec2{X: 2, Y: -3}
	input.CursorValid = true
	sys.Update(w)

	want := common.Vec3{X: 2, Y: 1.5, Z: -3}
	if rigTransform.Position != want {
		t.Fatalf("rig position = %+v, want %+v", rigTransform.Position, want)
	}
}

func TestCameraControllerMovesRig(t *testing.T) {
	w := ecs.NewWorld()
	rig := named(t, w, "Camera Parent")
	cam := named(t, w, "Camera")
	if err := w.AddChild(rig, cam); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	attachScript(t, w, rig, "camera-controller", map[string]any{
		"height":               1.6,
		"movementSpeed":        2.0,
		"rotateSpeed":          45.0,
		"rotateThreshold":      0.5,
		"rotateResetThreshold": 0.25,
		"camera":               cam,
	})
	input := InputState(w)
	input.Keys = map[string]bool{"W": true, "Q": true}

	sys := NewScriptSystem(mustRegistry(t, "camera-controller.tengo"), nil, Capabilities{})
	sys.SetDelta(0.5)
	sys.Update(w)

	tr, _ := ecs.Get(w, rig, component.TransformComponent.Kind())
	if math.Abs(tr.Position.Z+1) > 1e-9 {
		t.Fatalf("rig z = %v, want -1", tr.Position.Z)
	}
	if tr.Euler.Y != 45 {
		t.Fatalf("rig yaw = %v, want 45", tr.Euler.Y)
	}
	camTr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if math.Abs(camTr.Position.Y-1.6) > 1e-9 {
		t.Fatalf("camera height = %v, want 1.6", camTr.Position.Y)
	}

	// Holding the turn key does not turn again until released.
	sys.Update(w)
	if tr.Euler.Y != 45 {
		t.Fatalf("rig yaw after held key = %v, want 45", tr.Euler.Y)
	}
}

func TestUnknownScriptWaits(t *testing.T) {
	w := ecs.NewWorld()
	e := named(t, w, "Root")
	attachScript(t, w, e, "vr", nil)
	reg := script.NewRegistry()
	sys := NewScriptSystem(reg, nil, Capabilities{})
	sys.Update(w)
	if _, ok := sys.Instance(e, "vr"); ok {
		t.Fatalf("instance created for unregistered script")
	}
}
