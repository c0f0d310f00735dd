// Package scene preloads the room's assets and builds its entity graph once.
package scene

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/vrroom/app"
	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
	"github.com/milk9111/vrroom/ecs/entity"
	"github.com/milk9111/vrroom/prefabs"
	"github.com/milk9111/vrroom/preload"
)

var ErrAlreadyBuilt = errors.New("scene: already built")

// AssetList is every file the scene needs, in request order.
var AssetList = []assets.Request{
	{URL: "../assets/models/box-room/box-room.json", Kind: assets.KindModel},
	{URL: "../assets/materials/Box.json", Kind: assets.KindMaterial},
	{URL: "../assets/materials/Controller.json", Kind: assets.KindMaterial},
	{URL: "../assets/materials/Light.json", Kind: assets.KindMaterial},
	{URL: "../assets/scripts/vr.tengo", Kind: assets.KindScript},
	{URL: "../assets/scripts/controllers.tengo", Kind: assets.KindScript},
	{URL: "../assets/scripts/controller.tengo", Kind: assets.KindScript},
	{URL: "../assets/scripts/object-picker.tengo", Kind: assets.KindScript},
	{URL: "../assets/scripts/camera-controller.tengo", Kind: assets.KindScript},
	{URL: "../assets/ui/cursor.png", Kind: assets.KindTexture},
	{URL: "../assets/ui/Montserrat-Black.json", Kind: assets.KindFont},
}

var lightSpherePositions = []common.Vec3{
	{X: -9.472, Y: 9.107, Z: 10.767},
	{X: -9.472, Y: 9.107, Z: -10.767},
	{X: 10.489, Y: 9.107, Z: -10.767},
	{X: 10.489, Y: 9.107, Z: 10.767},
	{X: 0.201, Y: 9.107, Z: -0.309},
}

var boxPositions = []common.Vec3{
	{X: 3, Y: 1, Z: -5},
	{X: 0, Y: 1, Z: -5},
	{X: -3, Y: 1, Z: -5},
}

// Graph holds the entities the build created.
type Graph struct {
	Room         ecs.Entity
	LightSpheres []ecs.Entity
	Floor        ecs.Entity
	Boxes        []ecs.Entity
	CameraParent ecs.Entity
	Camera       ecs.Entity
	Controller   ecs.Entity
	Screen       ecs.Entity
	// Baked is the number of models that received a lightmap.
	Baked int
}

// Builder builds the scene at most once.
type Builder struct {
	built bool
}

// Load preloads AssetList through the app's registry, reporting progress on
// the app's signals, then builds the scene. Load errors are logged and the
// build proceeds without the failed assets.
func Load(a *app.App, b *Builder, done func(*Graph, error)) {
	preload.Run(AssetList, a.Assets(), func(p float64) {
		a.Signals.Progress.Fire(p)
	}, func(res preload.Result) {
		if err := res.Err(); err != nil {
			log.Printf("scene: preload: %d of %d assets failed: %v", len(res.Failed), res.Total, err)
		}
		a.Signals.PreloadEnd.Fire(struct{}{})
		g, err := b.Build(a)
		if done != nil {
			done(g, err)
		}
	})
}

// Build starts the app and declares the room, its lights and props, the
// camera rig, the controller template and the 2D screen, then bakes
// lightmaps.
func (b *Builder) Build(a *app.App) (*Graph, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	b.built = true

	a.Start()

	w := a.World()
	root := a.Root()
	finder := a.Assets()
	g := &Graph{}

	var err error
	if g.Room, err = entity.BuildEntity(w, root, "room.yaml", finder); err != nil {
		return nil, fmt.Errorf("scene: room: %w", err)
	}

	for _, pos := range lightSpherePositions {
		e, err := entity.BuildEntity(w, g.Room, "light_sphere.yaml", finder)
		if err != nil {
			return nil, fmt.Errorf("scene: light sphere: %w", err)
		}
		entity.Transform(w, e).Position = pos
		g.LightSpheres = append(g.LightSpheres, e)
	}

	if g.Floor, err = entity.BuildEntity(w, g.Room, "floor.yaml", finder); err != nil {
		return nil, fmt.Errorf("scene: floor: %w", err)
	}

	for _, pos := range boxPositions {
		e, err := entity.BuildEntity(w, g.Room, "box.yaml", finder)
		if err != nil {
			return nil, fmt.Errorf("scene: box: %w", err)
		}
		entity.Transform(w, e).Position = pos
		g.Boxes = append(g.Boxes, e)
	}

	if g.CameraParent, err = entity.BuildEntity(w, root, "camera_rig.yaml", finder); err != nil {
		return nil, fmt.Errorf("scene: camera: %w", err)
	}
	g.Camera, _ = entity.FindByName(w, g.CameraParent, "Camera")

	if g.Controller, err = entity.BuildEntity(w, root, "controller.yaml", finder); err != nil {
		return nil, fmt.Errorf("scene: controller: %w", err)
	}

	if g.Screen, err = entity.BuildEntity(w, root, "screen.yaml", finder); err != nil {
		return nil, fmt.Errorf("scene: screen: %w", err)
	}

	if err := attachRootScripts(w, root, g); err != nil {
		return nil, err
	}

	registerPickables(a, g)
	g.Baked = a.Lightmapper().Bake(nil, a.LightmapMode())
	log.Printf("scene: built %d entities, baked %d lightmaps", len(w.Descendants(root)), g.Baked)
	return g, nil
}

func attachRootScripts(w *ecs.World, root ecs.Entity, g *Graph) error {
	button, _ := entity.FindByName(w, g.Screen, "Button")
	unsupported, _ := entity.FindByName(w, g.Screen, "Text Unsupported")
	https, _ := entity.FindByName(w, g.Screen, "Text HTTPS required")

	instances := []struct {
		name  string
		attrs map[string]any
	}{
		{"vr", map[string]any{
			"buttonVr":             button,
			"elementUnsupported":   unsupported,
			"elementHttpsRequired": https,
			"cameraEntity":         g.Camera,
		}},
		{"controllers", map[string]any{
			"controllerTemplate": g.Controller,
			"cameraParent":       g.CameraParent,
		}},
		{"objectPicker", nil},
	}
	for _, inst := range instances {
		spec := prefabs.ScriptComponentSpec{Instances: []prefabs.ScriptInstanceSpec{{Name: inst.name, Attributes: inst.attrs}}}
		if err := entity.AddComponent(w, root, "script", spec, nil); err != nil {
			return fmt.Errorf("scene: root script %s: %w", inst.name, err)
		}
	}
	return nil
}

// registerPickables adds a physics footprint for every pickable entity.
func registerPickables(a *app.App, g *Graph) {
	w := a.World()
	pw := a.Physics()
	ecs.ForEach(w, component.TagsComponent.Kind(), func(e ecs.Entity, tags *component.Tags) {
		if !tags.Has(component.TagPickable) {
			return
		}
		pose := ecs.WorldPose(w, e)
		pw.AddBox(e, pose.Position.X, pose.Position.Z, pose.Scale.X/2, pose.Scale.Z/2)
	})
}
