// Package app hosts the scene: entity world, asset registry, script types,
// physics, lightmapper and the lifecycle signals.
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/entity"
	"github.com/milk9111/vrroom/lightmap"
	"github.com/milk9111/vrroom/physics"
	"github.com/milk9111/vrroom/prefabs"
	"github.com/milk9111/vrroom/script"
	"github.com/milk9111/vrroom/signal"
)

var ErrInvalidSettings = errors.New("app: invalid settings")

const (
	defaultSizeMultiplier = 16
	defaultMaxResolution  = 2048
)

// Signals are the application lifecycle events.
type Signals struct {
	Progress   *signal.Signal[float64]
	PreloadEnd *signal.Signal[struct{}]
	Start      *signal.Signal[struct{}]
	Update     *signal.Signal[float64]
}

type Options struct {
	// Settings overrides the embedded scene settings.
	Settings *prefabs.SceneSettings
	// Source overrides where asset files are read from.
	Source assets.Source
	// Physics is the world handed over by the bootstrap step. A fresh one is
	// created when nil.
	Physics *physics.World
}

type App struct {
	Settings *prefabs.SceneSettings
	Signals  Signals

	world        *ecs.World
	root         ecs.Entity
	dispatcher   *Dispatcher
	assets       *assets.Registry
	scripts      *script.Registry
	physics      *physics.World
	lightmapper  *lightmap.Lightmapper
	lightmapMode lightmap.Mode
	width        int
	height       int
	started      bool
}

// New applies the scene settings and wires the host collaborators.
func New(opts Options) (*App, error) {
	settings := opts.Settings
	if settings == nil {
		loaded, err := prefabs.LoadSceneSettings()
		if err != nil {
			return nil, fmt.Errorf("app: settings: %w", err)
		}
		settings = loaded
	}
	mode, err := lightmapMode(settings.Lightmap.Mode)
	if err != nil {
		return nil, err
	}

	a := &App{
		Settings: settings,
		Signals: Signals{
			Progress:   signal.New[float64]("progress", signal.Repeating),
			PreloadEnd: signal.New[struct{}]("preload:end", signal.OneShot),
			Start:      signal.New[struct{}]("start", signal.OneShot),
			Update:     signal.New[float64]("update", signal.Repeating),
		},
		world:        ecs.NewWorld(),
		dispatcher:   NewDispatcher(),
		scripts:      script.NewRegistry(),
		physics:      opts.Physics,
		lightmapMode: mode,
		width:        settings.Window.Width,
		height:       settings.Window.Height,
	}
	if a.physics == nil {
		a.physics = physics.NewWorld()
	}
	if a.width <= 0 || a.height <= 0 {
		a.width, a.height = common.BaseWidth, common.BaseHeight
	}

	a.assets = assets.NewRegistry(opts.Source, a.dispatcher.Post)
	a.assets.SetDecoder(assets.KindScript, func(data []byte) (any, error) {
		return script.Parse(data)
	})
	a.assets.OnLoaded(func(asset *assets.Asset) {
		if t, ok := asset.Resource.(*script.Type); ok {
			a.scripts.Register(t)
		}
	})

	root, err := entity.NewEntity(a.world, 0, "Root")
	if err != nil {
		return nil, fmt.Errorf("app: root: %w", err)
	}
	a.root = root

	a.lightmapper = lightmap.New(a.world, lightmapSettings(settings))
	log.Printf("app: %s ready (tone mapping %s, exposure %.2f, gamma %s, fog %s)",
		settings.Name, settings.Scene.ToneMapping, settings.Scene.Exposure, settings.Scene.GammaCorrection, settings.Scene.Fog)
	return a, nil
}

func lightmapMode(name string) (lightmap.Mode, error) {
	switch name {
	case "", "color":
		return lightmap.BakeColor, nil
	case "color_dir":
		return lightmap.BakeColorDir, nil
	default:
		return 0, fmt.Errorf("%w: lightmap mode %q", ErrInvalidSettings, name)
	}
}

func lightmapSettings(s *prefabs.SceneSettings) lightmap.Settings {
	ls := lightmap.Settings{
		SizeMultiplier: s.Lightmap.SizeMultiplier,
		MaxResolution:  s.Lightmap.MaxResolution,
	}
	if ls.SizeMultiplier <= 0 {
		ls.SizeMultiplier = defaultSizeMultiplier
	}
	if ls.MaxResolution <= 0 {
		ls.MaxResolution = defaultMaxResolution
	}
	if s.Scene.AmbientLight != nil {
		ls.Ambient = s.Scene.AmbientLight.Common()
	}
	return ls
}

// Start fires the start signal once.
func (a *App) Start() {
	if a.started {
		return
	}
	a.started = true
	log.Printf("app: start")
	a.Signals.Start.Fire(struct{}{})
}

func (a *App) Started() bool {
	return a.started
}

// Tick drains completed asset loads and fires the update signal.
func (a *App) Tick(dt float64) {
	a.dispatcher.Drain()
	if a.started {
		a.physics.Step(dt)
		a.Signals.Update.Fire(dt)
	}
}

// ResizeCanvas records the canvas size after a layout change.
func (a *App) ResizeCanvas(width, height int) bool {
	if width <= 0 || height <= 0 || (width == a.width && height == a.height) {
		return false
	}
	a.width, a.height = width, height
	return true
}

func (a *App) CanvasSize() (int, int) {
	return a.width, a.height
}

func (a *App) World() *ecs.World {
	return a.world
}

// Root is the scene root entity.
func (a *App) Root() ecs.Entity {
	return a.root
}

func (a *App) Assets() *assets.Registry {
	return a.assets
}

func (a *App) Scripts() *script.Registry {
	return a.scripts
}

func (a *App) Physics() *physics.World {
	return a.physics
}

func (a *App) Lightmapper() *lightmap.Lightmapper {
	return a.lightmapper
}

// LightmapMode is the bake mode from the scene settings.
func (a *App) LightmapMode() lightmap.Mode {
	return a.lightmapMode
}

func (a *App) Dispatcher() *Dispatcher {
	return a.dispatcher
}
