package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/vrroom/app"
	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/config"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/system"
	"github.com/milk9111/vrroom/scene"
	"github.com/milk9111/vrroom/splash"
)

type Game struct {
	app        *app.App
	splash     *splash.Controller
	splashView *splash.View
	view       *system.View
	scheduler  *ecs.Scheduler
	runner     *scene.Runner
	watcher    *assets.Watcher
}

func NewGame(a *app.App, ctrl *splash.Controller, cfg config.Config) *Game {
	w, h := a.CanvasSize()
	view := system.NewView(w, h)

	caps := system.Capabilities{
		XRAvailable: func() bool { return cfg.XR },
		Secure:      func() bool { return cfg.Secure },
	}
	scripts := system.NewScriptSystem(a.Scripts(), a.Physics(), caps)
	a.Signals.Update.On(scripts.SetDelta)

	g := &Game{
		app:        a,
		splash:     ctrl,
		splashView: splash.NewView(ctrl),
		view:       view,
		runner:     scene.NewRunner(a),
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(view),
			system.NewUISystem(),
			scripts,
			system.NewRenderSystem(view, cfg.Debug),
		),
	}
	ctrl.Attach(a.Signals.Progress, a.Signals.PreloadEnd, a.Signals.Start)

	if cfg.Watch {
		watcher, err := assets.NewWatcher(watchDirs(cfg.AssetsDir)...)
		if err != nil {
			log.Printf("main: watch %s: %v", cfg.AssetsDir, err)
		} else {
			g.watcher = watcher
		}
	}
	return g
}

func (g *Game) Update() error {
	if g.watcher != nil && g.runner.Preloading() {
		for _, path := range g.watcher.Poll() {
			if n := g.app.Assets().ReloadPath(path); n > 0 {
				log.Printf("main: %s changed, reloading %d asset(s)", path, n)
			}
		}
	}

	g.runner.Step(1.0/float64(ebiten.TPS()), g.splashView.Update, func() {
		g.scheduler.Update(g.app.World())
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch {
	case g.runner.Err() != nil:
		ebitenutil.DebugPrintAt(screen, "scene failed to build:\n"+g.runner.Err().Error(), 10, 10)
	case g.runner.Graph() == nil || g.splash.State() == splash.Showing:
		g.splashView.Draw(screen)
	default:
		g.scheduler.Draw(g.app.World(), screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.app.ResizeCanvas(outsideWidth, outsideHeight) {
		g.view.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func watchDirs(root string) []string {
	return []string{
		root + "/models/box-room",
		root + "/materials",
		root + "/scripts",
		root + "/ui",
	}
}

// errorGame replaces the scene when the app could not be created.
type errorGame struct {
	msg string
}

func (g *errorGame) Update() error { return nil }

func (g *errorGame) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.msg, 10, 10)
}

func (g *errorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
