package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/vrroom/app"
	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/bootstrap"
	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/config"
	"github.com/milk9111/vrroom/dom"
	"github.com/milk9111/vrroom/physics"
	"github.com/milk9111/vrroom/splash"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	doc, err := dom.NewDocument()
	if err != nil {
		log.Fatal(err)
	}
	ctrl := splash.NewController(doc)

	var game ebiten.Game
	loader := &physics.Loader{}
	bootstrap.Start(bootstrap.WasmSupported, loader, func() {
		a, err := app.New(app.Options{
			Source:  assets.FS{Dir: cfg.AssetsDir},
			Physics: loader.World,
		})
		if err != nil {
			if _, derr := dom.DisplayError(doc, err.Error()); derr != nil {
				log.Printf("main: display error: %v", derr)
			}
			log.Printf("main: %v", err)
			game = &errorGame{msg: err.Error()}
			return
		}

		title := a.Settings.Window.Title
		if title == "" {
			title = a.Settings.Name
		}
		ebiten.SetWindowTitle(title)
		w, h := a.CanvasSize()
		ebiten.SetWindowSize(w, h)
		game = NewGame(a, ctrl, cfg)
	})

	if game == nil {
		ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
		game = &errorGame{msg: "physics module did not load"}
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	if g, ok := game.(*Game); ok {
		g.Close()
	}
	if cfg.DocumentOut != "" {
		if err := os.WriteFile(cfg.DocumentOut, []byte(doc.String()), 0o644); err != nil {
			log.Printf("main: write document: %v", err)
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
