package scene

import (
	"log"

	"github.com/milk9111/vrroom/app"
)

// Runner drives scene loading from a host loop. The first Step only starts
// preloading; every later Step ticks the app, then runs the overlay hook and,
// once the scene is built, the systems hook.
type Runner struct {
	app     *app.App
	builder *Builder

	preloading bool
	graph      *Graph
	err        error
}

func NewRunner(a *app.App) *Runner {
	return &Runner{app: a, builder: &Builder{}}
}

func (r *Runner) Step(dt float64, overlay, systems func()) {
	if !r.preloading {
		r.preloading = true
		Load(r.app, r.builder, func(g *Graph, err error) {
			if err != nil {
				log.Printf("scene: build: %v", err)
				r.err = err
				return
			}
			r.graph = g
		})
		return
	}

	r.app.Tick(dt)
	if overlay != nil {
		overlay()
	}
	if r.graph != nil && systems != nil {
		systems()
	}
}

// Preloading reports whether the first Step has run.
func (r *Runner) Preloading() bool {
	return r.preloading
}

// Graph returns the built scene, or nil while loading.
func (r *Runner) Graph() *Graph {
	return r.graph
}

func (r *Runner) Err() error {
	return r.err
}
