// Command scenedump builds the scene without opening a window and prints the
// entity tree with baked lightmaps.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/milk9111/vrroom/app"
	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/dom"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
	"github.com/milk9111/vrroom/ecs/entity"
	"github.com/milk9111/vrroom/scene"
	"github.com/milk9111/vrroom/splash"
)

func main() {
	assetsDir := flag.String("assets", "", "directory to read assets from before the embedded copies")
	htmlOut := flag.String("html", "", "write the page after the build to this file")
	timeout := flag.Duration("timeout", 10*time.Second, "give up if the preload has not finished")
	flag.Parse()

	doc, err := dom.NewDocument()
	if err != nil {
		log.Fatal(err)
	}
	ctrl := splash.NewController(doc)

	a, err := app.New(app.Options{Source: assets.FS{Dir: *assetsDir}})
	if err != nil {
		if _, derr := dom.DisplayError(doc, err.Error()); derr != nil {
			log.Printf("scenedump: %v", derr)
		}
		writeHTML(*htmlOut, doc)
		log.Fatal(err)
	}
	ctrl.Attach(a.Signals.Progress, a.Signals.PreloadEnd, a.Signals.Start)

	runner := scene.NewRunner(a)
	deadline := time.Now().Add(*timeout)
	for runner.Graph() == nil && runner.Err() == nil {
		if time.Now().After(deadline) {
			log.Fatalf("scenedump: preload stalled at %.0f%%", ctrl.Progress()*100)
		}
		runner.Step(0, nil, nil)
		time.Sleep(time.Millisecond)
	}
	if err := runner.Err(); err != nil {
		log.Fatal(err)
	}
	graph := runner.Graph()

	dumpTree(os.Stdout, a.World(), a.Root(), 0)
	fmt.Printf("\n%d lightmaps baked, splash %s\n", graph.Baked, ctrl.State())
	writeHTML(*htmlOut, doc)
}

func dumpTree(out io.Writer, w *ecs.World, e ecs.Entity, depth int) {
	var parts []string
	if !w.Enabled(e) {
		parts = append(parts, "disabled")
	}
	if m, ok := ecs.Get(w, e, component.ModelComponent.Kind()); ok {
		parts = append(parts, "model="+string(m.Type))
	}
	if l, ok := ecs.Get(w, e, component.LightComponent.Kind()); ok {
		parts = append(parts, fmt.Sprintf("light=%s/%.1f", l.Type, l.Intensity))
	}
	if lm, ok := ecs.Get(w, e, component.LightmapComponent.Kind()); ok {
		parts = append(parts, fmt.Sprintf("lightmap=%dpx(%.2f,%.2f,%.2f)", lm.Resolution, lm.Color.R, lm.Color.G, lm.Color.B))
	}
	if el, ok := ecs.Get(w, e, component.ElementComponent.Kind()); ok {
		parts = append(parts, "element="+string(el.Type))
	}
	if sc, ok := ecs.Get(w, e, component.ScriptComponent.Kind()); ok {
		names := make([]string, 0, len(sc.Instances))
		for _, inst := range sc.Instances {
			names = append(names, inst.Name)
		}
		parts = append(parts, "scripts="+strings.Join(names, ","))
	}
	if tags, ok := ecs.Get(w, e, component.TagsComponent.Kind()); ok {
		parts = append(parts, "tags="+strings.Join(tags.List(), ","))
	}

	line := strings.Repeat("  ", depth) + entity.Name(w, e)
	if len(parts) > 0 {
		line += " [" + strings.Join(parts, " ") + "]"
	}
	fmt.Fprintln(out, line)
	for _, child := range w.Children(e) {
		dumpTree(out, w, child, depth+1)
	}
}

func writeHTML(path string, doc *dom.Document) {
	if path == "" {
		return
	}
	if err := os.WriteFile(path, []byte(doc.String()), 0o644); err != nil {
		log.Printf("scenedump: write %s: %v", path, err)
	}
}
