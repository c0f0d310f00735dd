package scene

import (
	"testing"
	"time"

	"github.com/milk9111/vrroom/app"
)

func TestRunnerDefersPreloadAndOrdersFrame(t *testing.T) {
	a, err := app.New(app.Options{})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	var (
		progress int
		order    []string
	)
	a.Signals.Progress.On(func(float64) { progress++ })
	a.Signals.Update.On(func(float64) { order = append(order, "tick") })

	r := NewRunner(a)
	overlay := func() { order = append(order, "overlay") }
	systems := func() {
		if r.Graph() == nil {
			t.Fatal("systems ran before the scene was built")
		}
		order = append(order, "systems")
	}

	if r.Preloading() {
		t.Fatal("preloading before the first step")
	}
	r.Step(1.0/60.0, overlay, systems)
	if !r.Preloading() || len(order) != 0 || progress != 0 || a.Started() {
		t.Fatalf("first step: preloading=%v order=%v progress=%d started=%v", r.Preloading(), order, progress, a.Started())
	}

	deadline := time.Now().Add(5 * time.Second)
	for r.Graph() == nil {
		if r.Err() != nil {
			t.Fatalf("build: %v", r.Err())
		}
		if time.Now().After(deadline) {
			t.Fatalf("scene never built; progress %d", progress)
		}
		r.Step(1.0/60.0, overlay, systems)
		time.Sleep(time.Millisecond)
	}
	if progress != len(AssetList) {
		t.Fatalf("progress events = %d, want %d", progress, len(AssetList))
	}

	order = nil
	r.Step(1.0/60.0, overlay, systems)
	want := []string{"tick", "overlay", "systems"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
