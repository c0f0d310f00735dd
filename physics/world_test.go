package physics

import (
	"testing"

	"github.com/milk9111/vrroom/bootstrap"
	"github.com/milk9111/vrroom/ecs"
)

func TestPickPrefersSmallestFootprint(t *testing.T) {
	w := ecs.NewWorld()
	floor := w.CreateEntity()
	box := w.CreateEntity()

	pw := NewWorld()
	pw.AddBox(floor, 0, 0, 20, 20)
	pw.AddBox(box, 3, -5, 0.5, 0.5)

	tests := []struct {
		name   string
		x, z   float64
		want   ecs.Entity
		wantOK bool
	}{
		{"box", 3, -5, box, true},
		{"box edge", 3.4, -4.6, box, true},
		{"floor", 0, 0, floor, true},
		{"outside", 30, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pw.Pick(tt.x, tt.z)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("Pick(%v, %v) = %v, %v; want %v, %v", tt.x, tt.z, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if !pw.Remove(box) || pw.Len() != 1 {
		t.Fatal("Remove failed")
	}
	if got, _ := pw.Pick(3, -5); got != floor {
		t.Fatalf("after remove Pick = %v, want floor", got)
	}
}

func TestLoaderSatisfiesBootstrap(t *testing.T) {
	l := &Loader{}
	ready := false
	bootstrap.Start(func() bool { return false }, l, func() { ready = true })
	if !ready || l.World == nil {
		t.Fatal("physics module not loaded")
	}
}
