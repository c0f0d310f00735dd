package ecs

import (
	"math"
	"testing"

	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs/component"
)

func near(a, b common.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestWorldPose(t *testing.T) {
	cases := []struct {
		name     string
		parent   component.Transform
		child    component.Transform
		wantPos  common.Vec3
		wantDown common.Vec3
	}{
		{
			name:     "translate",
			parent:   component.Transform{Position: common.Vec3{X: 1, Y: 2, Z: 3}, Scale: common.Vec3{X: 1, Y: 1, Z: 1}},
			child:    component.Transform{Position: common.Vec3{Y: 1}, Scale: common.Vec3{X: 1, Y: 1, Z: 1}},
			wantPos:  common.Vec3{X: 1, Y: 3, Z: 3},
			wantDown: common.Vec3{Y: -1},
		},
		{
			name:     "flipped_parent",
			parent:   component.Transform{Position: common.Vec3{Y: 7}, Euler: common.Vec3{X: 180}, Scale: common.Vec3{X: 1, Y: 1, Z: 1}},
			child:    component.Transform{Position: common.Vec3{Y: -9.87}, Scale: common.Vec3{X: 1, Y: 1, Z: 1}},
			wantPos:  common.Vec3{Y: 16.87},
			wantDown: common.Vec3{Y: 1},
		},
		{
			name:     "scaled_parent",
			parent:   component.Transform{Scale: common.Vec3{X: 2, Y: 2, Z: 2}},
			child:    component.Transform{Position: common.Vec3{X: 1}, Scale: common.Vec3{X: 1, Y: 1, Z: 1}},
			wantPos:  common.Vec3{X: 2},
			wantDown: common.Vec3{Y: -1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			parent := CreateEntity(w)
			child := CreateEntity(w)
			pt, ct := c.parent, c.child
			if err := Add(w, parent, component.TransformComponent.Kind(), &pt); err != nil {
				t.Fatalf("add parent transform: %v", err)
			}
			if err := Add(w, child, component.TransformComponent.Kind(), &ct); err != nil {
				t.Fatalf("add child transform: %v", err)
			}
			if err := w.AddChild(parent, child); err != nil {
				t.Fatalf("AddChild: %v", err)
			}

			pose := WorldPose(w, child)
			if !near(pose.Position, c.wantPos) {
				t.Fatalf("position = %+v, want %+v", pose.Position, c.wantPos)
			}
			if !near(pose.Down(), c.wantDown) {
				t.Fatalf("down = %+v, want %+v", pose.Down(), c.wantDown)
			}
		})
	}
}

func TestWorldPoseWithoutTransform(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	pose := WorldPose(w, e)
	if pose.Position != (common.Vec3{}) || pose.Scale != (common.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("pose = %+v", pose)
	}
}
