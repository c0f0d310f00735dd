package ecs

import (
	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs/component"
)

// Pose is an entity's transform resolved into world space.
type Pose struct {
	Position common.Vec3
	Rotation common.Mat3
	Scale    common.Vec3
}

// Down returns the world direction of the entity's local -Y axis, the
// direction lights shine in.
func (p Pose) Down() common.Vec3 {
	return p.Rotation.MulVec(common.Vec3{Y: -1}).Normalize()
}

// WorldPose composes the local transforms from the root down to e. Entities
// without a Transform contribute the identity.
func WorldPose(w *World, e Entity) Pose {
	pose := Pose{Rotation: common.Identity3(), Scale: common.Vec3{X: 1, Y: 1, Z: 1}}
	chain := []Entity{e}
	for cur := e; ; {
		parent, ok := w.Parent(cur)
		if !ok {
			break
		}
		chain = append(chain, parent)
		cur = parent
	}
	for i := len(chain) - 1; i >= 0; i-- {
		t, ok := Get(w, chain[i], component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pose.Position = pose.Position.Add(pose.Rotation.MulVec(pose.Scale.Mul(t.Position)))
		pose.Rotation = pose.Rotation.Mul(common.EulerMat3(t.Euler))
		pose.Scale = pose.Scale.Mul(t.Scale)
	}
	return pose
}

// WorldPosition is WorldPose(w, e).Position.
func WorldPosition(w *World, e Entity) common.Vec3 {
	return WorldPose(w, e).Position
}
