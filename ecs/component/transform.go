package component

import "github.com/milk9111/vrroom/common"

// Transform is an entity's local position, euler rotation (degrees) and scale.
type Transform struct {
	Position common.Vec3
	Euler    common.Vec3
	Scale    common.Vec3
}

var TransformComponent = NewComponent[Transform]()

func NewTransform() *Transform {
	return &Transform{Scale: common.Vec3{X: 1, Y: 1, Z: 1}}
}

func (t *Transform) Translate(x, y, z float64) {
	t.Position = t.Position.Add(common.Vec3{X: x, Y: y, Z: z})
}

func (t *Transform) Rotate(x, y, z float64) {
	t.Euler = t.Euler.Add(common.Vec3{X: x, Y: y, Z: z})
}

func (t *Transform) SetEulerAngles(x, y, z float64) {
	t.Euler = common.Vec3{X: x, Y: y, Z: z}
}

func (t *Transform) SetLocalScale(x, y, z float64) {
	t.Scale = common.Vec3{X: x, Y: y, Z: z}
}
