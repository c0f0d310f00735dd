// Package physics provides pick queries over the floor plan of the scene.
// Shapes live in a Chipmunk space laid out on the XZ plane.
package physics

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/vrroom/ecs"
)

const pickRadius = 0.001

// World owns the Chipmunk space and the static shapes registered for pickable
// entities.
type World struct {
	space         *cp.Space
	shapeToEntity map[*cp.Shape]ecs.Entity
	entityShapes  map[ecs.Entity]*cp.Shape
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &World{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]ecs.Entity),
		entityShapes:  make(map[ecs.Entity]*cp.Shape),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *World) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddBox registers a static footprint centered at (x, z) with the given half
// extents. A previous footprint for e is replaced.
func (pw *World) AddBox(e ecs.Entity, x, z, halfW, halfD float64) {
	if pw == nil || pw.space == nil || halfW <= 0 || halfD <= 0 {
		return
	}
	pw.Remove(e)
	bb := cp.NewBBForExtents(cp.Vector{X: x, Y: z}, halfW, halfD)
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.UserData = e
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	pw.entityShapes[e] = shape
}

func (pw *World) Remove(e ecs.Entity) bool {
	shape, ok := pw.entityShapes[e]
	if !ok {
		return false
	}
	pw.space.RemoveShape(shape)
	delete(pw.entityShapes, e)
	delete(pw.shapeToEntity, shape)
	return true
}

func (pw *World) Len() int {
	return len(pw.entityShapes)
}

// Pick returns the entity whose footprint contains (x, z). When footprints
// overlap the smallest one wins, so objects resting on the floor are picked
// before the floor itself.
func (pw *World) Pick(x, z float64) (ecs.Entity, bool) {
	if pw == nil || pw.space == nil {
		return 0, false
	}
	p := cp.Vector{X: x, Y: z}
	var (
		best     ecs.Entity
		bestArea float64
		found    bool
	)
	pw.space.BBQuery(cp.NewBBForCircle(p, pickRadius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(p).Distance > 0 {
			return
		}
		e, ok := pw.shapeToEntity[shape]
		if !ok {
			return
		}
		bb := shape.BB()
		area := (bb.R - bb.L) * (bb.T - bb.B)
		if !found || area < bestArea {
			best, bestArea, found = e, area, true
		}
	}, nil)
	return best, found
}

// Step advances the simulation.
func (pw *World) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// Loader provides the physics module to the bootstrap step.
type Loader struct {
	World *World
}

func (l *Loader) LoadModule(name, primary, secondary string, cb func()) {
	l.World = NewWorld()
	log.Printf("physics: %s ready (%s)", name, primary)
	if cb != nil {
		cb()
	}
}
