package system

import (
	"log"
	"sort"

	"github.com/d5/tengo/v2"

	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
	"github.com/milk9111/vrroom/script"
)

// Picker resolves the entity under a floor point.
type Picker interface {
	Pick(x, z float64) (ecs.Entity, bool)
}

// Capabilities reports what the host can do. Nil funcs report false.
type Capabilities struct {
	XRAvailable func() bool
	Secure      func() bool
}

func (c Capabilities) xr() bool     { return c.XRAvailable != nil && c.XRAvailable() }
func (c Capabilities) secure() bool { return c.Secure != nil && c.Secure() }

type instanceKey struct {
	entity ecs.Entity
	name   string
}

// ScriptSystem instantiates, initializes and updates the script instances of
// every entity enabled in the hierarchy.
type ScriptSystem struct {
	scripts   *script.Registry
	picker    Picker
	caps      Capabilities
	dt        float64
	instances map[instanceKey]*script.Instance
	failed    map[instanceKey]bool
}

func NewScriptSystem(scripts *script.Registry, picker Picker, caps Capabilities) *ScriptSystem {
	return &ScriptSystem{
		scripts:   scripts,
		picker:    picker,
		caps:      caps,
		dt:        1.0 / 60.0,
		instances: map[instanceKey]*script.Instance{},
		failed:    map[instanceKey]bool{},
	}
}

// SetDelta sets the frame time passed to update functions.
func (s *ScriptSystem) SetDelta(dt float64) {
	if dt > 0 {
		s.dt = dt
	}
}

// Instance returns the running instance of name on e.
func (s *ScriptSystem) Instance(e ecs.Entity, name string) (*script.Instance, bool) {
	inst, ok := s.instances[instanceKey{entity: e, name: name}]
	return inst, ok
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if w == nil || s.scripts == nil {
		return
	}
	s.prune(w)
	input := InputState(w)

	entities := w.Query(component.ScriptComponent.Kind())
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })

	for _, e := range entities {
		sc, ok := ecs.Get(w, e, component.ScriptComponent.Kind())
		if !ok || !sc.Enabled || !w.EnabledInHierarchy(e) {
			continue
		}
		var engine *tengo.ImmutableMap
		for _, si := range sc.Instances {
			if si == nil || !si.Enabled {
				continue
			}
			inst := s.instance(e, si)
			if inst == nil {
				continue
			}
			if engine == nil {
				engine = s.engine(w, e, input)
			}
			key := instanceKey{entity: e, name: si.Name}
			if !inst.Initialized() {
				if err := inst.Initialize(engine); err != nil {
					log.Printf("script: %v", err)
					s.failed[key] = true
					continue
				}
			}
			if err := inst.Update(engine, s.dt); err != nil {
				log.Printf("script: %v", err)
				s.failed[key] = true
			}
		}
	}
}

func (s *ScriptSystem) instance(e ecs.Entity, si *component.ScriptInstance) *script.Instance {
	key := instanceKey{entity: e, name: si.Name}
	if s.failed[key] {
		return nil
	}
	if inst, ok := s.instances[key]; ok {
		return inst
	}
	typ, ok := s.scripts.Lookup(si.Name)
	if !ok {
		// The script asset may still be loading.
		return nil
	}
	inst, err := typ.NewInstance(si.Attributes)
	if err != nil {
		log.Printf("script: %v", err)
		s.failed[key] = true
		return nil
	}
	s.instances[key] = inst
	return inst
}

func (s *ScriptSystem) prune(w *ecs.World) {
	for key := range s.instances {
		if !ecs.IsAlive(w, key.entity) {
			delete(s.instances, key)
		}
	}
	for key := range s.failed {
		if !ecs.IsAlive(w, key.entity) {
			delete(s.failed, key)
		}
	}
}
