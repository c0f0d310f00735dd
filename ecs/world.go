package ecs

import (
	"fmt"

	"github.com/milk9111/vrroom/ecs/component"
)

// World owns entities, component stores and the entity hierarchy.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet

	parents  map[Entity]Entity
	children map[Entity][]Entity
	disabled map[Entity]struct{}
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		parents:  make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
		disabled: make(map[Entity]struct{}),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes e, its components and all of its descendants.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, child := range w.Children(e) {
		w.DestroyEntity(child)
	}
	w.detach(e)
	delete(w.children, e)
	delete(w.disabled, e)
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func (w *World) store(kind component.Kind, create bool) *SparseSet {
	s, ok := w.stores[kind.ID()]
	if !ok && create {
		s = &SparseSet{}
		w.stores[kind.ID()] = s
	}
	return s
}

// AddComponent stores value for e under kind, replacing any previous value.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || kind == nil || !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("add component to %s: %w", e, component.ErrEntityNotAlive)
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind, true).Set(e, value)
	return nil
}

// RemoveComponent deletes the kind component of e.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil {
		return false
	}
	return w.store(kind, false).Remove(e)
}

// HasComponent reports whether e has a kind component.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind, false).Has(e)
}

// GetComponent returns the raw kind component of e.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if !w.HasComponent(e, kind) {
		return nil, false
	}
	return w.store(kind, false).Get(e), true
}

// Query returns live entities that have every kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k, false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	return IntersectEntities(sets...)
}

// First returns the first entity holding kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	for _, e := range w.store(kind, false).Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}
