package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/vrroom/ecs/component"
)

var ErrHierarchyCycle = errors.New("ecs: child is an ancestor of parent")

// AddChild attaches child under parent, detaching it from any previous parent.
func (w *World) AddChild(parent, child Entity) error {
	if !w.IsAlive(parent) || !w.IsAlive(child) {
		return fmt.Errorf("add child %s to %s: %w", child, parent, component.ErrEntityNotAlive)
	}
	for p := parent; p.Valid(); p = w.parents[p] {
		if p == child {
			return ErrHierarchyCycle
		}
	}
	w.detach(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return nil
}

// RemoveChild detaches child from parent. The child stays alive.
func (w *World) RemoveChild(parent, child Entity) bool {
	if w == nil || w.parents[child] != parent {
		return false
	}
	w.detach(child)
	return true
}

func (w *World) detach(child Entity) {
	parent, ok := w.parents[child]
	if !ok {
		return
	}
	delete(w.parents, child)
	siblings := w.children[parent]
	for i, s := range siblings {
		if s == child {
			w.children[parent] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
}

// Parent returns the parent of e.
func (w *World) Parent(e Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns a copy of the direct children of e in insertion order.
func (w *World) Children(e Entity) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.children[e]...)
}

// Descendants returns every entity below e, depth first.
func (w *World) Descendants(e Entity) []Entity {
	var out []Entity
	for _, c := range w.Children(e) {
		out = append(out, c)
		out = append(out, w.Descendants(c)...)
	}
	return out
}

// SetEnabled toggles the entity's own enabled flag.
func (w *World) SetEnabled(e Entity, enabled bool) {
	if !w.IsAlive(e) {
		return
	}
	if enabled {
		delete(w.disabled, e)
		return
	}
	w.disabled[e] = struct{}{}
}

// Enabled reports the entity's own enabled flag.
func (w *World) Enabled(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	_, off := w.disabled[e]
	return !off
}

// EnabledInHierarchy reports whether e and all of its ancestors are enabled.
func (w *World) EnabledInHierarchy(e Entity) bool {
	for p := e; p.Valid(); p = w.parents[p] {
		if !w.Enabled(p) {
			return false
		}
	}
	return true
}
