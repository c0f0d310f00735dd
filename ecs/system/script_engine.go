package system

import (
	"log"
	"sort"

	"github.com/d5/tengo/v2"

	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
	"github.com/milk9111/vrroom/script"
)

// engine builds the API object handed to e's scripts for this frame.
func (s *ScriptSystem) engine(w *ecs.World, e ecs.Entity, input *component.Input) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	values["entity"] = &tengo.Int{Value: int64(e)}

	values["find"] = &tengo.UserFunction{Name: "find", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		found, ok := findByName(w, script.ObjectAsString(args[0]))
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Int{Value: int64(found)}, nil
	}}

	values["get_name"] = &tengo.UserFunction{Name: "get_name", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok {
			return &tengo.String{}, nil
		}
		name, _ := ecs.Get(w, target, component.NameComponent.Kind())
		if name == nil {
			return &tengo.String{}, nil
		}
		return &tengo.String{Value: name.Value}, nil
	}}

	values["set_enabled"] = &tengo.UserFunction{Name: "set_enabled", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		w.SetEnabled(target, !args[1].IsFalsy())
		return tengo.TrueValue, nil
	}}

	values["is_enabled"] = &tengo.UserFunction{Name: "is_enabled", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok {
			return tengo.FalseValue, nil
		}
		return script.Bool(w.EnabledInHierarchy(target)), nil
	}}

	values["xr_available"] = &tengo.UserFunction{Name: "xr_available", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return script.Bool(s.caps.xr()), nil
	}}

	values["is_secure"] = &tengo.UserFunction{Name: "is_secure", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return script.Bool(s.caps.secure()), nil
	}}

	values["button_pressed"] = &tengo.UserFunction{Name: "button_pressed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok || input == nil {
			return tengo.FalseValue, nil
		}
		return script.Bool(input.Clicked == uint64(target)), nil
	}}

	values["input_sources"] = &tengo.UserFunction{Name: "input_sources", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if input == nil {
			return &tengo.Int{}, nil
		}
		return &tengo.Int{Value: int64(input.Sources)}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok {
			return tengo.UndefinedValue, nil
		}
		t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Map{Value: map[string]tengo.Object{
			"x": &tengo.Float{Value: t.Position.X},
			"y": &tengo.Float{Value: t.Position.Y},
			"z": &tengo.Float{Value: t.Position.Z},
		}}, nil
	}}

	values["set_position"] = &tengo.UserFunction{Name: "set_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok || len(args) < 4 {
			return tengo.FalseValue, nil
		}
		t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return tengo.FalseValue, nil
		}
		x, okX := script.FloatArg(args[1])
		y, okY := script.FloatArg(args[2])
		z, okZ := script.FloatArg(args[3])
		if !okX || !okY || !okZ {
			return tengo.FalseValue, nil
		}
		t.Position.X, t.Position.Y, t.Position.Z = x, y, z
		return tengo.TrueValue, nil
	}}

	values["rotate"] = &tengo.UserFunction{Name: "rotate", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok || len(args) < 4 {
			return tengo.FalseValue, nil
		}
		t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return tengo.FalseValue, nil
		}
		x, _ := script.FloatArg(args[1])
		y, _ := script.FloatArg(args[2])
		z, _ := script.FloatArg(args[3])
		t.Rotate(x, y, z)
		return tengo.TrueValue, nil
	}}

	values["has_tag"] = &tengo.UserFunction{Name: "has_tag", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		tags, ok := ecs.Get(w, target, component.TagsComponent.Kind())
		if !ok {
			return tengo.FalseValue, nil
		}
		return script.Bool(tags.Has(script.ObjectAsString(args[1]))), nil
	}}

	values["pick"] = &tengo.UserFunction{Name: "pick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if s.picker == nil || len(args) < 2 {
			return tengo.UndefinedValue, nil
		}
		x, okX := script.FloatArg(args[0])
		z, okZ := script.FloatArg(args[1])
		if !okX || !okZ {
			return tengo.UndefinedValue, nil
		}
		hit, ok := s.picker.Pick(x, z)
		if !ok || !w.EnabledInHierarchy(hit) {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Int{Value: int64(hit)}, nil
	}}

	values["key_pressed"] = &tengo.UserFunction{Name: "key_pressed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		return script.Bool(input.KeyPressed(script.ObjectAsString(args[0]))), nil
	}}

	values["mouse_pressed"] = &tengo.UserFunction{Name: "mouse_pressed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return script.Bool(input != nil && input.MousePressed), nil
	}}

	values["cursor_world"] = &tengo.UserFunction{Name: "cursor_world", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if input == nil || !input.CursorValid {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Map{Value: map[string]tengo.Object{
			"x": &tengo.Float{Value: input.Cursor.X},
			"z": &tengo.Float{Value: input.Cursor.Y},
		}}, nil
	}}

	values["set_text"] = &tengo.UserFunction{Name: "set_text", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, ok := entityArg(w, args)
		if !ok || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		el, ok := ecs.Get(w, target, component.ElementComponent.Kind())
		if !ok || el.Type != component.ElementTypeText {
			return tengo.FalseValue, nil
		}
		el.Text = script.ObjectAsString(args[1])
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) > 0 {
			log.Print(script.ObjectAsString(args[0]))
		}
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func entityArg(w *ecs.World, args []tengo.Object) (ecs.Entity, bool) {
	if len(args) < 1 {
		return 0, false
	}
	e, ok := script.EntityArg(args[0])
	if !ok || !ecs.IsAlive(w, e) {
		return 0, false
	}
	return e, true
}

// findByName returns the oldest live entity carrying name.
func findByName(w *ecs.World, name string) (ecs.Entity, bool) {
	matches := make([]ecs.Entity, 0, 1)
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if n.Value == name {
			matches = append(matches, e)
		}
	})
	if len(matches) == 0 {
		return 0, false
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })
	return matches[0], true
}
