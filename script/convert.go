package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/vrroom/ecs"
)

// ToObject converts a Go value to a tengo object. Entities become ints.
func ToObject(v any) (tengo.Object, error) {
	switch v := v.(type) {
	case ecs.Entity:
		return &tengo.Int{Value: int64(v)}, nil
	case float32:
		return &tengo.Float{Value: float64(v)}, nil
	case uint64:
		return &tengo.Int{Value: int64(v)}, nil
	case map[string]any:
		out := make(map[string]tengo.Object, len(v))
		for k, item := range v {
			obj, err := ToObject(item)
			if err != nil {
				return nil, err
			}
			out[k] = obj
		}
		return &tengo.Map{Value: out}, nil
	}
	obj, err := tengo.FromInterface(v)
	if err != nil {
		return nil, fmt.Errorf("convert %T: %w", v, err)
	}
	return obj, nil
}

// EntityArg reads an entity handle from a script argument.
func EntityArg(obj tengo.Object) (ecs.Entity, bool) {
	i, ok := obj.(*tengo.Int)
	if !ok || i.Value <= 0 {
		return 0, false
	}
	return ecs.Entity(i.Value), true
}

// FloatArg reads a number from a script argument.
func FloatArg(obj tengo.Object) (float64, bool) {
	return tengo.ToFloat64(obj)
}

func Bool(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func ObjectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
