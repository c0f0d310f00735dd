// Package script runs tengo entity scripts. A script source declares its
// registered name and two lifecycle functions:
//
//	name := "vr"
//	initialize := func(engine, attrs, state) { ... }
//	update := func(engine, attrs, state, dt) { ... }
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrNoName = errors.New("script: source does not declare a name")

const lifecycleDispatchScript = `
if __phase == "initialize" {
	initialize(__engine, __attrs, __state)
} else if __phase == "update" {
	update(__engine, __attrs, __state, __dt)
}
`

// Type is a compiled script definition. Instances clone its bytecode.
type Type struct {
	Name     string
	compiled *tengo.Compiled
}

// Parse compiles src, evaluates its top-level declarations and reads the
// declared name.
func Parse(src []byte) (*Type, error) {
	full := string(src) + "\n" + lifecycleDispatchScript
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__phase", "")
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__attrs", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__dt", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	if err := compiled.Set("__phase", "noop"); err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: evaluate: %w", err)
	}
	if !compiled.IsDefined("name") {
		return nil, ErrNoName
	}
	name := strings.TrimSpace(compiled.Get("name").String())
	if name == "" {
		return nil, ErrNoName
	}
	return &Type{Name: name, compiled: compiled}, nil
}

// Instance is one running copy of a script bound to an entity.
type Instance struct {
	typ         *Type
	compiled    *tengo.Compiled
	attrs       *tengo.Map
	state       *tengo.Map
	initialized bool
}

// NewInstance binds attrs to a fresh copy of the script.
func (t *Type) NewInstance(attrs map[string]any) (*Instance, error) {
	if t == nil || t.compiled == nil {
		return nil, fmt.Errorf("script: nil type")
	}
	converted := make(map[string]tengo.Object, len(attrs))
	for k, v := range attrs {
		obj, err := ToObject(v)
		if err != nil {
			return nil, fmt.Errorf("script %s: attribute %q: %w", t.Name, k, err)
		}
		converted[k] = obj
	}
	return &Instance{
		typ:      t,
		compiled: t.compiled.Clone(),
		attrs:    &tengo.Map{Value: converted},
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (i *Instance) Name() string {
	return i.typ.Name
}

func (i *Instance) Initialized() bool {
	return i.initialized
}

// Initialize runs the script's initialize function once.
func (i *Instance) Initialize(engine *tengo.ImmutableMap) error {
	if i.initialized {
		return nil
	}
	if err := i.run("initialize", engine, 0); err != nil {
		return err
	}
	i.initialized = true
	return nil
}

// Update runs the script's update function.
func (i *Instance) Update(engine *tengo.ImmutableMap, dt float64) error {
	return i.run("update", engine, dt)
}

// State returns a Go copy of the instance's persistent state map.
func (i *Instance) State() map[string]any {
	out, _ := objectToAny(i.state).(map[string]any)
	return out
}

func (i *Instance) run(phase string, engine *tengo.ImmutableMap, dt float64) error {
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := i.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := i.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := i.compiled.Set("__attrs", i.attrs); err != nil {
		return err
	}
	if err := i.compiled.Set("__state", i.state); err != nil {
		return err
	}
	if err := i.compiled.Set("__dt", dt); err != nil {
		return err
	}
	if err := i.compiled.Run(); err != nil {
		return fmt.Errorf("script %s: %s: %w", i.typ.Name, phase, err)
	}
	return nil
}
