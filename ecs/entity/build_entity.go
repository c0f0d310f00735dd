package entity

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
	"github.com/milk9111/vrroom/prefabs"
)

// Finder looks assets up by file name.
type Finder interface {
	Find(name string, kind assets.Kind) *assets.Asset
}

type buildContext struct {
	Source string
	Finder Finder
	// Names maps entity names of the tree being built to their entities.
	Names map[string]ecs.Entity
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"model":   addModel,
	"light":   addLight,
	"camera":  addCamera,
	"script":  addScript,
	"element": addElement,
	"button":  addButton,
	"screen":  addScreen,
}

var componentBuildOrder = []string{
	"model",
	"light",
	"camera",
	"screen",
	"element",
	"button",
	"script",
}

// NewEntity creates a named entity with an identity transform and attaches
// it to parent when parent is non-zero.
func NewEntity(w *ecs.World, parent ecs.Entity, name string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform()); err != nil {
		return 0, err
	}
	if parent != 0 {
		if err := w.AddChild(parent, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity %q: %w", name, err)
		}
	}
	return e, nil
}

// AddComponent attaches a component by kind name. raw is either the typed
// prefabs spec for that kind or a YAML-decoded map.
func AddComponent(w *ecs.World, e ecs.Entity, kind string, raw any, finder Finder) error {
	builder, ok := componentRegistry[kind]
	if !ok {
		return fmt.Errorf("build entity: no builder for component %q", kind)
	}
	ctx := &buildContext{Source: Name(w, e), Finder: finder, Names: map[string]ecs.Entity{}}
	if err := builder(w, e, raw, ctx); err != nil {
		return fmt.Errorf("build entity: %q: add %q: %w", ctx.Source, kind, err)
	}
	return nil
}

// BuildEntity instantiates a prefab tree under parent.
func BuildEntity(w *ecs.World, parent ecs.Entity, prefabPath string, finder Finder) (ecs.Entity, error) {
	spec, err := prefabs.LoadEntitySpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildSpec(w, parent, spec, prefabPath, finder)
}

// BuildSpec creates every entity of spec first, then adds components so
// "@Name" references can point anywhere in the tree.
func BuildSpec(w *ecs.World, parent ecs.Entity, spec prefabs.EntitySpec, source string, finder Finder) (ecs.Entity, error) {
	ctx := &buildContext{Source: source, Finder: finder, Names: map[string]ecs.Entity{}}

	type pending struct {
		e    ecs.Entity
		spec *prefabs.EntitySpec
	}
	var built []pending

	var create func(parent ecs.Entity, spec *prefabs.EntitySpec) (ecs.Entity, error)
	create = func(parent ecs.Entity, spec *prefabs.EntitySpec) (ecs.Entity, error) {
		e, err := NewEntity(w, parent, spec.Name)
		if err != nil {
			return 0, err
		}
		if _, dup := ctx.Names[spec.Name]; !dup {
			ctx.Names[spec.Name] = e
		}
		if spec.Transform != nil {
			applyTransform(w, e, spec.Transform)
		}
		if len(spec.Tags) > 0 {
			tags := &component.Tags{}
			tags.Add(spec.Tags...)
			if err := ecs.Add(w, e, component.TagsComponent.Kind(), tags); err != nil {
				return 0, err
			}
		}
		if spec.Enabled != nil {
			w.SetEnabled(e, *spec.Enabled)
		}
		built = append(built, pending{e: e, spec: spec})
		for i := range spec.Children {
			if _, err := create(e, &spec.Children[i]); err != nil {
				return 0, err
			}
		}
		return e, nil
	}

	root, err := create(parent, &spec)
	if err != nil {
		if len(built) > 0 {
			ecs.DestroyEntity(w, built[0].e)
		}
		return 0, fmt.Errorf("build entity: %q: %w", source, err)
	}

	for _, p := range built {
		if err := addComponents(w, p.e, p.spec.Components, ctx); err != nil {
			ecs.DestroyEntity(w, root)
			return 0, err
		}
	}
	return root, nil
}

func addComponents(w *ecs.World, e ecs.Entity, components map[string]any, ctx *buildContext) error {
	remaining := make(map[string]any, len(components))
	for k, v := range components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", ctx.Source, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("build entity: %q: no builder for component %q", ctx.Source, names[0])
	}
	return nil
}

func applyTransform(w *ecs.World, e ecs.Entity, spec *prefabs.TransformSpec) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if len(spec.Position) == 3 {
		t.Translate(spec.Position[0], spec.Position[1], spec.Position[2])
	}
	if len(spec.Euler) == 3 {
		t.SetEulerAngles(spec.Euler[0], spec.Euler[1], spec.Euler[2])
	}
	if len(spec.Scale) == 3 {
		t.SetLocalScale(spec.Scale[0], spec.Scale[1], spec.Scale[2])
	}
}

// Transform returns e's local transform, creating one if needed.
func Transform(w *ecs.World, e ecs.Entity) *component.Transform {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = component.NewTransform()
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), t)
	}
	return t
}

func Name(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
		return n.Value
	}
	return ""
}

// FindByName searches root and its descendants depth first.
func FindByName(w *ecs.World, root ecs.Entity, name string) (ecs.Entity, bool) {
	if Name(w, root) == name {
		return root, true
	}
	for _, child := range w.Children(root) {
		if e, ok := FindByName(w, child, name); ok {
			return e, true
		}
	}
	return 0, false
}

func (ctx *buildContext) asset(name *string, kind assets.Kind) *assets.Asset {
	if name == nil || *name == "" {
		return nil
	}
	var a *assets.Asset
	if ctx.Finder != nil {
		a = ctx.Finder.Find(*name, kind)
	}
	switch {
	case a == nil:
		log.Printf("build entity: %q: %s asset %q not found", ctx.Source, kind, *name)
		return nil
	case !a.Loaded:
		log.Printf("build entity: %q: %s asset %q not loaded: %v", ctx.Source, kind, *name, a.Err)
		return nil
	}
	return a
}

// resolveRef turns an "@Name" string into the named entity of the tree.
func (ctx *buildContext) resolveRef(v any) any {
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, "@") {
		return v
	}
	if e, ok := ctx.Names[strings.TrimPrefix(s, "@")]; ok {
		return e
	}
	log.Printf("build entity: %q: unresolved reference %q", ctx.Source, s)
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setColor(dst *common.Color, src *prefabs.YAMLColor) {
	if src != nil && src.Color != nil {
		*dst = src.Common()
	}
}

func setVec2(dst *common.Vec2, src []float64) {
	if len(src) == 2 {
		*dst = common.Vec2{X: src[0], Y: src[1]}
	}
}

func setVec4(dst *common.Vec4, src []float64) {
	if len(src) == 4 {
		*dst = common.Vec4{X: src[0], Y: src[1], Z: src[2], W: src[3]}
	}
}

var layerNames = map[string]component.Layer{
	"world":     component.LayerWorld,
	"depth":     component.LayerDepth,
	"skybox":    component.LayerSkybox,
	"immediate": component.LayerImmediate,
	"ui":        component.LayerUI,
}

func setLayers(dst *[]component.Layer, src []string) error {
	if src == nil {
		return nil
	}
	layers := make([]component.Layer, 0, len(src))
	for _, name := range src {
		l, ok := layerNames[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown layer %q", name)
		}
		layers = append(layers, l)
	}
	*dst = layers
	return nil
}
