package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
	"github.com/milk9111/vrroom/prefabs"
)

type modelSpec = prefabs.ModelComponentSpec

func addModel(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[modelSpec](raw)
	if err != nil {
		return fmt.Errorf("decode model spec: %w", err)
	}

	m := component.DefaultModel()
	if spec.Type != nil {
		switch t := component.ModelType(strings.ToLower(*spec.Type)); t {
		case component.ModelTypeAsset, component.ModelTypeBox, component.ModelTypeSphere, component.ModelTypePlane, component.ModelTypeCylinder:
			m.Type = t
		default:
			return fmt.Errorf("unknown model type %q", *spec.Type)
		}
	}
	m.Asset = ctx.asset(spec.Asset, assets.KindModel)
	m.MaterialAsset = ctx.asset(spec.MaterialAsset, assets.KindMaterial)
	set(&m.CastShadows, spec.CastShadows)
	set(&m.CastShadowsLightmap, spec.CastShadowsLightmap)
	set(&m.ReceiveShadows, spec.ReceiveShadows)
	set(&m.IsStatic, spec.IsStatic)
	set(&m.Lightmapped, spec.Lightmapped)
	set(&m.LightmapSizeMultiplier, spec.LightmapSizeMultiplier)
	set(&m.Enabled, spec.Enabled)
	if err := setLayers(&m.Layers, spec.Layers); err != nil {
		return err
	}
	return ecs.Add(w, e, component.ModelComponent.Kind(), &m)
}

type lightSpec = prefabs.LightComponentSpec

var (
	falloffModes = map[string]component.FalloffMode{
		"linear":          component.FalloffLinear,
		"inverse_squared": component.FalloffInverseSquared,
	}
	shadowTypes = map[string]component.ShadowType{
		"pcf3":  component.ShadowPCF3,
		"vsm8":  component.ShadowVSM8,
		"vsm16": component.ShadowVSM16,
		"vsm32": component.ShadowVSM32,
		"pcf5":  component.ShadowPCF5,
	}
	blurModes = map[string]component.BlurMode{
		"box":      component.BlurBox,
		"gaussian": component.BlurGaussian,
	}
)

func lookup[T any](table map[string]T, name *string, what string, dst *T) error {
	if name == nil {
		return nil
	}
	v, ok := table[strings.ToLower(*name)]
	if !ok {
		return fmt.Errorf("unknown %s %q", what, *name)
	}
	*dst = v
	return nil
}

func addLight(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lightSpec](raw)
	if err != nil {
		return fmt.Errorf("decode light spec: %w", err)
	}

	l := component.DefaultLight()
	if spec.Type != nil {
		switch t := component.LightType(strings.ToLower(*spec.Type)); t {
		case component.LightTypeDirectional, component.LightTypeSpot, component.LightTypeOmni:
			l.Type = t
		default:
			return fmt.Errorf("unknown light type %q", *spec.Type)
		}
	}
	setColor(&l.Color, spec.Color)
	set(&l.Intensity, spec.Intensity)
	set(&l.Range, spec.Range)
	set(&l.InnerConeAngle, spec.InnerConeAngle)
	set(&l.OuterConeAngle, spec.OuterConeAngle)
	set(&l.IsStatic, spec.IsStatic)
	set(&l.Bake, spec.Bake)
	set(&l.BakeDir, spec.BakeDir)
	set(&l.AffectDynamic, spec.AffectDynamic)
	set(&l.AffectLightmapped, spec.AffectLightmapped)
	set(&l.CastShadows, spec.CastShadows)
	set(&l.ShadowResolution, spec.ShadowResolution)
	set(&l.ShadowDistance, spec.ShadowDistance)
	set(&l.VsmBlurSize, spec.VsmBlurSize)
	set(&l.VsmBias, spec.VsmBias)
	set(&l.Enabled, spec.Enabled)
	if err := lookup(falloffModes, spec.FalloffMode, "falloff mode", &l.FalloffMode); err != nil {
		return err
	}
	if err := lookup(shadowTypes, spec.ShadowType, "shadow type", &l.ShadowType); err != nil {
		return err
	}
	if err := lookup(blurModes, spec.VsmBlurMode, "blur mode", &l.VsmBlurMode); err != nil {
		return err
	}
	if err := setLayers(&l.Layers, spec.Layers); err != nil {
		return err
	}
	return ecs.Add(w, e, component.LightComponent.Kind(), &l)
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	c := component.DefaultCamera()
	setColor(&c.ClearColor, spec.ClearColor)
	set(&c.Fov, spec.Fov)
	set(&c.NearClip, spec.NearClip)
	set(&c.FarClip, spec.FarClip)
	set(&c.Priority, spec.Priority)
	set(&c.Enabled, spec.Enabled)
	return ecs.Add(w, e, component.CameraComponent.Kind(), &c)
}

type scriptSpec = prefabs.ScriptComponentSpec

// addScript merges instances into an existing script component so scripts
// can be attached in several steps.
func addScript(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[scriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode script spec: %w", err)
	}
	s, ok := ecs.Get(w, e, component.ScriptComponent.Kind())
	if !ok {
		def := component.DefaultScript()
		s = &def
	}
	set(&s.Enabled, spec.Enabled)
	for _, inst := range spec.Instances {
		attrs := make(map[string]any, len(inst.Attributes))
		for k, v := range inst.Attributes {
			attrs[k] = ctx.resolveRef(v)
		}
		if s.Create(inst.Name, attrs) == nil {
			return fmt.Errorf("script %q already attached", inst.Name)
		}
	}
	return ecs.Add(w, e, component.ScriptComponent.Kind(), s)
}

type elementSpec = prefabs.ElementComponentSpec

func addElement(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[elementSpec](raw)
	if err != nil {
		return fmt.Errorf("decode element spec: %w", err)
	}

	el := component.DefaultElement()
	if spec.Type != nil {
		switch t := component.ElementType(strings.ToLower(*spec.Type)); t {
		case component.ElementTypeGroup, component.ElementTypeImage, component.ElementTypeText:
			el.Type = t
		default:
			return fmt.Errorf("unknown element type %q", *spec.Type)
		}
	}
	setVec4(&el.Anchor, spec.Anchor)
	setVec2(&el.Pivot, spec.Pivot)
	set(&el.Width, spec.Width)
	set(&el.Height, spec.Height)
	setColor(&el.Color, spec.Color)
	set(&el.Opacity, spec.Opacity)
	setVec4(&el.Rect, spec.Rect)
	set(&el.Mask, spec.Mask)
	el.TextureAsset = ctx.asset(spec.TextureAsset, assets.KindTexture)
	el.FontAsset = ctx.asset(spec.FontAsset, assets.KindFont)
	set(&el.Text, spec.Text)
	set(&el.FontSize, spec.FontSize)
	set(&el.LineHeight, spec.LineHeight)
	set(&el.AutoWidth, spec.AutoWidth)
	set(&el.AutoHeight, spec.AutoHeight)
	setVec2(&el.Alignment, spec.Alignment)
	set(&el.WrapLines, spec.WrapLines)
	set(&el.Spacing, spec.Spacing)
	setColor(&el.OutlineColor, spec.OutlineColor)
	set(&el.OutlineThickness, spec.OutlineThickness)
	setColor(&el.ShadowColor, spec.ShadowColor)
	setVec2(&el.ShadowOffset, spec.ShadowOffset)
	set(&el.UseInput, spec.UseInput)
	set(&el.Enabled, spec.Enabled)
	if err := setLayers(&el.Layers, spec.Layers); err != nil {
		return err
	}
	return ecs.Add(w, e, component.ElementComponent.Kind(), &el)
}

type buttonSpec = prefabs.ButtonComponentSpec

var transitionModes = map[string]component.ButtonTransitionMode{
	"tint":   component.ButtonTransitionTint,
	"sprite": component.ButtonTransitionSprite,
}

func addButton(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[buttonSpec](raw)
	if err != nil {
		return fmt.Errorf("decode button spec: %w", err)
	}
	b := component.DefaultButton()
	if err := lookup(transitionModes, spec.TransitionMode, "transition mode", &b.TransitionMode); err != nil {
		return err
	}
	setColor(&b.HoverTint, spec.HoverTint)
	setColor(&b.PressedTint, spec.PressedTint)
	setColor(&b.InactiveTint, spec.InactiveTint)
	set(&b.FadeDuration, spec.FadeDuration)
	set(&b.Active, spec.Active)
	set(&b.Enabled, spec.Enabled)
	if spec.ImageEntity != nil {
		if img, ok := ctx.resolveRef(*spec.ImageEntity).(ecs.Entity); ok {
			b.ImageEntity = uint64(img)
		}
	}
	return ecs.Add(w, e, component.ButtonComponent.Kind(), &b)
}

type screenSpec = prefabs.ScreenComponentSpec

var scaleModes = map[string]component.ScaleMode{
	"none":  component.ScaleModeNone,
	"blend": component.ScaleModeBlend,
}

func addScreen(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[screenSpec](raw)
	if err != nil {
		return fmt.Errorf("decode screen spec: %w", err)
	}
	s := component.DefaultScreen()
	set(&s.ScreenSpace, spec.ScreenSpace)
	setVec2(&s.ReferenceResolution, spec.ReferenceResolution)
	set(&s.ScaleBlend, spec.ScaleBlend)
	set(&s.Enabled, spec.Enabled)
	if err := lookup(scaleModes, spec.ScaleMode, "scale mode", &s.ScaleMode); err != nil {
		return err
	}
	return ecs.Add(w, e, component.ScreenComponent.Kind(), &s)
}
