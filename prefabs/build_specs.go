package prefabs

import "gopkg.in/yaml.v3"

// EntitySpec describes one entity of a prefab tree. Component entries are
// decoded per kind by the entity builder.
type EntitySpec struct {
	Name       string         `yaml:"name"`
	Enabled    *bool          `yaml:"enabled"`
	Transform  *TransformSpec `yaml:"transform"`
	Tags       []string       `yaml:"tags"`
	Components map[string]any `yaml:"components"`
	Children   []EntitySpec   `yaml:"children"`
}

func LoadEntitySpec(filename string) (EntitySpec, error) {
	return LoadSpec[EntitySpec](filename)
}

// DecodeComponentSpec converts a raw YAML component entry to T. A value that
// already is a T (or *T) is returned as is.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	switch v := raw.(type) {
	case nil:
		return zero, nil
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, nil
		}
		return *v, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformSpec struct {
	Position []float64 `yaml:"position"`
	Euler    []float64 `yaml:"euler"`
	Scale    []float64 `yaml:"scale"`
}

// Unset fields below keep the component defaults.

type ModelComponentSpec struct {
	Type                   *string  `yaml:"type"`
	Asset                  *string  `yaml:"asset"`
	MaterialAsset          *string  `yaml:"material_asset"`
	CastShadows            *bool    `yaml:"cast_shadows"`
	CastShadowsLightmap    *bool    `yaml:"cast_shadows_lightmap"`
	ReceiveShadows         *bool    `yaml:"receive_shadows"`
	IsStatic               *bool    `yaml:"is_static"`
	Lightmapped            *bool    `yaml:"lightmapped"`
	LightmapSizeMultiplier *float64 `yaml:"lightmap_size_multiplier"`
	Layers                 []string `yaml:"layers"`
	Enabled                *bool    `yaml:"enabled"`
}

type LightComponentSpec struct {
	Type              *string    `yaml:"type"`
	Color             *YAMLColor `yaml:"color"`
	Intensity         *float64   `yaml:"intensity"`
	Range             *float64   `yaml:"range"`
	FalloffMode       *string    `yaml:"falloff_mode"`
	InnerConeAngle    *float64   `yaml:"inner_cone_angle"`
	OuterConeAngle    *float64   `yaml:"outer_cone_angle"`
	IsStatic          *bool      `yaml:"is_static"`
	Bake              *bool      `yaml:"bake"`
	BakeDir           *bool      `yaml:"bake_dir"`
	AffectDynamic     *bool      `yaml:"affect_dynamic"`
	AffectLightmapped *bool      `yaml:"affect_lightmapped"`
	CastShadows       *bool      `yaml:"cast_shadows"`
	ShadowResolution  *int       `yaml:"shadow_resolution"`
	ShadowDistance    *float64   `yaml:"shadow_distance"`
	ShadowType        *string    `yaml:"shadow_type"`
	VsmBlurMode       *string    `yaml:"vsm_blur_mode"`
	VsmBlurSize       *int       `yaml:"vsm_blur_size"`
	VsmBias           *float64   `yaml:"vsm_bias"`
	Layers            []string   `yaml:"layers"`
	Enabled           *bool      `yaml:"enabled"`
}

type CameraComponentSpec struct {
	ClearColor *YAMLColor `yaml:"clear_color"`
	Fov        *float64   `yaml:"fov"`
	NearClip   *float64   `yaml:"near_clip"`
	FarClip    *float64   `yaml:"far_clip"`
	Priority   *int       `yaml:"priority"`
	Enabled    *bool      `yaml:"enabled"`
}

// ScriptComponentSpec attaches named scripts. String attributes of the form
// "@Name" refer to the entity called Name in the same prefab tree.
type ScriptComponentSpec struct {
	Instances []ScriptInstanceSpec `yaml:"instances"`
	Enabled   *bool                `yaml:"enabled"`
}

type ScriptInstanceSpec struct {
	Name       string         `yaml:"name"`
	Attributes map[string]any `yaml:"attributes"`
}

type ElementComponentSpec struct {
	Type             *string    `yaml:"type"`
	Anchor           []float64  `yaml:"anchor"`
	Pivot            []float64  `yaml:"pivot"`
	Width            *float64   `yaml:"width"`
	Height           *float64   `yaml:"height"`
	Color            *YAMLColor `yaml:"color"`
	Opacity          *float64   `yaml:"opacity"`
	Rect             []float64  `yaml:"rect"`
	Mask             *bool      `yaml:"mask"`
	TextureAsset     *string    `yaml:"texture_asset"`
	FontAsset        *string    `yaml:"font_asset"`
	Text             *string    `yaml:"text"`
	FontSize         *float64   `yaml:"font_size"`
	LineHeight       *float64   `yaml:"line_height"`
	AutoWidth        *bool      `yaml:"auto_width"`
	AutoHeight       *bool      `yaml:"auto_height"`
	Alignment        []float64  `yaml:"alignment"`
	WrapLines        *bool      `yaml:"wrap_lines"`
	Spacing          *float64   `yaml:"spacing"`
	OutlineColor     *YAMLColor `yaml:"outline_color"`
	OutlineThickness *float64   `yaml:"outline_thickness"`
	ShadowColor      *YAMLColor `yaml:"shadow_color"`
	ShadowOffset     []float64  `yaml:"shadow_offset"`
	UseInput         *bool      `yaml:"use_input"`
	Layers           []string   `yaml:"layers"`
	Enabled          *bool      `yaml:"enabled"`
}

type ButtonComponentSpec struct {
	TransitionMode *string    `yaml:"transition_mode"`
	HoverTint      *YAMLColor `yaml:"hover_tint"`
	PressedTint    *YAMLColor `yaml:"pressed_tint"`
	InactiveTint   *YAMLColor `yaml:"inactive_tint"`
	FadeDuration   *float64   `yaml:"fade_duration"`
	ImageEntity    *string    `yaml:"image_entity"`
	Active         *bool      `yaml:"active"`
	Enabled        *bool      `yaml:"enabled"`
}

type ScreenComponentSpec struct {
	ScreenSpace         *bool     `yaml:"screen_space"`
	ReferenceResolution []float64 `yaml:"reference_resolution"`
	ScaleMode           *string   `yaml:"scale_mode"`
	ScaleBlend          *float64  `yaml:"scale_blend"`
	Enabled             *bool     `yaml:"enabled"`
}
