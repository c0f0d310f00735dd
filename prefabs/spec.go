package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/vrroom/common"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSettings mirrors the editor's project and scene settings.
type SceneSettings struct {
	Name        string       `yaml:"name"`
	AssetPrefix string       `yaml:"asset_prefix"`
	Graphics    GraphicsSpec `yaml:"graphics"`
	Canvas      CanvasSpec   `yaml:"canvas"`
	Scene       SceneSpec    `yaml:"scene"`
	Lightmap    LightmapSpec `yaml:"lightmap"`
	Window      WindowSpec   `yaml:"window"`
	Input       InputSpec    `yaml:"input"`
}

type GraphicsSpec struct {
	Antialias             bool `yaml:"antialias"`
	Alpha                 bool `yaml:"alpha"`
	PreserveDrawingBuffer bool `yaml:"preserve_drawing_buffer"`
	PreferWebGL2          bool `yaml:"prefer_webgl2"`
}

type CanvasSpec struct {
	FillMode   string `yaml:"fill_mode"`
	Resolution string `yaml:"resolution"`
}

type SceneSpec struct {
	ToneMapping     string     `yaml:"tone_mapping"`
	AmbientLight    *YAMLColor `yaml:"ambient_light"`
	Exposure        float64    `yaml:"exposure"`
	GammaCorrection string     `yaml:"gamma_correction"`
	Fog             string     `yaml:"fog"`
}

type LightmapSpec struct {
	SizeMultiplier float64 `yaml:"size_multiplier"`
	Mode           string  `yaml:"mode"`
	MaxResolution  int     `yaml:"max_resolution"`
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type InputSpec struct {
	Mouse    bool `yaml:"mouse"`
	Touch    bool `yaml:"touch"`
	Gamepads bool `yaml:"gamepads"`
	Keyboard bool `yaml:"keyboard"`
}

func LoadSceneSettings() (*SceneSettings, error) {
	spec, err := LoadSpec[SceneSettings]("scene_settings.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// Common converts the color to the engine's float representation.
func (c *YAMLColor) Common() common.Color {
	if c == nil || c.Color == nil {
		return common.Black
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return common.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255, A: float64(n.A) / 255}
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
