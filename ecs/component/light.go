package component

import "github.com/milk9111/vrroom/common"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpot        LightType = "spot"
	LightTypeOmni        LightType = "omni"
)

type FalloffMode int

const (
	FalloffLinear FalloffMode = iota
	FalloffInverseSquared
)

type ShadowType int

const (
	ShadowPCF3 ShadowType = iota
	ShadowVSM8
	ShadowVSM16
	ShadowVSM32
	ShadowPCF5
)

type BlurMode int

const (
	BlurBox BlurMode = iota
	BlurGaussian
)

// Light configures a light source. Cone angles are half-angles in degrees,
// measured from the light's -Y axis.
type Light struct {
	Type              LightType
	Color             common.Color
	Intensity         float64
	Range             float64
	FalloffMode       FalloffMode
	InnerConeAngle    float64
	OuterConeAngle    float64
	IsStatic          bool
	Bake              bool
	BakeDir           bool
	AffectDynamic     bool
	AffectLightmapped bool
	CastShadows       bool
	ShadowResolution  int
	ShadowDistance    float64
	ShadowType        ShadowType
	VsmBlurMode       BlurMode
	VsmBlurSize       int
	VsmBias           float64
	Layers            []Layer
	Enabled           bool
}

var LightComponent = NewComponent[Light]()

// DefaultLight returns a light config with the host engine defaults.
func DefaultLight() Light {
	return Light{
		Type:             LightTypeDirectional,
		Color:            common.White,
		Intensity:        1,
		Range:            10,
		FalloffMode:      FalloffLinear,
		InnerConeAngle:   40,
		OuterConeAngle:   45,
		AffectDynamic:    true,
		ShadowResolution: 1024,
		ShadowDistance:   40,
		ShadowType:       ShadowPCF3,
		VsmBlurMode:      BlurGaussian,
		VsmBlurSize:      11,
		VsmBias:          0.01,
		Layers:           []Layer{LayerWorld},
		Enabled:          true,
	}
}
