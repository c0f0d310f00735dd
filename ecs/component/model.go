package component

import "github.com/milk9111/vrroom/assets"

type ModelType string

const (
	ModelTypeAsset    ModelType = "asset"
	ModelTypeBox      ModelType = "box"
	ModelTypeSphere   ModelType = "sphere"
	ModelTypePlane    ModelType = "plane"
	ModelTypeCylinder ModelType = "cylinder"
)

type Model struct {
	Type                   ModelType
	Asset                  *assets.Asset
	MaterialAsset          *assets.Asset
	CastShadows            bool
	CastShadowsLightmap    bool
	ReceiveShadows         bool
	IsStatic               bool
	Lightmapped            bool
	LightmapSizeMultiplier float64
	Layers                 []Layer
	Enabled                bool
}

var ModelComponent = NewComponent[Model]()

// DefaultModel returns a model config with the host engine defaults.
func DefaultModel() Model {
	return Model{
		Type:                   ModelTypeAsset,
		CastShadows:            true,
		CastShadowsLightmap:    true,
		ReceiveShadows:         true,
		LightmapSizeMultiplier: 1,
		Layers:                 []Layer{LayerWorld},
		Enabled:                true,
	}
}
