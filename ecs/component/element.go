package component

import (
	"github.com/milk9111/vrroom/assets"
	"github.com/milk9111/vrroom/common"
)

type ElementType string

const (
	ElementTypeGroup ElementType = "group"
	ElementTypeImage ElementType = "image"
	ElementTypeText  ElementType = "text"
)

type Element struct {
	Type             ElementType
	Anchor           common.Vec4
	Pivot            common.Vec2
	Width            float64
	Height           float64
	Color            common.Color
	Opacity          float64
	Rect             common.Vec4
	Mask             bool
	TextureAsset     *assets.Asset
	FontAsset        *assets.Asset
	Text             string
	FontSize         float64
	LineHeight       float64
	AutoWidth        bool
	AutoHeight       bool
	Alignment        common.Vec2
	WrapLines        bool
	Spacing          float64
	OutlineColor     common.Color
	OutlineThickness float64
	ShadowColor      common.Color
	ShadowOffset     common.Vec2
	UseInput         bool
	Layers           []Layer
	Enabled          bool
}

var ElementComponent = NewComponent[Element]()

func DefaultElement() Element {
	return Element{
		Type:         ElementTypeGroup,
		Pivot:        common.Vec2{X: 0.5, Y: 0.5},
		Width:        32,
		Height:       32,
		Color:        common.White,
		Opacity:      1,
		Rect:         common.Vec4{X: 0, Y: 0, Z: 1, W: 1},
		FontSize:     32,
		LineHeight:   32,
		AutoWidth:    true,
		AutoHeight:   true,
		Alignment:    common.Vec2{X: 0.5, Y: 0.5},
		Spacing:      1,
		OutlineColor: common.Black,
		ShadowColor:  common.Black,
		Layers:       []Layer{LayerUI},
		Enabled:      true,
	}
}
