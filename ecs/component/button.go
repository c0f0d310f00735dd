package component

import "github.com/milk9111/vrroom/common"

type ButtonTransitionMode int

const (
	ButtonTransitionTint ButtonTransitionMode = iota
	ButtonTransitionSprite
)

// Button tints ImageEntity (an ecs.Entity stored as its raw value) on hover and press.
type Button struct {
	TransitionMode ButtonTransitionMode
	HoverTint      common.Color
	PressedTint    common.Color
	InactiveTint   common.Color
	FadeDuration   float64
	ImageEntity    uint64
	Active         bool
	Enabled        bool
}

var ButtonComponent = NewComponent[Button]()

func DefaultButton() Button {
	return Button{
		TransitionMode: ButtonTransitionTint,
		HoverTint:      common.Color{R: 0.75, G: 0.75, B: 0.75, A: 1},
		PressedTint:    common.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		InactiveTint:   common.Color{R: 0.25, G: 0.25, B: 0.25, A: 1},
		Active:         true,
		Enabled:        true,
	}
}
