package component

import "github.com/milk9111/vrroom/common"

type ScaleMode int

const (
	ScaleModeNone ScaleMode = iota
	ScaleModeBlend
)

// Screen is the root of a 2D UI tree. Screen-space screens are drawn over the
// scene and are not affected by the camera.
type Screen struct {
	ScreenSpace         bool
	ReferenceResolution common.Vec2
	ScaleMode           ScaleMode
	ScaleBlend          float64
	Enabled             bool
}

var ScreenComponent = NewComponent[Screen]()

func DefaultScreen() Screen {
	return Screen{
		ReferenceResolution: common.Vec2{X: 640, Y: 320},
		ScaleMode:           ScaleModeNone,
		ScaleBlend:          0.5,
		Enabled:             true,
	}
}

// ScaleFor returns the UI scale for a target resolution, blending between
// width and height ratios like the host engine's blend mode.
func (s *Screen) ScaleFor(width, height float64) float64 {
	if s.ScaleMode != ScaleModeBlend || s.ReferenceResolution.X <= 0 || s.ReferenceResolution.Y <= 0 {
		return 1
	}
	rx := width / s.ReferenceResolution.X
	ry := height / s.ReferenceResolution.Y
	return common.Lerp(rx, ry, s.ScaleBlend)
}
