package system

import (
	"math"

	"github.com/milk9111/vrroom/common"
)

const viewSpan = 28.0

// View maps the XZ floor plane to screen pixels. The world origin sits at the
// screen center and +Z points down the screen.
type View struct {
	Width  int
	Height int
}

func NewView(width, height int) *View {
	v := &View{}
	v.Resize(width, height)
	return v
}

func (v *View) Resize(width, height int) {
	if width <= 0 {
		width = common.BaseWidth
	}
	if height <= 0 {
		height = common.BaseHeight
	}
	v.Width, v.Height = width, height
}

// Scale is the number of pixels per world unit.
func (v *View) Scale() float64 {
	return math.Min(float64(v.Width), float64(v.Height)) / viewSpan
}

func (v *View) ToScreen(x, z float64) (float64, float64) {
	s := v.Scale()
	return float64(v.Width)/2 + x*s, float64(v.Height)/2 + z*s
}

func (v *View) ToWorld(sx, sy float64) (float64, float64) {
	s := v.Scale()
	return (sx - float64(v.Width)/2) / s, (sy - float64(v.Height)/2) / s
}
