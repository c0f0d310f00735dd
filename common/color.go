package common

import "image/color"

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{R: 0, G: 0, B: 0, A: 1}
)

// RGB255 builds an opaque color from 0-255 channel values.
func RGB255(r, g, b float64) Color {
	return Color{R: r / 255, G: g / 255, B: b / 255, A: 1}
}

func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A}
}

func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// NRGBA converts c to an 8-bit color, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(Clamp01(c.R)*255 + 0.5),
		G: uint8(Clamp01(c.G)*255 + 0.5),
		B: uint8(Clamp01(c.B)*255 + 0.5),
		A: uint8(Clamp01(c.A)*255 + 0.5),
	}
}
