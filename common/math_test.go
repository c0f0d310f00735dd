package common

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Fatalf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRotateEulerFlipsDown(t *testing.T) {
	got := RotateEuler(Vec3{Y: -1}, Vec3{X: 180})
	if math.Abs(got.Y-1) > 1e-9 || math.Abs(got.X) > 1e-9 || math.Abs(got.Z) > 1e-9 {
		t.Fatalf("expected (0,1,0), got %+v", got)
	}
}

func TestColorNRGBA(t *testing.T) {
	c := RGB255(121, 171, 253).NRGBA()
	if c.R != 121 || c.G != 171 || c.B != 253 || c.A != 255 {
		t.Fatalf("unexpected color %+v", c)
	}
}
