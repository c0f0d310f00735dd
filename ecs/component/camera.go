package component

import "github.com/milk9111/vrroom/common"

type Camera struct {
	ClearColor common.Color
	Fov        float64
	NearClip   float64
	FarClip    float64
	Priority   int
	Enabled    bool
}

var CameraComponent = NewComponent[Camera]()

func DefaultCamera() Camera {
	return Camera{
		ClearColor: common.Color{R: 0.7294, G: 0.7294, B: 0.6941, A: 1},
		Fov:        45,
		NearClip:   0.1,
		FarClip:    1000,
		Enabled:    true,
	}
}
