package component

import "github.com/milk9111/vrroom/common"

// Lightmap holds the baked lighting result for a lightmapped model. Direction
// is the dominant incoming light direction and is only set by directional
// bakes.
type Lightmap struct {
	Color      common.Color
	Direction  common.Vec3
	Resolution int
}

var LightmapComponent = NewComponent[Lightmap]()
