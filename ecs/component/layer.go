package component

// Layer ids match the host engine's built-in render layers.
type Layer int

const (
	LayerWorld Layer = iota
	LayerDepth
	LayerSkybox
	LayerImmediate
	LayerUI
)
