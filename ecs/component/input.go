package component

import "github.com/milk9111/vrroom/common"

// Input mirrors the current frame's input state. Keys are named by their
// letter ("W", "Q", ...). Cursor is the pointer projected onto the floor.
type Input struct {
	Keys         map[string]bool
	MousePressed bool
	Cursor       common.Vec2
	CursorValid  bool
	Sources      int
	// Clicked is the button entity activated this frame, or 0.
	Clicked uint64
}

var InputComponent = NewComponent[Input]()

func (in *Input) KeyPressed(name string) bool {
	if in == nil {
		return false
	}
	return in.Keys[name]
}
