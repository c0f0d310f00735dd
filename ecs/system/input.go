package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
)

const stickDeadzone = 0.2

var keyBindings = map[string][]ebiten.Key{
	"W": {ebiten.KeyW, ebiten.KeyArrowUp},
	"A": {ebiten.KeyA, ebiten.KeyArrowLeft},
	"S": {ebiten.KeyS, ebiten.KeyArrowDown},
	"D": {ebiten.KeyD, ebiten.KeyArrowRight},
	"Q": {ebiten.KeyQ},
	"E": {ebiten.KeyE},
}

// InputSystem samples keyboard, mouse and gamepads into the Input component,
// creating the singleton input entity on first use.
type InputSystem struct {
	view *View
}

func NewInputSystem(view *View) *InputSystem {
	return &InputSystem{view: view}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	input := InputState(w)

	keys := make(map[string]bool, len(keyBindings))
	for name, bound := range keyBindings {
		for _, k := range bound {
			if ebiten.IsKeyPressed(k) {
				keys[name] = true
				break
			}
		}
	}

	gamepads := ebiten.GamepadIDs()
	if len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		applyAxis(keys, lx, "A", "D")
		applyAxis(keys, ly, "W", "S")
		applyAxis(keys, rx, "Q", "E")
	}

	input.Keys = keys
	input.Sources = len(gamepads)
	input.MousePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if len(gamepads) > 0 && inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], ebiten.StandardGamepadButtonRightBottom) {
		input.MousePressed = true
	}
	input.Clicked = 0

	cx, cy := ebiten.CursorPosition()
	input.CursorValid = false
	if i.view != nil && cx >= 0 && cy >= 0 && cx < i.view.Width && cy < i.view.Height {
		x, z := i.view.ToWorld(float64(cx), float64(cy))
		input.Cursor = common.Vec2{X: x, Y: z}
		input.CursorValid = true
	}
}

func applyAxis(keys map[string]bool, v float64, neg, pos string) {
	if math.Abs(v) <= stickDeadzone {
		return
	}
	if v < 0 {
		keys[neg] = true
	} else {
		keys[pos] = true
	}
}

// InputState returns the world's input component, creating it if needed.
func InputState(w *ecs.World) *component.Input {
	if e, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			return in
		}
	}
	in := &component.Input{Keys: map[string]bool{}}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.InputComponent.Kind(), in)
	return in
}
