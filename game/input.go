// File: game/input.go
package game

import "github.com/lguibr/brickbreaker/utils"

// InputType names a host input event.
type InputType string

const (
	InputKeyDown      InputType = "keydown"
	InputKeyUp        InputType = "keyup"
	InputPointerMove  InputType = "pointermove"
	InputPointerEnter InputType = "pointerenter"
	InputPointerLeave InputType = "pointerleave"
	InputClick        InputType = "click"
)

// InputEvent is the form in which hosts and remote clients deliver input.
// X is relative to the play field.
type InputEvent struct {
	Type InputType `json:"type"`
	Key  string    `json:"key,omitempty"`
	X    float64   `json:"x,omitempty"`
}

// Input tracks held keys and the last known pointer position.
type Input struct {
	keys          map[string]bool
	PointerX      float64
	PointerActive bool
}

func NewInput(fieldWidth float64) *Input {
	return &Input{
		keys:     make(map[string]bool),
		PointerX: fieldWidth / 2,
	}
}

func (in *Input) KeyDown(key string) { in.keys[key] = true }
func (in *Input) KeyUp(key string)   { in.keys[key] = false }
func (in *Input) Held(key string) bool {
	return in.keys[key]
}

// PointerMove records the pointer position and marks it active.
func (in *Input) PointerMove(x float64) {
	in.PointerX = x
	in.PointerActive = true
}

func (in *Input) PointerEnter() { in.PointerActive = true }
func (in *Input) PointerLeave() { in.PointerActive = false }

// ReleaseAll forgets every held key.
func (in *Input) ReleaseAll() {
	clear(in.keys)
}

func (in *Input) IsLeft() bool {
	return in.anyHeld(-1)
}

func (in *Input) IsRight() bool {
	return in.anyHeld(1)
}

func (in *Input) anyHeld(direction int) bool {
	for key, held := range in.keys {
		if held && utils.KeyDirection(key) == direction {
			return true
		}
	}
	return false
}

// Apply updates the input state from an event. It reports whether the event
// asks to start a game.
func (in *Input) Apply(ev InputEvent) (start bool) {
	switch ev.Type {
	case InputKeyDown:
		in.KeyDown(ev.Key)
		return utils.IsStartKey(ev.Key)
	case InputKeyUp:
		in.KeyUp(ev.Key)
	case InputPointerMove:
		in.PointerMove(ev.X)
	case InputPointerEnter:
		in.PointerEnter()
	case InputPointerLeave:
		in.PointerLeave()
	case InputClick:
		return true
	}
	return false
}
