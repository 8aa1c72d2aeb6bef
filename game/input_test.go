// File: game/input_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_Defaults(t *testing.T) {
	in := NewInput(800)
	assert.Equal(t, 400.0, in.PointerX)
	assert.False(t, in.PointerActive)
	assert.False(t, in.IsLeft())
	assert.False(t, in.IsRight())
}

func TestInput_Directions(t *testing.T) {
	in := NewInput(800)

	in.KeyDown("a")
	assert.True(t, in.IsLeft())
	in.KeyDown("ArrowRight")
	assert.True(t, in.IsLeft(), "left and right can be held together")
	assert.True(t, in.IsRight())

	in.KeyUp("a")
	assert.False(t, in.IsLeft())
	in.KeyUp("ArrowRight")
	assert.False(t, in.IsRight())

	in.KeyDown("Shift")
	assert.True(t, in.Held("Shift"))
	assert.False(t, in.IsLeft())
	assert.False(t, in.IsRight())

	in.KeyDown("d")
	in.ReleaseAll()
	assert.False(t, in.IsRight())
}

func TestInput_Pointer(t *testing.T) {
	in := NewInput(800)
	in.PointerMove(123)
	assert.True(t, in.PointerActive)
	assert.Equal(t, 123.0, in.PointerX)

	in.PointerLeave()
	assert.False(t, in.PointerActive)
	assert.Equal(t, 123.0, in.PointerX, "leaving keeps the last position")

	in.PointerEnter()
	assert.True(t, in.PointerActive)
}

func TestInput_Apply(t *testing.T) {
	testCases := []struct {
		name  string
		event InputEvent
		start bool
	}{
		{"Space", InputEvent{Type: InputKeyDown, Key: " "}, true},
		{"Enter", InputEvent{Type: InputKeyDown, Key: "Enter"}, true},
		{"Click", InputEvent{Type: InputClick}, true},
		{"Arrow", InputEvent{Type: InputKeyDown, Key: "ArrowLeft"}, false},
		{"KeyUpSpace", InputEvent{Type: InputKeyUp, Key: " "}, false},
		{"Move", InputEvent{Type: InputPointerMove, X: 10}, false},
		{"Unknown", InputEvent{Type: "wheel"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInput(800)
			assert.Equal(t, tc.start, in.Apply(tc.event))
		})
	}

	in := NewInput(800)
	in.Apply(InputEvent{Type: InputPointerMove, X: 250})
	assert.True(t, in.PointerActive)
	assert.Equal(t, 250.0, in.PointerX)
	in.Apply(InputEvent{Type: InputPointerLeave})
	assert.False(t, in.PointerActive)
	in.Apply(InputEvent{Type: InputPointerEnter})
	assert.True(t, in.PointerActive)
	in.Apply(InputEvent{Type: InputKeyDown, Key: "d"})
	assert.True(t, in.IsRight())
	in.Apply(InputEvent{Type: InputKeyUp, Key: "d"})
	assert.False(t, in.IsRight())
}
