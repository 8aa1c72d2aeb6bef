// File: cmd/brickbreaker-tui/keys.go
package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/brickbreaker/game"
)

// translateKey maps a tcell key to the key names the game understands.
func translateKey(key tcell.Key, r rune) (string, bool) {
	switch key {
	case tcell.KeyLeft:
		return "ArrowLeft", true
	case tcell.KeyRight:
		return "ArrowRight", true
	case tcell.KeyEnter:
		return "Enter", true
	case tcell.KeyRune:
		return string(r), true
	}
	return "", false
}

func isQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q')
}

// mouseToField converts a cell column to a field x coordinate at the cell center.
func mouseToField(col, cols int, fieldWidth float64) float64 {
	return (float64(col) + 0.5) * fieldWidth / float64(max(cols, 1))
}

// keyInput turns a key press into game input. Repeats of a held key produce nothing.
func keyInput(key string, keys *game.KeyHold, now time.Time) []game.InputEvent {
	if !keys.Press(key, now) {
		return nil
	}
	out := []game.InputEvent{{Type: game.InputKeyDown, Key: key}}
	if key == "ArrowLeft" || key == "ArrowRight" || key == "a" || key == "d" {
		// Keys take over from the mouse until it moves again.
		out = append(out, game.InputEvent{Type: game.InputPointerLeave})
	}
	return out
}

// mouseInput turns a mouse event into game input. prev is the button state
// seen before this event.
func mouseInput(col, cols int, fieldWidth float64, buttons, prev tcell.ButtonMask) []game.InputEvent {
	out := []game.InputEvent{{Type: game.InputPointerMove, X: mouseToField(col, cols, fieldWidth)}}
	if buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
		out = append(out, game.InputEvent{Type: game.InputClick})
	}
	return out
}
