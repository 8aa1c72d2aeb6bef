// File: game/keyhold.go
package game

import "time"

// Terminals report key presses and auto-repeats but never releases. KeyHold
// counts a key as held until its repeats stop arriving.
const (
	InitialHold = 500 * time.Millisecond // covers the auto-repeat delay
	RepeatHold  = 100 * time.Millisecond
)

type KeyHold struct {
	deadlines map[string]time.Time
}

func NewKeyHold() *KeyHold {
	return &KeyHold{deadlines: make(map[string]time.Time)}
}

// Press records a key event and reports whether it is a new press.
func (k *KeyHold) Press(key string, now time.Time) bool {
	deadline, held := k.deadlines[key]
	if !held {
		k.deadlines[key] = now.Add(InitialHold)
		return true
	}
	if next := now.Add(RepeatHold); next.After(deadline) {
		k.deadlines[key] = next
	}
	return false
}

// Expire returns the keys whose repeats stopped, forgetting them.
func (k *KeyHold) Expire(now time.Time) []string {
	var released []string
	for key, deadline := range k.deadlines {
		if now.After(deadline) {
			released = append(released, key)
			delete(k.deadlines, key)
		}
	}
	return released
}
