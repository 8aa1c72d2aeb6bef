// File: game/state.go
package game

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a trigger does not apply to a state.
var ErrInvalidTransition = errors.New("invalid state transition")

// State is the phase a session is in.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
	StateWin
)

var stateNames = map[State]string{
	StateStart:    "start",
	StatePlaying:  "playing",
	StateGameOver: "gameover",
	StateWin:      "win",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, fmt.Errorf("unknown state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", text)
}

// Trigger is an event that can move a session to another state.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerOutOfLives
	TriggerBoardCleared
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerOutOfLives:
		return "outOfLives"
	case TriggerBoardCleared:
		return "boardCleared"
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

var transitions = map[State]map[Trigger]State{
	StateStart:    {TriggerStart: StatePlaying},
	StateGameOver: {TriggerStart: StatePlaying},
	StateWin:      {TriggerStart: StatePlaying},
	StatePlaying: {
		TriggerOutOfLives:   StateGameOver,
		TriggerBoardCleared: StateWin,
	},
}

// Next returns the state reached from s on trigger t.
func (s State) Next(t Trigger) (State, error) {
	if next, ok := transitions[s][t]; ok {
		return next, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, t, s)
}

// Terminal reports whether the game has ended and waits for a restart.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWin
}
