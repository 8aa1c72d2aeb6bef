// File: game/events.go
package game

// EventKind names a gameplay event.
type EventKind string

const (
	EventStart    EventKind = "start"
	EventWall     EventKind = "wall"
	EventPaddle   EventKind = "paddle"
	EventBrick    EventKind = "brick"
	EventLifeLost EventKind = "lifeLost"
	EventGameOver EventKind = "gameOver"
	EventWin      EventKind = "win"
)

// Event describes something that happened during a tick, for sound and logging.
type Event struct {
	Kind   EventKind `json:"kind"`
	X      float64   `json:"x,omitempty"`
	Y      float64   `json:"y,omitempty"`
	Points int       `json:"points,omitempty"`
	Score  int       `json:"score"`
	Lives  int       `json:"lives"`
}
