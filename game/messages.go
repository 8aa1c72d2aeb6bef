// File: game/messages.go
package game

import (
	"errors"

	"github.com/lguibr/brickbreaker/bollywood"
)

// ErrTooManySessions is replied when the manager is at its session cap.
var ErrTooManySessions = errors.New("too many sessions")

// --- Message Header ---
// Used for identifying message types after unmarshalling from JSON
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

// --- WebSocket Messages (Server -> Client) ---

// FrameMessage carries one rendered frame and the events of the tick that produced it.
type FrameMessage struct {
	MessageType string        `json:"messageType"` // "frame"
	SessionID   uint64        `json:"sessionId"`
	Frame       uint64        `json:"frame"`
	State       State         `json:"state"`
	Score       int           `json:"score"`
	Lives       int           `json:"lives"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Events      []Event       `json:"events,omitempty"`
	Commands    []DrawCommand `json:"commands"`
}

// FrameSink receives the frames of one session. It is called from the session
// actor's goroutine only.
type FrameSink interface {
	SendFrame(frame FrameMessage) error
}

// --- Session Actor Messages ---

// Tick advances the session one step and emits a frame.
type Tick struct{}

// InputMessage forwards a client input event to a session actor.
type InputMessage struct {
	Event InputEvent
}

// SnapshotRequest asks a session actor for its Snapshot (via Ask).
type SnapshotRequest struct{}

// --- Session Manager Messages ---

// CreateSession asks the manager (via Ask) for a new session writing to Sink.
// A zero Seed uses the configured seed.
type CreateSession struct {
	Sink FrameSink
	Seed uint64
}

// SessionCreated is the reply to CreateSession.
type SessionCreated struct {
	ID  uint64
	PID *bollywood.PID
}

// EndSession stops a session and forgets it.
type EndSession struct {
	ID uint64
}

// ListSessions asks the manager (via Ask) for a []SessionSummary.
type ListSessions struct{}

// SessionSummary describes one live session. Busy sessions did not answer in
// time, usually because a frame write is blocked, and carry no snapshot.
type SessionSummary struct {
	ID       uint64   `json:"id"`
	PID      string   `json:"pid"`
	Busy     bool     `json:"busy,omitempty"`
	Snapshot Snapshot `json:"snapshot"`
}

// sessionEnded is sent by a session actor that stopped on its own.
type sessionEnded struct {
	ID     uint64
	Reason error
}
