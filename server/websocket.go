// File: server/websocket.go
package server

import (
	"sync"
	"time"

	"github.com/lguibr/brickbreaker/game"
	"golang.org/x/net/websocket"
)

// DefaultWriteTimeout bounds a single frame write to a client.
const DefaultWriteTimeout = time.Second

// websocketSink writes a session's frames to one websocket connection. A
// failed write closes the connection, which ends the handler's read loop.
type websocketSink struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	timeout time.Duration
}

func newWebsocketSink(conn *websocket.Conn, timeout time.Duration) *websocketSink {
	return &websocketSink{conn: conn, timeout: timeout}
}

func (w *websocketSink) SendFrame(frame game.FrameMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.conn.SetWriteDeadline(time.Now().Add(w.timeout))
	if err == nil {
		err = websocket.JSON.Send(w.conn, frame)
	}
	if err != nil {
		_ = w.conn.Close()
		return err
	}
	return nil
}
