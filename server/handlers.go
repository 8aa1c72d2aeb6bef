// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime/debug"

	"fortio.org/log"
	"github.com/lguibr/brickbreaker/game"
	"golang.org/x/net/websocket"
)

// HandleSubscribe gives every websocket connection its own session. Client
// messages are InputEvents; the session ends when the connection closes.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.Request().RemoteAddr
		log.Infof("HandleSubscribe: New connection from %s", connectionAddr)

		defer func() {
			if r := recover(); r != nil {
				log.Errf("PANIC recovered in HandleSubscribe for %s: %v\n%s", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		engine, managerPID := s.GetEngine(), s.GetManagerPID()
		if engine == nil || managerPID == nil {
			log.Errf("HandleSubscribe: Server engine or manager PID is nil. Closing connection %s.", connectionAddr)
			return
		}

		reply, err := engine.Ask(managerPID, game.CreateSession{Sink: newWebsocketSink(ws, s.getWriteTimeout())}, s.askTimeout)
		if err != nil {
			log.Warnf("HandleSubscribe: Cannot create session for %s: %v", connectionAddr, err)
			return
		}
		created, ok := reply.(game.SessionCreated)
		if !ok {
			log.Errf("HandleSubscribe: Unexpected reply %T from session manager", reply)
			return
		}
		defer engine.Send(managerPID, game.EndSession{ID: created.ID}, nil)

		log.Infof("HandleSubscribe: Connection %s playing session %d", connectionAddr, created.ID)
		s.readLoop(ws, created)
		log.Infof("HandleSubscribe: Connection %s left session %d", connectionAddr, created.ID)
	}
}

// readLoop forwards input events until the connection closes or sends garbage.
func (s *Server) readLoop(conn *websocket.Conn, session game.SessionCreated) {
	engine := s.GetEngine()
	for {
		var event game.InputEvent
		err := websocket.JSON.Receive(conn, &event)
		if err != nil {
			var netErr net.Error
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
			case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
				log.Warnf("ReadLoop: Malformed message on session %d: %v", session.ID, err)
			case errors.As(err, &netErr) && netErr.Timeout():
				log.Warnf("ReadLoop: Read timeout on session %d", session.ID)
			default:
				log.Warnf("ReadLoop: Error receiving on session %d: %v", session.ID, err)
			}
			return
		}
		engine.Send(session.PID, game.InputMessage{Event: event}, nil)
	}
}

// HandleGetSessions lists the live sessions with their snapshots.
func (s *Server) HandleGetSessions() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, managerPID := s.GetEngine(), s.GetManagerPID()
		if engine == nil || managerPID == nil {
			http.Error(w, "server not ready", http.StatusServiceUnavailable)
			return
		}
		reply, err := engine.Ask(managerPID, game.ListSessions{}, s.askTimeout)
		if err != nil {
			log.Errf("HandleGetSessions: %v", err)
			http.Error(w, fmt.Sprintf("listing sessions: %v", err), http.StatusServiceUnavailable)
			return
		}
		sessions, ok := reply.([]game.SessionSummary)
		if !ok {
			http.Error(w, "unexpected reply from session manager", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sessions); err != nil {
			log.Warnf("HandleGetSessions: writing response: %v", err)
		}
	}
}

func (s *Server) HandleHealth() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok")
	}
}
