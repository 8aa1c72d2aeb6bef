// File: server/server.go
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"golang.org/x/net/websocket"
)

// DefaultAskTimeout bounds every request the server makes to the session manager.
const DefaultAskTimeout = 2 * time.Second

// Server exposes the session manager over HTTP and websockets.
type Server struct {
	mu           sync.RWMutex
	engine       *bollywood.Engine
	managerPID   *bollywood.PID
	askTimeout   time.Duration
	writeTimeout time.Duration
}

func New(engine *bollywood.Engine, managerPID *bollywood.PID) *Server {
	return &Server{
		engine:       engine,
		managerPID:   managerPID,
		askTimeout:   DefaultAskTimeout,
		writeTimeout: DefaultWriteTimeout,
	}
}

// SetWriteTimeout changes the frame write deadline for new connections.
func (s *Server) SetWriteTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeTimeout = d
}

func (s *Server) getWriteTimeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writeTimeout
}

func (s *Server) GetEngine() *bollywood.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func (s *Server) GetManagerPID() *bollywood.PID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.managerPID
}

// Handler routes /subscribe, /sessions and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	mux.HandleFunc("GET /sessions", s.HandleGetSessions())
	mux.HandleFunc("GET /healthz", s.HandleHealth())
	return mux
}
