// File: game/test_utils.go
package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/lguibr/brickbreaker/utils"
)

// --- Test Helpers ---

// TestSeed makes launch directions reproducible in tests.
const TestSeed = 42

// NewTestSession builds a session from DefaultConfig with a fixed seed. Options
// may adjust the config before the session is created.
func NewTestSession(t testing.TB, opts ...func(*utils.Config)) *Session {
	t.Helper()
	cfg := utils.DefaultConfig()
	cfg.Seed = TestSeed
	for _, opt := range opts {
		opt(&cfg)
	}
	s, err := NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// PlaceBall overrides the ball position and velocity.
func PlaceBall(s *Session, x, y, dx, dy float64) {
	s.ball.X, s.ball.Y = x, y
	s.ball.Dx, s.ball.Dy = dx, dy
}

// DestroyAllBut kills every brick except the ones listed as {row, col}.
func DestroyAllBut(s *Session, keep ...[2]int) {
	s.grid.ForEach(func(b *Brick) bool {
		for _, k := range keep {
			if b.Row == k[0] && b.Col == k[1] {
				return true
			}
		}
		s.grid.Destroy(b)
		return true
	})
}

// ErrSinkClosed is what MockFrameSink returns once failing.
var ErrSinkClosed = errors.New("sink closed")

// MockFrameSink records frames and can be switched to fail.
type MockFrameSink struct {
	mu     sync.Mutex
	frames []FrameMessage
	fail   bool
}

func (m *MockFrameSink) SendFrame(frame FrameMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return ErrSinkClosed
	}
	m.frames = append(m.frames, frame)
	return nil
}

func (m *MockFrameSink) Fail() {
	m.mu.Lock()
	m.fail = true
	m.mu.Unlock()
}

func (m *MockFrameSink) Frames() []FrameMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]FrameMessage, len(m.frames))
	copy(out, m.frames)
	return out
}

func (m *MockFrameSink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// BlockingFrameSink blocks every SendFrame until Release is called.
type BlockingFrameSink struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func NewBlockingFrameSink() *BlockingFrameSink {
	return &BlockingFrameSink{entered: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *BlockingFrameSink) SendFrame(FrameMessage) error {
	select {
	case b.entered <- struct{}{}:
	default:
	}
	<-b.release
	return nil
}

// Entered is signalled when a SendFrame call starts blocking.
func (b *BlockingFrameSink) Entered() <-chan struct{} { return b.entered }

func (b *BlockingFrameSink) Release() { b.once.Do(func() { close(b.release) }) }
