// File: game/session.go
package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"fortio.org/log"
	"github.com/lguibr/brickbreaker/utils"
)

// Session is one independent game: its objects, score, lives and state.
// It is not safe for concurrent use; hosts drive it from a single goroutine.
type Session struct {
	cfg utils.Config
	rng *rand.Rand

	input     *Input
	paddle    *Paddle
	ball      *Ball
	grid      *BrickGrid
	particles *ParticleSystem
	trail     *Trail

	state State
	score int
	lives int
	frame uint64

	paddleColor color.NRGBA
	ballColor   color.NRGBA
	observer    func(Event)
}

// NewSession validates cfg and boots a session in the start state, with the
// grid built and the paddle and ball in place. A nil rng is seeded from cfg.Seed.
func NewSession(cfg utils.Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.NewRand(cfg.Seed)
	}
	s := &Session{
		cfg:         cfg,
		rng:         rng,
		input:       NewInput(cfg.Field.Width),
		paddle:      NewPaddle(cfg),
		ball:        NewBall(cfg),
		grid:        NewBrickGrid(cfg.Bricks),
		particles:   NewParticleSystem(cfg.Particles),
		trail:       NewTrail(cfg.Trail.MaxLength),
		state:       StateStart,
		lives:       cfg.Lives,
		paddleColor: utils.MustParseHexColor(cfg.Paddle.Color),
		ballColor:   utils.MustParseHexColor(cfg.Ball.Color),
	}
	s.resetBall()
	return s, nil
}

func (s *Session) Config() utils.Config       { return s.cfg }
func (s *Session) State() State               { return s.state }
func (s *Session) Score() int                 { return s.score }
func (s *Session) Lives() int                 { return s.lives }
func (s *Session) Frame() uint64              { return s.frame }
func (s *Session) Input() *Input              { return s.input }
func (s *Session) Paddle() *Paddle            { return s.paddle }
func (s *Session) Ball() *Ball                { return s.ball }
func (s *Session) Grid() *BrickGrid           { return s.grid }
func (s *Session) Particles() *ParticleSystem { return s.particles }
func (s *Session) Trail() *Trail              { return s.trail }

// Observe sets the function that receives gameplay events. Pass nil to stop.
func (s *Session) Observe(fn func(Event)) {
	s.observer = fn
}

func (s *Session) emit(kind EventKind, x, y float64, points int) {
	if s.observer == nil {
		return
	}
	s.observer(Event{Kind: kind, X: x, Y: y, Points: points, Score: s.score, Lives: s.lives})
}

// HandleEvent applies one input event. Start keys and clicks (re)start the game.
func (s *Session) HandleEvent(ev InputEvent) {
	if s.input.Apply(ev) {
		s.Start()
	}
}

// Start begins a new game unless one is already being played.
func (s *Session) Start() bool {
	if s.state == StatePlaying {
		return false
	}
	if !s.transition(TriggerStart) {
		return false
	}
	s.Reset()
	s.emit(EventStart, s.ball.X, s.ball.Y, 0)
	return true
}

// Reset restores score and lives, rebuilds the grid and repositions paddle and ball.
// It does not change the state.
func (s *Session) Reset() {
	s.score = 0
	s.lives = s.cfg.Lives
	s.grid.Create()
	s.paddle.Reset()
	s.resetBall()
}

func (s *Session) resetBall() {
	s.ball.Reset(s.paddle, s.rng)
	s.trail.Clear()
}

// Update advances the session by one tick. Particles always move; the paddle,
// ball and trail only while playing.
func (s *Session) Update() {
	s.frame++
	s.particles.Update()
	if s.state != StatePlaying {
		return
	}
	s.paddle.Update(s.input)
	contact := s.ball.Update(s.paddle, s.grid)
	s.handleContact(contact)
	s.trail.Push(s.ball.X, s.ball.Y)
}

func (s *Session) handleContact(c Contact) {
	if c.Wall {
		s.emit(EventWall, s.ball.X, s.ball.Y, 0)
	}
	if c.Floor {
		s.loseLife()
		return
	}
	if c.Paddle {
		s.emit(EventPaddle, s.ball.X, s.ball.Y, 0)
	}
	if c.Brick != nil {
		s.destroyBrick(c.Brick)
	}
}

func (s *Session) loseLife() {
	s.lives--
	s.emit(EventLifeLost, s.ball.X, s.ball.Y, 0)
	if s.lives > 0 {
		s.paddle.Reset()
		s.resetBall()
		return
	}
	if s.transition(TriggerOutOfLives) {
		s.emit(EventGameOver, s.ball.X, s.ball.Y, 0)
	}
}

func (s *Session) destroyBrick(b *Brick) {
	s.score += b.Points
	x, y := b.Center()
	s.particles.Spawn(s.rng, x, y, b.Color)
	s.emit(EventBrick, x, y, b.Points)
	if s.grid.AllDestroyed() && s.transition(TriggerBoardCleared) {
		s.emit(EventWin, x, y, 0)
	}
}

func (s *Session) transition(t Trigger) bool {
	next, err := s.state.Next(t)
	if err != nil {
		log.Errf("Session: %v", err)
		return false
	}
	log.LogVf("Session: %s -> %s on %s", s.state, next, t)
	s.state = next
	return true
}

// BallSnapshot and PaddleSnapshot are the positional part of a Snapshot.
type BallSnapshot struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

type PaddleSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is a copy of the session's observable state.
type Snapshot struct {
	State      State          `json:"state"`
	Score      int            `json:"score"`
	Lives      int            `json:"lives"`
	BricksLeft int            `json:"bricksLeft"`
	Particles  int            `json:"particles"`
	Frame      uint64         `json:"frame"`
	Ball       BallSnapshot   `json:"ball"`
	Paddle     PaddleSnapshot `json:"paddle"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:      s.state,
		Score:      s.score,
		Lives:      s.lives,
		BricksLeft: s.grid.Alive(),
		Particles:  s.particles.Len(),
		Frame:      s.frame,
		Ball:       BallSnapshot{X: s.ball.X, Y: s.ball.Y, Dx: s.ball.Dx, Dy: s.ball.Dy},
		Paddle:     PaddleSnapshot{X: s.paddle.X, Y: s.paddle.Y},
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s score=%d lives=%d bricks=%d", s.State, s.Score, s.Lives, s.BricksLeft)
}
