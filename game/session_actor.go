// File: game/session_actor.go
package game

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"fortio.org/log"
	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/utils"
)

// SessionActorArgs configures a SessionActor.
type SessionActorArgs struct {
	ID         uint64
	Config     utils.Config
	Rand       *rand.Rand // nil seeds from Config.Seed
	Sink       FrameSink
	ManagerPID *bollywood.PID // notified with sessionEnded when the actor stops itself
	// ManualTicks disables the internal ticker; Tick messages must be sent by the caller.
	ManualTicks bool
}

// SessionActor owns one Session and drives it from Tick messages.
type SessionActor struct {
	args     SessionActorArgs
	engine   *bollywood.Engine
	selfPID  *bollywood.PID
	session  *Session
	recorder *Recorder
	pending  []Event

	ticker   *time.Ticker
	stopTick chan struct{}
	tickOnce sync.Once
	ended    bool
}

// NewSessionActorProducer creates a producer for SessionActor.
func NewSessionActorProducer(engine *bollywood.Engine, args SessionActorArgs) bollywood.Producer {
	return func() bollywood.Actor {
		return &SessionActor{
			args:     args,
			engine:   engine,
			recorder: NewRecorder(),
			stopTick: make(chan struct{}),
		}
	}
}

func (a *SessionActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.handleStart()

	case Tick:
		a.handleTick()

	case InputMessage:
		if a.session != nil {
			a.session.HandleEvent(msg.Event)
		}

	case SnapshotRequest:
		if a.session == nil {
			ctx.Reply(fmt.Errorf("session %d not started", a.args.ID))
			return
		}
		ctx.Reply(a.session.Snapshot())

	case bollywood.Stopping:
		a.stopTicker()
		log.LogVf("SessionActor %s: Stopping session %d.", a.selfPID, a.args.ID)

	case bollywood.Stopped:
		log.LogVf("SessionActor %s: Stopped.", a.selfPID)

	default:
		log.Warnf("SessionActor %s: Received unknown message type: %T", a.selfPID, msg)
		if ctx.RequestID() != "" {
			ctx.Reply(fmt.Errorf("unknown message type: %T", msg))
		}
	}
}

func (a *SessionActor) handleStart() {
	session, err := NewSession(a.args.Config, a.args.Rand)
	if err != nil {
		log.Errf("SessionActor %s: cannot create session %d: %v", a.selfPID, a.args.ID, err)
		a.end(err)
		return
	}
	session.Observe(func(ev Event) {
		a.pending = append(a.pending, ev)
	})
	a.session = session
	log.Infof("SessionActor %s: Started session %d.", a.selfPID, a.args.ID)
	if !a.args.ManualTicks {
		a.startTicker()
	}
}

func (a *SessionActor) startTicker() {
	a.ticker = time.NewTicker(a.args.Config.Tick())
	tickerCh, stopCh := a.ticker.C, a.stopTick
	engine, self := a.engine, a.selfPID
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case <-tickerCh:
				engine.Send(self, Tick{}, nil)
			}
		}
	}()
}

func (a *SessionActor) stopTicker() {
	a.tickOnce.Do(func() {
		if a.ticker != nil {
			a.ticker.Stop()
		}
		close(a.stopTick)
	})
}

func (a *SessionActor) handleTick() {
	if a.session == nil || a.ended {
		return
	}
	a.session.Update()
	a.session.Render(a.recorder)

	frame := FrameMessage{
		MessageType: "frame",
		SessionID:   a.args.ID,
		Frame:       a.session.Frame(),
		State:       a.session.State(),
		Score:       a.session.Score(),
		Lives:       a.session.Lives(),
		Width:       a.args.Config.Field.Width,
		Height:      a.args.Config.Field.Height,
		Events:      a.pending,
		Commands:    a.recorder.Take(),
	}
	a.pending = nil

	if a.args.Sink == nil {
		return
	}
	if err := a.args.Sink.SendFrame(frame); err != nil {
		log.Warnf("SessionActor %s: frame sink failed for session %d: %v", a.selfPID, a.args.ID, err)
		a.end(err)
	}
}

// end stops the actor after a failure and tells the manager to forget the session.
func (a *SessionActor) end(reason error) {
	if a.ended {
		return
	}
	a.ended = true
	a.stopTicker()
	if a.args.ManagerPID != nil {
		a.engine.Send(a.args.ManagerPID, sessionEnded{ID: a.args.ID, Reason: reason}, a.selfPID)
	}
	a.engine.Stop(a.selfPID)
}
