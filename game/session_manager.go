// File: game/session_manager.go
package game

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"fortio.org/log"
	"github.com/kamstrup/intmap"
	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/utils"
)

// DefaultMaxSessions bounds concurrent sessions when no cap is configured.
const DefaultMaxSessions = 64

const snapshotTimeout = 100 * time.Millisecond

// SessionManagerArgs configures a SessionManagerActor.
type SessionManagerArgs struct {
	Config      utils.Config
	MaxSessions int
	ManualTicks bool // passed to every session actor
}

// SessionManagerActor spawns, tracks and stops session actors.
type SessionManagerActor struct {
	engine   *bollywood.Engine
	args     SessionManagerArgs
	sessions *intmap.Map[uint64, *bollywood.PID]
	selfPID  *bollywood.PID
	nextID   uint64
}

// NewSessionManagerProducer creates a producer for the SessionManagerActor.
func NewSessionManagerProducer(engine *bollywood.Engine, args SessionManagerArgs) bollywood.Producer {
	if args.MaxSessions <= 0 {
		args.MaxSessions = DefaultMaxSessions
	}
	return func() bollywood.Actor {
		return &SessionManagerActor{
			engine:   engine,
			args:     args,
			sessions: intmap.New[uint64, *bollywood.PID](args.MaxSessions),
			nextID:   1,
		}
	}
}

func (a *SessionManagerActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		log.Infof("SessionManagerActor %s: Started (max %d sessions).", a.selfPID, a.args.MaxSessions)

	case CreateSession:
		a.handleCreate(ctx, msg)

	case EndSession:
		a.handleEnd(msg.ID)

	case sessionEnded:
		if _, ok := a.sessions.Get(msg.ID); ok {
			log.Infof("SessionManagerActor %s: Session %d ended: %v", a.selfPID, msg.ID, msg.Reason)
			a.sessions.Del(msg.ID)
		}

	case ListSessions:
		ctx.Reply(a.summaries())

	case bollywood.Stopping:
		log.Infof("SessionManagerActor %s: Stopping. Shutting down %d sessions.", a.selfPID, a.sessions.Len())
		a.sessions.ForEach(func(_ uint64, pid *bollywood.PID) bool {
			a.engine.Stop(pid)
			return true
		})
		a.sessions.Clear()

	case bollywood.Stopped:
		log.Infof("SessionManagerActor %s: Stopped.", a.selfPID)

	default:
		log.Warnf("SessionManagerActor %s: Received unknown message type: %T", a.selfPID, msg)
		if ctx.RequestID() != "" {
			ctx.Reply(fmt.Errorf("unknown message type: %T", msg))
		}
	}
}

func (a *SessionManagerActor) handleCreate(ctx bollywood.Context, msg CreateSession) {
	if a.sessions.Len() >= a.args.MaxSessions {
		log.Warnf("SessionManagerActor %s: Max sessions (%d) reached.", a.selfPID, a.args.MaxSessions)
		ctx.Reply(ErrTooManySessions)
		return
	}

	id := a.nextID
	a.nextID++
	cfg := a.args.Config
	if msg.Seed != 0 {
		cfg.Seed = msg.Seed
	}
	pid := a.engine.Spawn(bollywood.NewProps(NewSessionActorProducer(a.engine, SessionActorArgs{
		ID:          id,
		Config:      cfg,
		Sink:        msg.Sink,
		ManagerPID:  a.selfPID,
		ManualTicks: a.args.ManualTicks,
	})))
	if pid == nil {
		ctx.Reply(fmt.Errorf("spawning session %d: %w", id, bollywood.ErrEngineStopping))
		return
	}
	a.sessions.Put(id, pid)
	log.Infof("SessionManagerActor %s: Created session %d as %s.", a.selfPID, id, pid)
	ctx.Reply(SessionCreated{ID: id, PID: pid})
}

func (a *SessionManagerActor) handleEnd(id uint64) {
	pid, ok := a.sessions.Get(id)
	if !ok {
		return
	}
	a.sessions.Del(id)
	log.Infof("SessionManagerActor %s: Ending session %d.", a.selfPID, id)
	a.engine.Stop(pid)
}

// summaries asks every session for its snapshot concurrently, so the manager
// waits at most one snapshotTimeout. Sessions that do not answer are marked busy.
func (a *SessionManagerActor) summaries() []SessionSummary {
	out := make([]SessionSummary, 0, a.sessions.Len())
	a.sessions.ForEach(func(id uint64, pid *bollywood.PID) bool {
		out = append(out, SessionSummary{ID: id, PID: pid.String()})
		return true
	})
	slices.SortFunc(out, func(x, y SessionSummary) int { return cmp.Compare(x.ID, y.ID) })

	var wg sync.WaitGroup
	for i := range out {
		pid, _ := a.sessions.Get(out[i].ID)
		wg.Add(1)
		go func(summary *SessionSummary, pid *bollywood.PID) {
			defer wg.Done()
			reply, err := a.engine.Ask(pid, SnapshotRequest{}, snapshotTimeout)
			snap, ok := reply.(Snapshot)
			if err != nil || !ok {
				log.LogVf("SessionManagerActor %s: session %d busy: %v", a.selfPID, summary.ID, err)
				summary.Busy = true
				return
			}
			summary.Snapshot = snap
		}(&out[i], pid)
	}
	wg.Wait()
	return out
}
