package bollywood

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"fortio.org/log"
)

var (
	// ErrActorNotFound is returned by Ask when the PID is unknown or already stopped.
	ErrActorNotFound = errors.New("actor not found")
	// ErrAskTimeout is returned by Ask when no reply arrives in time.
	ErrAskTimeout = errors.New("ask timed out")
	// ErrEngineStopping is returned by Ask once Shutdown has started.
	ErrEngineStopping = errors.New("engine is stopping")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter     uint64
	requestCounter uint64
	actors         map[string]*process
	mu             sync.RWMutex
	stopping       atomic.Bool
}

func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor. It returns nil once the engine is stopping.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		log.Warnf("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	proc.deliver(&messageEnvelope{Message: Started{}})
	return pid
}

// Send delivers a message to the actor identified by pid. Unknown PIDs are ignored.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}
	proc, ok := e.lookup(pid)
	if !ok {
		log.Debugf("Actor %s not found, dropping message %T", pid, message)
		return
	}
	proc.deliver(&messageEnvelope{Sender: sender, Message: message})
}

// Ask sends a message and waits for the actor to call ctx.Reply. A reply that is
// itself an error is returned as the error.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if e.stopping.Load() {
		return nil, ErrEngineStopping
	}
	if pid == nil {
		return nil, ErrActorNotFound
	}
	proc, ok := e.lookup(pid)
	if !ok || proc.stopped.Load() {
		return nil, fmt.Errorf("%w: %s", ErrActorNotFound, pid)
	}

	replyTo := make(chan interface{}, 1)
	requestID := fmt.Sprintf("req-%d", atomic.AddUint64(&e.requestCounter, 1))
	if !proc.deliver(&messageEnvelope{Message: message, RequestID: requestID, replyTo: replyTo}) {
		return nil, fmt.Errorf("%w: %s mailbox rejected %T", ErrActorNotFound, pid, message)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case reply := <-replyTo:
		if err, isErr := reply.(error); isErr {
			return nil, err
		}
		return reply, nil
	case <-proc.doneCh:
		return nil, fmt.Errorf("%w: %s stopped before replying", ErrActorNotFound, pid)
	case <-timer.C:
		return nil, fmt.Errorf("%w after %v waiting on %s", ErrAskTimeout, timeout, pid)
	}
}

// Stop asks an actor to shut down. Its Stopping and Stopped handlers still run.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	proc.requestStop()
}

// Alive reports whether the actor is still registered with the engine.
func (e *Engine) Alive(pid *PID) bool {
	if pid == nil {
		return false
	}
	_, ok := e.lookup(pid)
	return ok
}

// Count returns the number of registered actors.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	return proc, ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits up to timeout for them to exit.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		log.Infof("Engine already shutting down")
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	log.Infof("Engine shutdown: stopping %d actors", len(procs))
	for _, proc := range procs {
		proc.requestStop()
	}

	deadline := time.After(timeout)
	for _, proc := range procs {
		select {
		case <-proc.doneCh:
		case <-deadline:
			log.Warnf("Engine shutdown timeout: %d actors did not stop gracefully", e.Count())
			e.mu.Lock()
			e.actors = make(map[string]*process)
			e.mu.Unlock()
			return
		}
	}
	log.Infof("Engine shutdown complete")
}
