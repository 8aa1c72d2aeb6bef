package bollywood

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"fortio.org/log"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	props    *Props
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// deliver enqueues without blocking. A full mailbox drops the message.
func (p *process) deliver(envelope *messageEnvelope) bool {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return false
	}
	select {
	case p.mailbox <- envelope:
		return true
	default:
		log.Warnf("Actor %s mailbox full, dropping message type %T", p.pid, envelope.Message)
		return false
	}
}

func (p *process) requestStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Errf("Actor %s panicked: %v\n%s", p.pid, r, string(debug.Stack()))
		}
		p.stopped.Store(true)
		if p.actor != nil {
			p.invoke(&messageEnvelope{Message: Stopped{}})
		}
		p.engine.remove(p.pid)
		close(p.doneCh)
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		log.Errf("Actor %s producer returned nil actor", p.pid)
		return
	}

	for {
		select {
		case <-p.stopCh:
			p.stopping()
			return
		case envelope := <-p.mailbox:
			if _, ok := envelope.Message.(Stopping); ok {
				p.stopping()
				return
			}
			if p.stopped.Load() {
				continue
			}
			p.invoke(envelope)
		}
	}
}

// stopping runs the Stopping handler exactly once.
func (p *process) stopping() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	p.invoke(&messageEnvelope{Message: Stopping{}})
}

func (p *process) invoke(envelope *messageEnvelope) {
	ctx := &context{
		engine:    p.engine,
		self:      p.pid,
		sender:    envelope.Sender,
		message:   envelope.Message,
		requestID: envelope.RequestID,
		replyTo:   envelope.replyTo,
	}
	defer func() {
		if r := recover(); r != nil {
			log.Errf("Actor %s panicked during Receive(%T): %v\n%s", p.pid, envelope.Message, r, string(debug.Stack()))
		}
	}()
	p.actor.Receive(ctx)
}
