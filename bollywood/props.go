package bollywood

// Producer creates a new instance of an Actor.
type Producer func() Actor

// Props configures how an actor is created.
type Props struct {
	producer    Producer
	mailboxSize int
}

// NewProps panics on a nil producer: that is a wiring bug, not a runtime condition.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer, mailboxSize: defaultMailboxSize}
}

// WithMailboxSize overrides the buffered mailbox capacity.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

func (p *Props) Produce() Actor {
	return p.producer()
}
