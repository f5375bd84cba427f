package chanx

// State is the lifecycle stage of a Channel. It only moves forward:
// Open -> Sealed -> Closed or Open -> Closed.
type State int

const (
	Open State = iota
	Sealed
	Closed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Sealed:
		return "sealed"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// SendPolicy selects how a send behaves when the channel is at capacity.
type SendPolicy int

const (
	// DropOldest never waits: the message is appended and the oldest queued
	// messages are discarded until the queue fits the capacity again.
	DropOldest SendPolicy = iota
	// BlockWhileFull waits for free space, or for the channel to stop accepting.
	BlockWhileFull
)

func (p SendPolicy) String() string {
	if p == BlockWhileFull {
		return "block-while-full"
	}
	return "drop-oldest"
}

// RecvPolicy selects whether a receive waits for a message.
type RecvPolicy int

const (
	// Wait suspends while the channel is open and empty.
	Wait RecvPolicy = iota
	// Poll returns immediately when nothing is queued.
	Poll
)

func (p RecvPolicy) String() string {
	if p == Poll {
		return "poll"
	}
	return "wait"
}
