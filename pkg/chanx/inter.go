package chanx

// Sender is the producer side of a channel.
type Sender[T any] interface {
	// Send appends v, evicting the oldest messages on overflow
	Send(v T) bool
	// SendWait appends v, waiting while the channel is full
	SendWait(v T) bool
	// Seal stops accepting messages while letting queued ones drain
	Seal()
}

// Receiver is the consumer side of a channel.
type Receiver[T any] interface {
	// Recv waits for the next message
	Recv() (T, bool)
	// TryRecv takes the next message if one is queued
	TryRecv() (T, bool)
}

// Closer ends a channel immediately.
type Closer interface {
	Close()
	IsClosed() bool
}

var (
	_ Sender[int]   = (*Channel[int])(nil)
	_ Receiver[int] = (*Channel[int])(nil)
	_ Closer        = (*Channel[int])(nil)
)
