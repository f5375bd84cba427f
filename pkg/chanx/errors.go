package chanx

import "errors"

var (
	// ErrClosed is returned by sends and receives on a closed channel.
	ErrClosed = errors.New("chanx: channel is closed")
	// ErrSealed is returned by sends on a sealed channel.
	ErrSealed = errors.New("chanx: channel is sealed")
	// ErrEmpty is returned by a receive that found nothing to take while the
	// channel may still deliver messages later.
	ErrEmpty = errors.New("chanx: no message available")
	// ErrDrained is returned by the receive that found a sealed channel empty
	// and closed it.
	ErrDrained = errors.New("chanx: channel drained and closed")
)

// IsTerminal reports whether err means no message will ever be received again.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrClosed) || errors.Is(err, ErrDrained)
}

// IsRejected reports whether err is a send rejection.
func IsRejected(err error) bool {
	return errors.Is(err, ErrClosed) || errors.Is(err, ErrSealed)
}
