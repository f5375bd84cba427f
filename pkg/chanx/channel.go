package chanx

import (
	"iter"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/ib-77/chanx/pkg/chanx/log"
)

// Channel is a bounded, thread-safe FIFO of T values with close and seal
// shutdown modes. The zero value is not usable; create channels with New.
type Channel[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond

	queue    *queue[T]
	capacity int
	closed   bool
	sealed   bool
	dropped  int
	stats    Stats

	id     uuid.UUID
	name   string
	logger log.Logger
}

// New creates an open channel. Without options the capacity is 1.
func New[T any](opts ...Option) *Channel[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	// capacities beyond MaxInt cannot be reached by a queue length
	if o.capacity > math.MaxInt {
		o.capacity = math.MaxInt
	}

	c := &Channel[T]{
		queue:    newQueue[T](o.capacity),
		capacity: int(o.capacity),
		id:       uuid.New(),
		name:     o.name,
	}
	c.cond = sync.NewCond(&c.mu)
	c.logger = o.logger.WithField("channel", c.id.String())
	if c.name != "" {
		c.logger = c.logger.WithField("name", c.name)
	}
	return c
}

// ID returns the identity assigned at construction.
func (c *Channel[T]) ID() uuid.UUID {
	return c.id
}

// Name returns the label set with WithName.
func (c *Channel[T]) Name() string {
	return c.name
}

// Cap returns the configured capacity; 0 means unbounded.
func (c *Channel[T]) Cap() int {
	return c.capacity
}

// Close ends the channel immediately. Queued messages are kept but can no
// longer be received. Every blocked caller wakes up and fails.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	residue := c.queue.length()
	c.mu.Unlock()

	c.cond.Broadcast()
	c.logger.Debug("channel closed, %d unread message(s) abandoned", residue)
}

// Seal stops accepting new messages. Receivers keep draining the queue and the
// channel closes once a receive finds it empty. Sealing a closed channel does
// nothing.
func (c *Channel[T]) Seal() {
	c.mu.Lock()
	if c.closed || c.sealed {
		c.mu.Unlock()
		return
	}
	c.sealed = true
	pending := c.queue.length()
	c.mu.Unlock()

	c.cond.Broadcast()
	c.logger.Debug("channel sealed with %d pending message(s)", pending)
}

// IsClosed reports whether the channel reached its terminal state.
func (c *Channel[T]) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// IsSealed reports whether Seal took effect. It stays true after a sealed
// channel has drained and closed.
func (c *Channel[T]) IsSealed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sealed
}

// IsEmpty reports whether no message is queued.
func (c *Channel[T]) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.empty()
}

// IsFull is always false for an unbounded channel.
func (c *Channel[T]) IsFull() bool {
	if c.capacity == 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.length() >= c.capacity
}

// Size returns the number of queued messages, including unread ones left
// behind by Close.
func (c *Channel[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.length()
}

// DroppedCount returns how many messages the most recent successful send
// evicted. It is not a running total; see Stats for that.
func (c *Channel[T]) DroppedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// State returns the current lifecycle stage.
func (c *Channel[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

// Stats returns a snapshot of the cumulative counters.
func (c *Channel[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Channel[T]) state() State {
	switch {
	case c.closed:
		return Closed
	case c.sealed:
		return Sealed
	default:
		return Open
	}
}

// Send appends v without waiting. When the channel is full the oldest
// messages are evicted. It returns false if the channel is sealed or closed.
func (c *Channel[T]) Send(v T) bool {
	_, err := c.Push(DropOldest, v)
	return err == nil
}

// SendWait appends v, first waiting while the channel is full. It returns
// false if the channel is, or becomes, sealed or closed.
func (c *Channel[T]) SendWait(v T) bool {
	_, err := c.Push(BlockWhileFull, v)
	return err == nil
}

// SendWith is Send or SendWait with the policy chosen per call.
func (c *Channel[T]) SendWith(policy SendPolicy, v T) bool {
	_, err := c.Push(policy, v)
	return err == nil
}

// Push appends v under the given policy and returns how many queued messages
// this call evicted. The error is ErrSealed or ErrClosed when the channel no
// longer accepts messages.
func (c *Channel[T]) Push(policy SendPolicy, v T) (int, error) {
	c.mu.Lock()

	if policy == BlockWhileFull && c.capacity > 0 {
		for !c.closed && !c.sealed && c.queue.length() >= c.capacity {
			c.cond.Wait()
		}
	}

	if c.closed || c.sealed {
		c.stats.Rejected++
		err := ErrSealed
		if c.closed {
			err = ErrClosed
		}
		c.mu.Unlock()
		return 0, err
	}

	c.queue.pushBack(v)
	dropped := 0
	if c.capacity > 0 {
		dropped = c.queue.trimFront(c.capacity)
	}
	c.dropped = dropped
	c.stats.Sent++
	c.stats.Dropped += uint64(dropped)
	c.mu.Unlock()

	c.cond.Signal()
	if dropped > 0 {
		c.logger.Trace("queue full, dropped %d oldest message(s)", dropped)
	}
	return dropped, nil
}

// Recv waits for the next message. It returns false once the channel is
// closed, or when it finds a sealed channel empty, in which case it closes
// the channel.
func (c *Channel[T]) Recv() (T, bool) {
	v, err := c.Pull(Wait)
	return v, err == nil
}

// TryRecv takes the next message if one is queued and never waits.
func (c *Channel[T]) TryRecv() (T, bool) {
	v, err := c.Pull(Poll)
	return v, err == nil
}

// RecvWith is Recv or TryRecv with the policy chosen per call.
func (c *Channel[T]) RecvWith(policy RecvPolicy) (T, bool) {
	v, err := c.Pull(policy)
	return v, err == nil
}

// Pull removes the head message under the given policy. On failure the error
// tells the cases apart: ErrClosed (the channel was already closed),
// ErrDrained (this call found the sealed channel empty and closed it) and
// ErrEmpty (nothing queued yet, only with Poll).
func (c *Channel[T]) Pull(policy RecvPolicy) (T, error) {
	var zero T

	c.mu.Lock()

	if policy == Wait && !c.sealed {
		for !c.closed && c.queue.empty() && !c.sealed {
			c.cond.Wait()
		}
	}

	switch {
	case c.closed:
		c.mu.Unlock()
		return zero, ErrClosed
	case c.sealed && c.queue.empty():
		c.closed = true
		c.mu.Unlock()
		c.cond.Broadcast()
		c.logger.Debug("sealed channel drained, closed")
		return zero, ErrDrained
	case c.queue.empty():
		c.mu.Unlock()
		return zero, ErrEmpty
	}

	v, _ := c.queue.popFront()
	c.stats.Received++
	empty := c.queue.empty()
	c.mu.Unlock()

	if empty {
		c.cond.Broadcast()
	} else {
		c.cond.Signal()
	}
	return v, nil
}

// All yields messages received with Wait until the channel reports closure.
// Breaking out of the loop leaves the channel untouched.
func (c *Channel[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Recv()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
