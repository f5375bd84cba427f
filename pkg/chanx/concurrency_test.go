package chanx

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWaitBlocksUntilSpace(t *testing.T) {
	t.Parallel()

	c := New[int](WithCapacity(1))
	require.True(t, c.Send(1))

	done := sendWaitAsync(c, 2)
	requireBlocked(t, done)
	assert.Equal(t, 1, c.Size())

	v, ok := c.TryRecv()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, requireReturn(t, done))
	v, ok = c.Recv()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 0, c.DroppedCount())
}

func TestSendWaitReleasedBySeal(t *testing.T) {
	t.Parallel()

	c := New[int](WithCapacity(1))
	require.True(t, c.Send(1))

	done := sendWaitAsync(c, 2)
	requireBlocked(t, done)

	c.Seal()
	assert.False(t, requireReturn(t, done))

	// the queued message is still delivered, then the channel closes
	v, ok := c.Recv()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = c.Recv()
	assert.False(t, ok)
	assert.True(t, c.IsClosed())
}

func TestSendWaitReleasedByClose(t *testing.T) {
	t.Parallel()

	c := New[int](WithCapacity(1))
	require.True(t, c.Send(1))

	done := sendWaitAsync(c, 2)
	requireBlocked(t, done)

	c.Close()
	assert.False(t, requireReturn(t, done))
}

func TestRecvReleasedBySend(t *testing.T) {
	t.Parallel()

	c := New[string]()
	done := recvAsync(c)
	requireBlocked(t, done)

	require.True(t, c.Send("hello"))
	out := requireReturn(t, done)
	assert.True(t, out.ok)
	assert.Equal(t, "hello", out.v)
}

func TestAllBlockedReceiversReleasedBySeal(t *testing.T) {
	t.Parallel()

	const receivers = 8
	c := New[int]()

	outs := make([]<-chan recvOutcome[int], receivers)
	for i := range outs {
		outs[i] = recvAsync(c)
	}
	for _, done := range outs {
		requireBlocked(t, done)
	}

	c.Seal()
	for _, done := range outs {
		out := requireReturn(t, done)
		assert.False(t, out.ok)
	}
	assert.True(t, c.IsClosed())
}

func TestAllBlockedReceiversReleasedByClose(t *testing.T) {
	t.Parallel()

	const receivers = 8
	c := New[int]()

	outs := make([]<-chan recvOutcome[int], receivers)
	for i := range outs {
		outs[i] = recvAsync(c)
	}
	requireBlocked(t, outs[0])

	c.Close()
	for _, done := range outs {
		out := requireReturn(t, done)
		assert.False(t, out.ok)
	}
}

func TestExactlyOneReceiverObservesDrain(t *testing.T) {
	t.Parallel()

	const receivers = 16
	c := New[int]()
	c.Seal()

	var drained, closed atomic.Int32
	var wg sync.WaitGroup
	wg.Add(receivers)
	for i := 0; i < receivers; i++ {
		go func() {
			defer wg.Done()
			_, err := c.Pull(Wait)
			switch {
			case errors.Is(err, ErrDrained):
				drained.Add(1)
			case errors.Is(err, ErrClosed):
				closed.Add(1)
			default:
				t.Errorf("unexpected receive result: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), drained.Load())
	assert.Equal(t, int32(receivers-1), closed.Load())
}

// Producers block while full; consumers drain until the sealed channel
// closes. Every message must arrive exactly once and each producer's
// messages in the order they were sent.
func TestManyProducersManyConsumersBlocking(t *testing.T) {
	t.Parallel()

	const (
		producers   = 6
		consumers   = 5
		perProducer = 500
	)

	type item struct {
		producer int
		seq      int
	}

	c := New[item](WithCapacity(4))

	var producerWG sync.WaitGroup
	producerWG.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer producerWG.Done()
			for s := 0; s < perProducer; s++ {
				if !c.SendWait(item{producer: p, seq: s}) {
					t.Errorf("producer %d rejected at %d", p, s)
					return
				}
			}
		}(p)
	}

	var mu sync.Mutex
	received := make([][]int, consumers)
	var consumerWG sync.WaitGroup
	consumerWG.Add(consumers)
	for i := 0; i < consumers; i++ {
		go func(i int) {
			defer consumerWG.Done()
			for v := range c.All() {
				assert.LessOrEqual(t, c.Size(), 4)
				mu.Lock()
				received[i] = append(received[i], v.producer*perProducer+v.seq)
				mu.Unlock()
			}
		}(i)
	}

	producerWG.Wait()
	c.Seal()
	consumerWG.Wait()

	assert.True(t, c.IsClosed())

	seen := make(map[int]bool, producers*perProducer)
	for _, got := range received {
		last := make(map[int]int)
		for _, id := range got {
			require.False(t, seen[id], "duplicate delivery of %d", id)
			seen[id] = true

			p, s := id/perProducer, id%perProducer
			if prev, ok := last[p]; ok {
				require.Greater(t, s, prev, "producer %d reordered", p)
			}
			last[p] = s
		}
	}
	assert.Len(t, seen, producers*perProducer)

	stats := c.Stats()
	assert.Equal(t, uint64(producers*perProducer), stats.Sent)
	assert.Equal(t, uint64(producers*perProducer), stats.Received)
	assert.Equal(t, uint64(0), stats.Dropped)
}

func TestManyProducersDropOldestAccounting(t *testing.T) {
	t.Parallel()

	const (
		producers   = 8
		perProducer = 1000
		capacity    = 16
	)

	c := New[int](WithCapacity(capacity))

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for s := 0; s < perProducer; s++ {
				dropped, err := c.Push(DropOldest, s)
				if err != nil {
					t.Errorf("unexpected rejection: %v", err)
					return
				}
				if dropped > 1 {
					t.Errorf("single send evicted %d messages", dropped)
				}
			}
		}()
	}

	var received atomic.Uint64
	stop := make(chan struct{})
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		for {
			if _, ok := c.TryRecv(); ok {
				received.Add(1)
				continue
			}
			select {
			case <-stop:
				return
			default:
			}
		}
	}()

	wg.Wait()
	close(stop)
	<-consumerDone

	assert.LessOrEqual(t, c.Size(), capacity)
	stats := c.Stats()
	assert.Equal(t, uint64(producers*perProducer), stats.Sent)
	assert.Equal(t, received.Load(), stats.Received)
	assert.Equal(t, uint64(c.Size()), stats.Pending())
}
