package pipe

import (
	"context"

	"github.com/ib-77/chanx/pkg/chanx"
)

type FeedHandlers[T any] struct {
	// OnRejected receives values the channel refused because it was sealed or
	// closed, followed by whatever src still delivers when remaining values
	// are processed.
	OnRejected func(ctx context.Context, v T)
	// OnDropped reports how many queued messages one send evicted.
	OnDropped func(ctx context.Context, dropped int)
	// KeepOpen leaves ch open when src is exhausted instead of sealing it.
	KeepOpen bool
}

type EmitHandlers[T any] struct {
	// OnCancel receives a message that was taken from the channel but could
	// not be delivered before the context ended.
	OnCancel func(ctx context.Context, v T)
}

// Feed sends values in order with the context's send policy and returns how
// many were accepted. It stops at the first rejection or context error.
func Feed[T any](ctx context.Context, ch *chanx.Channel[T], values ...T) int {
	policy := GetSendPolicy(ctx, chanx.BlockWhileFull)
	stop := onCancel(ctx, ch)
	defer stop()

	sent := 0
	for _, v := range values {
		if ctx.Err() != nil {
			return sent
		}
		if !ch.SendWith(policy, v) {
			return sent
		}
		sent++
	}
	return sent
}

// FeedChan forwards src into ch until src is closed, the channel rejects a
// value or ctx is done. An exhausted src seals ch unless handlers.KeepOpen.
// The returned channel is closed when forwarding has stopped.
func FeedChan[T any](ctx context.Context, src <-chan T, ch *chanx.Channel[T],
	handlers FeedHandlers[T]) <-chan struct{} {

	policy := GetSendPolicy(ctx, chanx.BlockWhileFull)
	done := make(chan struct{})

	go func() {
		defer close(done)

		stop := onCancel(ctx, ch)
		defer stop()

		if ctx.Err() != nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-src:
				if !ok {
					if !handlers.KeepOpen {
						ch.Seal()
					}
					return
				}

				dropped, err := ch.Push(policy, v)
				if err != nil {
					rejectRemaining(ctx, v, src, handlers.OnRejected)
					return
				}
				if dropped > 0 && handlers.OnDropped != nil {
					handlers.OnDropped(ctx, dropped)
				}
			}
		}
	}()

	return done
}

func rejectRemaining[T any](ctx context.Context, v T, src <-chan T, onRejected func(ctx context.Context, v T)) {
	if onRejected == nil {
		return
	}
	onRejected(ctx, v)

	if IsProcessRemainingEnabled(ctx, false) {
		for rest := range src {
			onRejected(ctx, rest)
		}
	}
}

// ToChan receives from ch with waiting receives and forwards every message
// to the returned Go channel, which is closed once ch reports closure or ctx
// is found done. ctx is only checked between receives: a pump waiting on an
// empty open ch returns after ch is sealed or closed, which a CancelSeal or
// CancelClose policy does on cancellation. Under CancelNone the caller has to
// end ch.
func ToChan[T any](ctx context.Context, ch *chanx.Channel[T], handlers EmitHandlers[T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		stop := onCancel(ctx, ch)
		defer stop()

		for {
			if ctx.Err() != nil {
				return
			}

			v, ok := ch.Recv()
			if !ok {
				return
			}

			select {
			case out <- v:
			case <-ctx.Done():
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, v)
				}
				return
			}
		}
	}()

	return out
}

// Collect gathers every message ToChan emits.
func Collect[T any](ctx context.Context, ch *chanx.Channel[T]) []T {
	res := make([]T, 0)
	for v := range ToChan(ctx, ch, EmitHandlers[T]{}) {
		res = append(res, v)
	}
	return res
}
