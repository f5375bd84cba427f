package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/chanx/pkg/chanx"
)

type RunHandlers[In, Out any] struct {
	// OnSuccess runs after out accepted the result.
	OnSuccess func(ctx context.Context, in In, out Out)
	// OnError receives inputs whose engine call failed; the line continues.
	OnError func(ctx context.Context, in In, err error)
	// OnRejected receives a result that out refused; the line stops.
	OnRejected func(ctx context.Context, out Out)
	// OnCancel receives an input taken from in after ctx was done.
	OnCancel func(ctx context.Context, in In)
	// KeepOpen leaves out open after the last line stops instead of sealing it.
	KeepOpen bool
}

// Run is Turnout with matching input and output types.
func Run[T any](ctx context.Context, in, out *chanx.Channel[T],
	engine func(ctx context.Context, v T) (T, error),
	handlers RunHandlers[T, T], lines int) <-chan struct{} {
	return Turnout(ctx, in, out, engine, handlers, lines)
}

// Turnout starts lines goroutines that receive from in, apply engine and send
// the results to out. A line stops when in reports closure, out rejects a
// result or ctx is done; a line waiting on an empty in only notices ctx once
// in is sealed or closed, so pair cancellation with CancelSeal or
// CancelClose. When every line has stopped out is sealed, so the
// next stage drains and ends. A non-positive lines falls back to the context
// value, then to 1. The returned channel is closed after that.
func Turnout[In, Out any](ctx context.Context, in *chanx.Channel[In], out *chanx.Channel[Out],
	engine func(ctx context.Context, v In) (Out, error),
	handlers RunHandlers[In, Out], lines int) <-chan struct{} {

	if lines <= 0 {
		lines = GetLines(ctx, 1)
	}
	policy := GetSendPolicy(ctx, chanx.BlockWhileFull)
	stop := onCancel(ctx, in, out)

	done := make(chan struct{})
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go locomotive(ctx, in, out, engine, handlers, policy, wg)
	}

	go func() {
		defer close(done)
		wg.Wait()
		stop()
		if !handlers.KeepOpen {
			out.Seal()
		}
	}()

	return done
}

func locomotive[In, Out any](ctx context.Context, in *chanx.Channel[In], out *chanx.Channel[Out],
	engine func(ctx context.Context, v In) (Out, error),
	handlers RunHandlers[In, Out], policy chanx.SendPolicy, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		if ctx.Err() != nil {
			return
		}

		v, ok := in.Recv()
		if !ok {
			return
		}

		if ctx.Err() != nil {
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, v)
			}
			return
		}

		res, err := engine(ctx, v)
		if err != nil {
			if handlers.OnError != nil {
				handlers.OnError(ctx, v, err)
			}
			continue
		}

		if _, err := out.Push(policy, res); err != nil {
			if handlers.OnRejected != nil {
				handlers.OnRejected(ctx, res)
			}
			return
		}

		if handlers.OnSuccess != nil {
			handlers.OnSuccess(ctx, v, res)
		}
	}
}
