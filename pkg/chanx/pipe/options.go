package pipe

import (
	"context"

	"github.com/ib-77/chanx/pkg/chanx"
)

type OptionKey string

const (
	SendOptionKey    OptionKey = "send_options"
	CancelOptionKey  OptionKey = "cancel_options"
	WorkerOptionKey  OptionKey = "worker_options"
	ProcessOptionKey OptionKey = "process_options"
)

// CancelPolicy decides what a stage does to its channels when its context is
// cancelled. Goroutines blocked inside a channel call only return once the
// channel changes state, so CancelNone may keep them until someone else
// seals or closes it.
type CancelPolicy int

const (
	CancelNone CancelPolicy = iota
	CancelSeal
	CancelClose
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type SendOptions struct {
	Policy chanx.SendPolicy
}

type CancelOptions struct {
	Policy CancelPolicy
}

type ProcessOptions struct {
	ProcessRemaining bool
}

func WithSendPolicy(ctx context.Context, policy chanx.SendPolicy) context.Context {
	return context.WithValue(ctx, SendOptionKey, SendOptions{Policy: policy})
}

func WithCancelPolicy(ctx context.Context, policy CancelPolicy) context.Context {
	return context.WithValue(ctx, CancelOptionKey, CancelOptions{Policy: policy})
}

func WithLines(ctx context.Context, lines int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: lines}})
}

func WithProcessRemaining(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func GetSendPolicy(ctx context.Context, defaultPolicy chanx.SendPolicy) chanx.SendPolicy {
	options, ok := ctx.Value(SendOptionKey).(SendOptions)
	if ok {
		return options.Policy
	}
	return defaultPolicy
}

func GetCancelPolicy(ctx context.Context, defaultPolicy CancelPolicy) CancelPolicy {
	options, ok := ctx.Value(CancelOptionKey).(CancelOptions)
	if ok {
		return options.Policy
	}
	return defaultPolicy
}

func GetLines(ctx context.Context, defaultLines int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultLines
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

type shutter interface {
	Seal()
	Close()
}

// onCancel applies the context's cancel policy to channels once ctx is done.
// The returned function detaches it.
func onCancel(ctx context.Context, channels ...shutter) func() bool {
	policy := GetCancelPolicy(ctx, CancelNone)
	if policy == CancelNone {
		return func() bool { return false }
	}

	return context.AfterFunc(ctx, func() {
		for _, ch := range channels {
			if policy == CancelClose {
				ch.Close()
			} else {
				ch.Seal()
			}
		}
	})
}
