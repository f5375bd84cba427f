package msg

import "github.com/ib-77/chanx/pkg/chanx"

func New2[A, B any](opts ...chanx.Option) *chanx.Channel[Pair[A, B]] {
	return chanx.New[Pair[A, B]](opts...)
}

func New3[A, B, C any](opts ...chanx.Option) *chanx.Channel[Triple[A, B, C]] {
	return chanx.New[Triple[A, B, C]](opts...)
}

func New4[A, B, C, D any](opts ...chanx.Option) *chanx.Channel[Quad[A, B, C, D]] {
	return chanx.New[Quad[A, B, C, D]](opts...)
}

func Send2[A, B any](ch *chanx.Channel[Pair[A, B]], a A, b B) bool {
	return ch.Send(Of2(a, b))
}

func SendWait2[A, B any](ch *chanx.Channel[Pair[A, B]], a A, b B) bool {
	return ch.SendWait(Of2(a, b))
}

// Recv2 waits for the next pair. On failure both values are zero.
func Recv2[A, B any](ch *chanx.Channel[Pair[A, B]]) (A, B, bool) {
	p, ok := ch.Recv()
	return p.First, p.Second, ok
}

func TryRecv2[A, B any](ch *chanx.Channel[Pair[A, B]]) (A, B, bool) {
	p, ok := ch.TryRecv()
	return p.First, p.Second, ok
}

func Send3[A, B, C any](ch *chanx.Channel[Triple[A, B, C]], a A, b B, c C) bool {
	return ch.Send(Of3(a, b, c))
}

func SendWait3[A, B, C any](ch *chanx.Channel[Triple[A, B, C]], a A, b B, c C) bool {
	return ch.SendWait(Of3(a, b, c))
}

func Recv3[A, B, C any](ch *chanx.Channel[Triple[A, B, C]]) (A, B, C, bool) {
	t, ok := ch.Recv()
	return t.First, t.Second, t.Third, ok
}

func TryRecv3[A, B, C any](ch *chanx.Channel[Triple[A, B, C]]) (A, B, C, bool) {
	t, ok := ch.TryRecv()
	return t.First, t.Second, t.Third, ok
}

func Send4[A, B, C, D any](ch *chanx.Channel[Quad[A, B, C, D]], a A, b B, c C, d D) bool {
	return ch.Send(Of4(a, b, c, d))
}

func SendWait4[A, B, C, D any](ch *chanx.Channel[Quad[A, B, C, D]], a A, b B, c C, d D) bool {
	return ch.SendWait(Of4(a, b, c, d))
}

func Recv4[A, B, C, D any](ch *chanx.Channel[Quad[A, B, C, D]]) (A, B, C, D, bool) {
	q, ok := ch.Recv()
	return q.First, q.Second, q.Third, q.Fourth, ok
}

func TryRecv4[A, B, C, D any](ch *chanx.Channel[Quad[A, B, C, D]]) (A, B, C, D, bool) {
	q, ok := ch.TryRecv()
	return q.First, q.Second, q.Third, q.Fourth, ok
}
