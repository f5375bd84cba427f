package msg

type Pair[A, B any] struct {
	First  A
	Second B
}

func Of2[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func Of3[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func Of4[A, B, C, D any](a A, b B, c C, d D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}
}

func (q Quad[A, B, C, D]) Unpack() (A, B, C, D) {
	return q.First, q.Second, q.Third, q.Fourth
}
