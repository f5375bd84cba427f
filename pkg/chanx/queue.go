package chanx

const minQueueSize = 4

// queue is a growable ring buffer. It is not safe for concurrent use; the
// owning Channel serialises access.
type queue[T any] struct {
	buf  []T
	head int
	len  int
}

func newQueue[T any](capacity uint) *queue[T] {
	size := minQueueSize
	// bounded queues briefly hold capacity+1 elements before eviction
	if capacity > 0 && int(capacity)+1 > size && capacity < 1<<16 {
		size = int(capacity) + 1
	}
	return &queue[T]{buf: make([]T, size)}
}

func (q *queue[T]) length() int {
	return q.len
}

func (q *queue[T]) empty() bool {
	return q.len == 0
}

func (q *queue[T]) pushBack(v T) {
	if q.len == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.len)%len(q.buf)] = v
	q.len++
}

func (q *queue[T]) popFront() (zero T, _ bool) {
	if q.len == 0 {
		return zero, false
	}

	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.len--
	if q.len == 0 {
		q.head = 0
	}
	return v, true
}

// trimFront drops elements from the head until at most limit remain and
// returns how many were dropped.
func (q *queue[T]) trimFront(limit int) int {
	dropped := 0
	for q.len > limit {
		q.popFront()
		dropped++
	}
	return dropped
}

func (q *queue[T]) grow() {
	buf := make([]T, len(q.buf)*2)
	n := copy(buf, q.buf[q.head:])
	copy(buf[n:], q.buf[:q.head])
	q.buf = buf
	q.head = 0
}
