package flow

// deque is a growable ring buffer with O(1) push/pop at both ends.
// The potential pass needs push-front for its small-label-first heuristic.
type deque[T any] struct {
	buf  []T
	head int
	n    int
}

func newDeque[T any](capacity int) *deque[T] {
	if capacity < 4 {
		capacity = 4
	}

	return &deque[T]{buf: make([]T, capacity)}
}

func (d *deque[T]) len() int { return d.n }

func (d *deque[T]) front() T { return d.buf[d.head] }

func (d *deque[T]) pushBack(x T) {
	d.grow()
	d.buf[(d.head+d.n)%len(d.buf)] = x
	d.n++
}

func (d *deque[T]) pushFront(x T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = x
	d.n++
}

func (d *deque[T]) popFront() T {
	x := d.buf[d.head]
	var zero T
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.n--

	return x
}

// grow doubles the buffer when full, unrolling it so head is 0.
func (d *deque[T]) grow() {
	if d.n < len(d.buf) {
		return
	}
	buf := make([]T, 2*len(d.buf))
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}
