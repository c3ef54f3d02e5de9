package memkit

// Vector is a growable contiguous array with explicit capacity
// management. Not goroutine-safe.
//
// Live elements occupy [0, Len()); the slots in [Len(), Cap()) are
// allocated but zeroed, so vacated elements never pin memory for the GC.
type Vector[T any] struct {
	buf      []T // len(buf) is the capacity
	size     int
	allocs   int // buffer allocations, including the first
	reallocs int // growths that copied an existing buffer
}

// NewVector creates an empty Vector with no allocated buffer.
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewVectorCap creates an empty Vector with capacity pre-reserved.
// If capacity <= 0, no buffer is allocated.
func NewVectorCap[T any](capacity int) *Vector[T] {
	v := &Vector[T]{}
	if capacity > 0 {
		v.buf = make([]T, capacity)
		v.allocs++
	}
	return v
}

// NewVectorFill creates a Vector holding count copies of value.
// If count <= 0, the Vector is empty.
func NewVectorFill[T any](count int, value T) *Vector[T] {
	v := NewVectorCap[T](count)
	for i := 0; i < count; i++ {
		v.buf[i] = value
	}
	if count > 0 {
		v.size = count
	}
	return v
}

// VectorOf creates a Vector holding the given elements.
func VectorOf[T any](elems ...T) *Vector[T] {
	v := NewVectorCap[T](len(elems))
	copy(v.buf, elems)
	v.size = len(elems)
	return v
}

// Push appends value, growing the buffer when full. Growth doubles the
// capacity (factor 2 keeps Push O(1) amortized) and never shrinks.
func (v *Vector[T]) Push(value T) {
	if v.size == len(v.buf) {
		v.grow(v.size + 1)
	}
	v.buf[v.size] = value
	v.size++
}

// Pop removes and returns the last element. Returns ErrEmpty if the
// Vector is empty. The vacated slot is zeroed.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, ErrEmpty
	}
	v.size--
	value := v.buf[v.size]
	v.buf[v.size] = zero
	return value, nil
}

// Get returns the element at index i without bounds checking beyond the
// live region; an index outside [0, Len()) panics. Use At for a checked
// variant.
func (v *Vector[T]) Get(i int) T {
	return v.buf[:v.size][i]
}

// Set overwrites the element at index i; an index outside [0, Len())
// panics. Use SetAt for a checked variant.
func (v *Vector[T]) Set(i int, value T) {
	v.buf[:v.size][i] = value
}

// At returns the element at index i, or ErrOutOfRange when i is not
// within [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.buf[i], nil
}

// SetAt overwrites the element at index i, or returns ErrOutOfRange when
// i is not within [0, Len()).
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return ErrOutOfRange
	}
	v.buf[i] = value
	return nil
}

// Front returns the first element, or ErrEmpty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.buf[0], nil
}

// Back returns the last element, or ErrEmpty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.buf[v.size-1], nil
}

// Reserve grows the capacity to at least n. It never shrinks and never
// changes the live elements.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.buf) {
		v.reallocate(n)
	}
}

// ShrinkToFit reallocates the buffer down to exactly Len() slots.
// An empty Vector drops its buffer entirely.
func (v *Vector[T]) ShrinkToFit() {
	if v.size == len(v.buf) {
		return
	}
	if v.size == 0 {
		v.buf = nil
		return
	}
	v.reallocate(v.size)
}

// Resize changes Len() to n. Growing appends zero values; shrinking
// zeroes the vacated slots. n < 0 is treated as 0.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeWith(n, zero)
}

// ResizeWith changes Len() to n, filling any new slots with value.
func (v *Vector[T]) ResizeWith(n int, value T) {
	if n < 0 {
		n = 0
	}
	if n > len(v.buf) {
		v.grow(n)
	}
	for i := v.size; i < n; i++ {
		v.buf[i] = value
	}
	if n < v.size {
		clear(v.buf[n:v.size])
	}
	v.size = n
}

// Clear removes all elements but keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Clone returns a deep copy. The copy's buffer is sized to Len(), so its
// capacity may differ from the source's. Mutating the clone never
// affects the source.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewVectorCap[T](v.size)
	copy(c.buf, v.buf[:v.size])
	c.size = v.size
	return c
}

// CopyFrom deep-copies other's elements into v, replacing its contents.
// Copying a Vector into itself is a no-op. The new buffer is allocated
// before the old contents are discarded, so a failed copy cannot leave v
// half-written.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	if other.size > len(v.buf) {
		buf := make([]T, other.size)
		copy(buf, other.buf[:other.size])
		v.buf = buf
		v.allocs++
		v.reallocs++
	} else {
		copy(v.buf, other.buf[:other.size])
		if other.size < v.size {
			clear(v.buf[other.size:v.size])
		}
	}
	v.size = other.size
}

// Concat returns a new Vector holding v's elements followed by other's.
func (v *Vector[T]) Concat(other *Vector[T]) *Vector[T] {
	c := NewVectorCap[T](v.size + other.size)
	copy(c.buf, v.buf[:v.size])
	copy(c.buf[v.size:], other.buf[:other.size])
	c.size = v.size + other.size
	return c
}

// Append appends all of other's elements to v. Appending a Vector to
// itself duplicates its contents.
func (v *Vector[T]) Append(other *Vector[T]) {
	n := other.size
	if v.size+n > len(v.buf) {
		v.grow(v.size + n)
	}
	copy(v.buf[v.size:], other.buf[:n])
	v.size += n
}

// EqualFunc reports whether v and other hold the same elements in the
// same order, comparing elements with eq. Capacity is ignored.
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	if v.size != other.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !eq(v.buf[i], other.buf[i]) {
			return false
		}
	}
	return true
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the Vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Data returns a slice view of the live elements. The view aliases the
// Vector's buffer and is invalidated by any growth.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// Metrics returns a snapshot of Vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           len(v.buf),
		Allocations:   v.allocs,
		Reallocations: v.reallocs,
	}
}

// VectorMetrics contains statistical information about a Vector.
type VectorMetrics struct {
	Len           int // Live elements
	Cap           int // Allocated slots
	Allocations   int // Buffer allocations, including the first
	Reallocations int // Growths that copied an existing buffer
}

// grow reallocates to at least min slots, doubling from the current
// capacity. The old buffer is kept intact until the new one is
// populated.
func (v *Vector[T]) grow(min int) {
	newCap := len(v.buf) * 2
	if newCap == 0 {
		newCap = 1
	}
	for newCap < min {
		newCap *= 2
	}
	v.reallocate(newCap)
}

// reallocate swaps in a fresh buffer of exactly n slots (n >= size).
func (v *Vector[T]) reallocate(n int) {
	buf := make([]T, n)
	copy(buf, v.buf[:v.size])
	if v.buf != nil {
		v.reallocs++
	}
	v.buf = buf
	v.allocs++
}
