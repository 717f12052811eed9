// Package rotation provides circular, bidirectional browsing over fixed sequences.
package rotation

import "errors"

var (
	ErrEmptyRing = errors.New("ring is empty")
	ErrNoCursor  = errors.New("ring cursor not initialized, call First")
)

// Ring is a fixed circular sequence with a single cursor.
// The cursor is undefined until First is called.
type Ring[T any] struct {
	values []T
	cursor int
}

// NewRing builds a ring in the order of values. The slice is copied.
func NewRing[T any](values []T) *Ring[T] {
	return &Ring[T]{
		values: append([]T(nil), values...),
		cursor: -1,
	}
}

func (r *Ring[T]) Len() int {
	return len(r.values)
}

// Values returns a copy of the ring contents, head first.
func (r *Ring[T]) Values() []T {
	return append([]T(nil), r.values...)
}

// First moves the cursor to the head and returns its value.
func (r *Ring[T]) First() (T, error) {
	var zero T
	if len(r.values) == 0 {
		return zero, ErrEmptyRing
	}
	r.cursor = 0
	return r.values[0], nil
}

// Current returns the value under the cursor.
func (r *Ring[T]) Current() (T, error) {
	var zero T
	err := r.ready()
	if err != nil {
		return zero, err
	}
	return r.values[r.cursor], nil
}

// Next advances the cursor, wrapping from the tail to the head.
func (r *Ring[T]) Next() (T, error) {
	return r.step(1)
}

// Prev moves the cursor back, wrapping from the head to the tail.
func (r *Ring[T]) Prev() (T, error) {
	return r.step(-1)
}

func (r *Ring[T]) step(delta int) (T, error) {
	var zero T
	err := r.ready()
	if err != nil {
		return zero, err
	}
	n := len(r.values)
	r.cursor = ((r.cursor+delta)%n + n) % n
	return r.values[r.cursor], nil
}

func (r *Ring[T]) ready() error {
	if len(r.values) == 0 {
		return ErrEmptyRing
	}
	if r.cursor < 0 {
		return ErrNoCursor
	}
	return nil
}
