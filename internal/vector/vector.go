// Package vector implements the indexable sequence holding the bucket slots of a table. A table never resizes
// its vector, a rehash replaces it with a new one.
package vector

import "fmt"

// OutOfRange - Custom error to inform that an index was outside the valid range of a sequence
type OutOfRange struct {
	msg string
}

// Error - Used to notify that an index was outside the valid range
func (E OutOfRange) Error() string {
	if E.msg == "" {
		return "index out of range"
	}
	return E.msg
}

// Is - Makes errors.Is match any OutOfRange regardless of its message
func (E OutOfRange) Is(target error) bool {
	_, ok := target.(OutOfRange)
	return ok
}

// NewOutOfRange - Returns an OutOfRange error describing index and size
func NewOutOfRange(index, size int) OutOfRange {
	return OutOfRange{msg: fmt.Sprintf("index %d out of range for size %d", index, size)}
}

// Vector - Indexable sequence of T
type Vector[T any] struct {
	data []T
}

// New - Returns a pointer to a new Vector holding n zero values of T
func New[T any](n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	return &Vector[T]{data: make([]T, n)}
}

// Size - Returns the number of elements
func (V *Vector[T]) Size() int {
	return len(V.data)
}

// At - Returns a pointer to the element at index, or an error of type OutOfRange if index is not within [0, Size()).
func (V *Vector[T]) At(index int) (element *T, err error) {
	if index < 0 || index >= len(V.data) {
		err = NewOutOfRange(index, len(V.data))
		return
	}

	element = &V.data[index]

	return
}

// Index - Returns a pointer to the element at index without a range check of its own, the caller guarantees
// 0 <= index < Size(). A violation panics.
func (V *Vector[T]) Index(index int) *T {
	return &V.data[index]
}
