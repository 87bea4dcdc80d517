package containers

import (
	"fmt"
	"reflect"
)

// FixedArray holds exactly N elements of T, N chosen when the array is
// built. It never grows or reallocates.
//
// A FixedArray is neither copyable nor movable: there is no Clone or Move,
// and go vet rejects copies by value. Data leaves it only through explicit
// element-wise copies.
type FixedArray[T any] struct {
	_   noCopy
	buf []T
}

// NewFixedArray creates an array of n zero-valued elements.
// Panics with ErrLengthMismatch if n is negative.
func NewFixedArray[T any](n int) *FixedArray[T] {
	if n < 0 {
		panic(fmt.Errorf("%w: negative length %d", ErrLengthMismatch, n))
	}
	return &FixedArray[T]{buf: make([]T, n)}
}

// FixedArrayOf creates an array of n elements holding copies of values in
// order. Panics with ErrLengthMismatch unless len(values) == n.
//
//	arr := containers.FixedArrayOf(4, 1, 2, 3, 4)
func FixedArrayOf[T any](n int, values ...T) *FixedArray[T] {
	checkLength(len(values), n)
	f := &FixedArray[T]{buf: make([]T, n)}
	for i := range values {
		f.buf[i] = copyOf(&values[i])
	}
	return f
}

// Size returns N.
func (f *FixedArray[T]) Size() int { return len(f.buf) }

// At returns a pointer to element i. Panics with ErrIndexOutOfRange unless
// 0 <= i < Size().
func (f *FixedArray[T]) At(i int) *T {
	checkIndex(i, len(f.buf))
	return &f.buf[i]
}

// Get returns element i, with the same bounds check as At.
func (f *FixedArray[T]) Get(i int) T {
	checkIndex(i, len(f.buf))
	return f.buf[i]
}

// Data returns the N elements. The slice aliases the array's storage.
func (f *FixedArray[T]) Data() []T { return f.buf }

// Release destroys all N elements. Their slots are left holding zero
// values, so Size is unchanged.
func (f *FixedArray[T]) Release() {
	for i := range f.buf {
		destroy(&f.buf[i])
	}
}

func (f *FixedArray[T]) String() string {
	return fmt.Sprintf("FixedArray[%s] { size: %d }", reflect.TypeOf((*T)(nil)).Elem(), len(f.buf))
}
