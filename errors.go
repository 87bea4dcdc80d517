package containers

import (
	"errors"
	"fmt"
)

// Contract violations. Containers never return these: they panic with an
// error wrapping one of them, since a violation is a bug in the caller.
var (
	ErrIndexOutOfRange = errors.New("containers: index out of range")
	ErrLengthMismatch  = errors.New("containers: initializer length mismatch")
)

// checkIndex panics unless 0 <= i < size.
func checkIndex(i, size int) {
	if i < 0 || i >= size {
		panic(fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, size))
	}
}

// checkLength panics unless got == want.
func checkLength(got, want int) {
	if got != want {
		panic(fmt.Errorf("%w: got %d values, want %d", ErrLengthMismatch, got, want))
	}
}
