package containers

import (
	"fmt"
	"reflect"
)

const (
	// initialCapacity is the capacity of a default-constructed GrowableArray,
	// and the capacity an empty buffer grows to.
	initialCapacity = 2
	// growthFactor multiplies the capacity of a full, non-empty buffer.
	growthFactor = 2
)

// GrowableArray is an owning buffer of T with an explicit size/capacity
// split. Slots [0, Size()) hold live elements; slots [Size(), Capacity())
// are allocated but hold nothing and are never torn down.
//
// A GrowableArray must not be copied by value. Use Clone or CopyFrom for a
// copy with its own buffer, Move or MoveFrom to hand the buffer over.
//
// Pointers returned by At, PushBack, PushBackMove and EmplaceBack are
// invalidated by any reallocation.
//
// The zero value is an empty array with zero capacity that takes its
// buffers from GoAllocator.
type GrowableArray[T any] struct {
	_     noCopy
	buf   []T // len(buf) is the capacity
	size  int
	alloc Allocator
}

// NewGrowableArray creates an empty array with capacity 2 whose buffers come
// from alloc. A nil alloc means GoAllocator.
func NewGrowableArray[T any](alloc Allocator) *GrowableArray[T] {
	a := &GrowableArray[T]{alloc: orDefault(alloc)}
	a.reallocate(initialCapacity)
	return a
}

// GrowableArrayOf creates an array holding copies of values, in order, with
// capacity exactly len(values).
func GrowableArrayOf[T any](alloc Allocator, values ...T) *GrowableArray[T] {
	a := &GrowableArray[T]{alloc: orDefault(alloc)}
	a.reallocate(len(values))
	for i := range values {
		a.buf[a.size] = copyOf(&values[i])
		a.size++
	}
	return a
}

// Size returns the number of live elements.
func (a *GrowableArray[T]) Size() int { return a.size }

// Capacity returns the number of allocated slots.
func (a *GrowableArray[T]) Capacity() int { return len(a.buf) }

// PushBack appends a copy of value and returns a pointer to the stored
// element.
func (a *GrowableArray[T]) PushBack(value T) *T {
	a.growIfFull()
	a.buf[a.size] = copyOf(&value)
	a.size++
	return &a.buf[a.size-1]
}

// PushBackMove appends the element held by value, taking ownership of it.
// *value is reset to the zero value and must not be torn down by the caller.
func (a *GrowableArray[T]) PushBackMove(value *T) *T {
	// Take the element before growing: value may point into a.buf.
	v := *value
	var zero T
	*value = zero

	a.growIfFull()
	a.buf[a.size] = v
	a.size++
	return &a.buf[a.size-1]
}

// EmplaceBack constructs a new element directly in the next free slot by
// calling construct on it, and returns a pointer to it. The slot holds the
// zero value when construct runs. A nil construct leaves the zero value.
func (a *GrowableArray[T]) EmplaceBack(construct func(*T)) *T {
	a.growIfFull()
	slot := &a.buf[a.size]
	if construct != nil {
		construct(slot)
	}
	a.size++
	return slot
}

// PopBack destroys the last element. It is a no-op on an empty array.
func (a *GrowableArray[T]) PopBack() {
	if a.size > 0 {
		a.size--
		destroy(&a.buf[a.size])
	}
}

// Clear destroys every element. The capacity is unchanged.
func (a *GrowableArray[T]) Clear() {
	for i := 0; i < a.size; i++ {
		destroy(&a.buf[i])
	}
	a.size = 0
}

// Trim gives the unused slots back to the allocator, so that Capacity
// equals Size. Elements keep their values.
func (a *GrowableArray[T]) Trim() {
	if a.size < len(a.buf) {
		a.reallocate(a.size)
	}
}

// At returns a pointer to element i. Panics with ErrIndexOutOfRange unless
// 0 <= i < Size().
func (a *GrowableArray[T]) At(i int) *T {
	checkIndex(i, a.size)
	return &a.buf[i]
}

// Get returns a copy of element i, with the same bounds check as At.
// The copy is a plain assignment and shares state with the element.
func (a *GrowableArray[T]) Get(i int) T {
	checkIndex(i, a.size)
	return a.buf[i]
}

// Clone returns a new array with its own buffer of the same capacity,
// holding copies of a's elements.
func (a *GrowableArray[T]) Clone() *GrowableArray[T] {
	c := &GrowableArray[T]{alloc: a.alloc}
	c.copyElements(a)
	return c
}

// CopyFrom destroys a's elements, returns its buffer, and replaces them with
// copies of src's elements in a buffer of src's capacity. Copying an array
// onto itself does nothing.
func (a *GrowableArray[T]) CopyFrom(src *GrowableArray[T]) {
	if a == src {
		return
	}
	a.Release()
	a.copyElements(src)
}

// Move returns a new array that owns a's buffer and elements. a is left
// empty with zero capacity and stays usable.
func (a *GrowableArray[T]) Move() *GrowableArray[T] {
	m := &GrowableArray[T]{buf: a.buf, size: a.size, alloc: a.alloc}
	a.buf, a.size = nil, 0
	return m
}

// MoveFrom destroys a's elements, returns its buffer, and takes over src's
// buffer and elements. src is left empty with zero capacity. Moving an array
// onto itself does nothing.
func (a *GrowableArray[T]) MoveFrom(src *GrowableArray[T]) {
	if a == src {
		return
	}
	a.Release()
	// The buffer is returned to the allocator it came from.
	a.buf, a.size, a.alloc = src.buf, src.size, src.alloc
	src.buf, src.size = nil, 0
}

// Release destroys every element and returns the buffer to the allocator,
// leaving a empty with zero capacity. The array may be reused afterwards.
func (a *GrowableArray[T]) Release() {
	a.Clear()
	freeSlots(a.alloc, a.buf)
	a.buf = nil
}

// String describes the array for diagnostics. The format is not stable.
func (a *GrowableArray[T]) String() string {
	return fmt.Sprintf("GrowableArray[%s] { size: %d, capacity: %d }",
		reflect.TypeOf((*T)(nil)).Elem(), a.size, len(a.buf))
}

// copyElements fills the empty a with copies of src's elements in a buffer
// of src's capacity.
func (a *GrowableArray[T]) copyElements(src *GrowableArray[T]) {
	a.buf = allocSlots[T](a.alloc, len(src.buf))
	for a.size = 0; a.size < src.size; a.size++ {
		a.buf[a.size] = copyOf(&src.buf[a.size])
	}
}

// growIfFull grows the buffer when there is no free slot: to 2 slots from
// zero capacity, otherwise to twice the capacity.
func (a *GrowableArray[T]) growIfFull() {
	if a.size < len(a.buf) {
		return
	}
	next := initialCapacity
	if len(a.buf) != 0 {
		next = len(a.buf) * growthFactor
	}
	a.reallocate(next)
}

// reallocate moves the elements into a new buffer of newCap slots. When
// newCap < Size(), the elements that do not fit are destroyed. Every element
// is either moved or destroyed exactly once, and the old buffer goes back to
// the allocator.
func (a *GrowableArray[T]) reallocate(newCap int) {
	next := allocSlots[T](a.alloc, newCap)

	keep := min(a.size, newCap)
	for i := 0; i < keep; i++ {
		relocate(&next[i], &a.buf[i])
	}
	for i := keep; i < a.size; i++ {
		destroy(&a.buf[i])
	}

	freeSlots(a.alloc, a.buf)
	a.buf = next
	a.size = keep
}
