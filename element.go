package containers

import "reflect"

// Destroyer is implemented by element types that must tear down resources
// when a container stops holding them. Containers call Destroy exactly once
// for every element that leaves them without being moved out: on PopBack,
// Clear, Release, a shrinking reallocation, or an assignment that overwrites
// the container.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types whose copies must not share state
// with the original. Every copying path of a container (PushBack, Clone,
// CopyFrom, the initializer-list constructors) copies through Clone when the
// element type provides it, and by plain assignment otherwise.
type Cloner[T any] interface {
	Clone() T
}

// destroy tears down the live element in slot and leaves the zero value
// behind. Hooks are looked up on *T first so both value and pointer
// receivers count, then on the element itself for pointer and interface
// element types.
func destroy[T any](slot *T) {
	if d, ok := any(slot).(Destroyer); ok {
		d.Destroy()
	} else if d, ok := any(*slot).(Destroyer); ok && !isNilPointer(*slot) {
		d.Destroy()
	}
	var zero T
	*slot = zero
}

// copyOf returns an independent copy of *v.
func copyOf[T any](v *T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(*v).(Cloner[T]); ok && !isNilPointer(*v) {
		return c.Clone()
	}
	return *v
}

// isNilPointer reports whether v is a nil pointer. Hooks are never called
// through one; a nil element is copied as nil and has nothing to tear down.
func isNilPointer[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// relocate moves the element in src into dst. src is left holding the zero
// value and is not torn down: the element now lives in dst.
func relocate[T any](dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}

// noCopy may be embedded into structs which must not be copied after first
// use. It is recognised by go vet's copylocks checker.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
