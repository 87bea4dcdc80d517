package containers

import "unsafe"

// allocSlots takes a buffer of n slots of T from a (GoAllocator if nil).
// The slots hold zero values and no live elements. Returns nil if n <= 0.
func allocSlots[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	orDefault(a).Reserve(slotBytes[T](n))
	return make([]T, n)
}

// freeSlots returns buf to a without tearing down any element in it.
// The caller must already have destroyed or moved out every live element.
func freeSlots[T any](a Allocator, buf []T) {
	if len(buf) == 0 {
		return
	}
	orDefault(a).Free(slotBytes[T](len(buf)))
}

// slotBytes is the size in bytes of n slots of T.
func slotBytes[T any](n int) int {
	var zero T
	return int(unsafe.Sizeof(zero)) * n
}
