package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapReserveFree(t *testing.T) {
	h := NewHeap()

	h.Reserve(100)
	h.Reserve(200)
	assert.Equal(t, 300, h.InUse())
	assert.Equal(t, 2, h.Allocs())

	h.Free(100)
	assert.Equal(t, 200, h.InUse())
	assert.Equal(t, 300, h.Peak())
	assert.Equal(t, 1, h.Live())

	// Zero and negative sizes are ignored
	h.Reserve(0)
	h.Reserve(-1)
	h.Free(0)
	assert.Equal(t, 2, h.Allocs())
	assert.Equal(t, 1, h.Frees())
}

func TestHeapOverFree(t *testing.T) {
	h := NewHeap()
	h.Reserve(10)

	assert.Panics(t, func() { h.Free(11) })
}

func TestHeapReset(t *testing.T) {
	h := NewHeap()
	h.Reserve(100)
	h.Reserve(50)
	h.Free(100)

	h.Reset()

	assert.Equal(t, 50, h.InUse())
	assert.Equal(t, 50, h.Peak())
	assert.Equal(t, 0, h.Allocs())
	assert.Equal(t, 0, h.Frees())

	// Lifetime totals survive the reset, so Live still counts the
	// outstanding buffer.
	assert.Equal(t, 2, h.AllocsTotal())
	assert.Equal(t, 1, h.FreesTotal())
	assert.Equal(t, 1, h.Live())

	h.Free(50)
	assert.Equal(t, 1, h.Frees())
	assert.Equal(t, 2, h.FreesTotal())
	assert.Equal(t, 0, h.Live())
}

func TestHeapRelease(t *testing.T) {
	h := NewHeap()
	arr := NewGrowableArray[int](h)
	arr.PushBack(1)

	h.Release()

	// Containers can still be torn down after the heap.
	arr.Release()
	assert.Equal(t, 0, h.InUse())

	// Multiple releases should be safe
	h.Release()

	testPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%s: expected panic after Release()", name)
			}
		}()
		fn()
	}
	testPanic("Reserve", func() { h.Reserve(1) })
	testPanic("Reset", func() { h.Reset() })
	testPanic("NewGrowableArray", func() { NewGrowableArray[int](h) })
	testPanic("ByteStringFrom", func() { ByteStringFrom(h, "x") })
}

func TestGoAllocator(t *testing.T) {
	var a Allocator = GoAllocator{}
	a.Reserve(100)
	a.Free(100)

	assert.Equal(t, GoAllocator{}, orDefault(nil))
	h := NewHeap()
	assert.Same(t, h, orDefault(h))
}
