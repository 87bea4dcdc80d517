package containers

// Allocator is the source of the buffers owned by GrowableArray and
// ByteString. Storage itself comes from the Go runtime; an Allocator is told
// how many bytes a container takes and gives back, so that ownership of every
// buffer can be accounted for.
type Allocator interface {
	// Reserve records that size bytes are being handed to a container.
	Reserve(size int)
	// Free records that size bytes previously reserved were returned.
	Free(size int)
}

// GoAllocator takes buffers from the Go runtime and keeps no ledger.
// It is used whenever a constructor is given a nil Allocator.
type GoAllocator struct{}

func (GoAllocator) Reserve(int) {}

func (GoAllocator) Free(int) {}

// orDefault returns a, or GoAllocator when a is nil.
func orDefault(a Allocator) Allocator {
	if a == nil {
		return GoAllocator{}
	}
	return a
}

// Heap is an Allocator that keeps a ledger of outstanding buffers.
// Not goroutine-safe. Use SafeHeap when containers on different goroutines
// share one ledger.
type Heap struct {
	inUse       int // bytes currently reserved
	peak        int // high-water mark of inUse
	allocs      int // Reserve calls since the last Reset
	frees       int // Free calls since the last Reset
	totalAllocs int // Reserve calls, never cleared
	totalFrees  int // Free calls, never cleared
	released    bool
}

// NewHeap creates an empty Heap.
func NewHeap() *Heap {
	return &Heap{}
}

// Reserve records a buffer of size bytes leaving the heap.
// Panics if the heap has been released. Zero-sized reservations are ignored.
func (h *Heap) Reserve(size int) {
	h.panicIfReleased()
	if size <= 0 {
		return
	}
	h.allocs++
	h.totalAllocs++
	h.inUse += size
	if h.inUse > h.peak {
		h.peak = h.inUse
	}
}

// Free records a buffer of size bytes coming back to the heap.
// Freeing is still allowed after Release so that containers can be torn
// down after the heap that served them.
func (h *Heap) Free(size int) {
	if size <= 0 {
		return
	}
	if size > h.inUse {
		panic("containers: heap freed more than it reserved")
	}
	h.frees++
	h.totalFrees++
	h.inUse -= size
}

// Reset clears the allocation counters and the peak. Bytes still in use stay
// on the ledger, and the peak restarts from them. Lifetime totals and Live
// are not affected.
func (h *Heap) Reset() {
	h.panicIfReleased()
	h.allocs = 0
	h.frees = 0
	h.peak = h.inUse
}

// Release makes the heap unusable for new reservations.
// Any subsequent Reserve or Reset will panic.
func (h *Heap) Release() {
	h.released = true
}

// panicIfReleased panics if the heap has been released.
func (h *Heap) panicIfReleased() {
	if h.released {
		panic("containers: use after Release()")
	}
}
