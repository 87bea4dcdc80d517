package containers

import "sync"

// SafeHeap is a mutex-protected wrapper around Heap, for hosts whose
// containers live on different goroutines but share one ledger.
// Only the ledger is guarded: each container still needs a single owner.
type SafeHeap struct {
	mu sync.Mutex
	h  *Heap
}

// NewSafeHeap creates an empty thread-safe heap.
func NewSafeHeap() *SafeHeap {
	return &SafeHeap{h: NewHeap()}
}

// Reserve thread-safely records a buffer of size bytes leaving the heap.
func (s *SafeHeap) Reserve(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Reserve(size)
}

// Free thread-safely records a buffer of size bytes coming back.
func (s *SafeHeap) Free(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Free(size)
}

// Reset thread-safely clears the counters and the peak.
func (s *SafeHeap) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Reset()
}

// Release thread-safely makes the heap unusable for new reservations.
func (s *SafeHeap) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Release()
}
