package containers

// InUse returns the number of bytes currently held by containers.
func (h *Heap) InUse() int {
	return h.inUse
}

// Peak returns the highest InUse seen since the heap was created or Reset.
func (h *Heap) Peak() int {
	return h.peak
}

// Allocs returns the number of buffers handed out since the last Reset.
func (h *Heap) Allocs() int {
	return h.allocs
}

// Frees returns the number of buffers given back since the last Reset.
func (h *Heap) Frees() int {
	return h.frees
}

// AllocsTotal returns the number of buffers handed out over the heap's
// lifetime. Reset does not clear it.
func (h *Heap) AllocsTotal() int {
	return h.totalAllocs
}

// FreesTotal returns the number of buffers given back over the heap's
// lifetime. Reset does not clear it.
func (h *Heap) FreesTotal() int {
	return h.totalFrees
}

// Live returns the number of buffers handed out and not yet given back.
func (h *Heap) Live() int {
	return h.totalAllocs - h.totalFrees
}

// Metrics returns a snapshot of the heap's ledger.
func (h *Heap) Metrics() HeapMetrics {
	return HeapMetrics{
		InUse:       h.InUse(),
		Peak:        h.Peak(),
		Allocs:      h.Allocs(),
		Frees:       h.Frees(),
		AllocsTotal: h.AllocsTotal(),
		FreesTotal:  h.FreesTotal(),
		Live:        h.Live(),
	}
}

// HeapMetrics is a snapshot of a heap's ledger.
type HeapMetrics struct {
	InUse       int // Bytes currently held by containers
	Peak        int // High-water mark of InUse
	Allocs      int // Buffers handed out since the last Reset
	Frees       int // Buffers given back since the last Reset
	AllocsTotal int // Buffers handed out, never reset
	FreesTotal  int // Buffers given back, never reset
	Live        int // AllocsTotal - FreesTotal
}

// Thread-safe metrics for SafeHeap

// InUse thread-safely returns the number of bytes currently held.
func (s *SafeHeap) InUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.InUse()
}

// Peak thread-safely returns the high-water mark of InUse.
func (s *SafeHeap) Peak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Peak()
}

// Live thread-safely returns the number of outstanding buffers.
func (s *SafeHeap) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Live()
}

// Metrics thread-safely returns a snapshot of the ledger.
func (s *SafeHeap) Metrics() HeapMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Metrics()
}
