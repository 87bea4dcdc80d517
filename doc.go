// Package containers implements small owning value containers with explicit
// ownership and explicit element lifetime.
//
// # Overview
//
// Three containers are provided:
//
//   - FixedArray: exactly N elements, N fixed at construction. Never grows,
//     cannot be copied or moved.
//   - GrowableArray: an owning buffer with a size/capacity split that grows
//     by doubling.
//   - ByteString: an owning, null-terminated byte buffer of exactly size+1
//     bytes.
//
// # Basic Usage
//
//	arr := containers.NewGrowableArray[int](nil) // capacity 2
//	defer arr.Release()
//
//	arr.PushBack(1)
//	arr.PushBack(2)
//	arr.PushBack(3) // grows 2 -> 4
//	fmt.Println(arr) // GrowableArray[int] { size: 3, capacity: 4 }
//
//	*arr.At(0) = 10
//	arr.PopBack()
//	arr.Trim() // capacity 2
//
// # Ownership
//
// Containers are handled through pointers and must not be copied by value
// (go vet reports copies). Data moves between owners explicitly:
//
//   - Clone and CopyFrom give the destination its own buffer with copies of
//     every element.
//   - Move and MoveFrom hand the buffer over and reset the source to the
//     empty state (size 0, capacity 0, no buffer). The source stays usable.
//
// FixedArray offers neither, so its elements can only leave it through
// explicit element-wise copies.
//
// # Element Lifetime
//
// Slots past Size() are allocated but hold no element. An element type may
// implement Destroyer to be torn down when it leaves a container (PopBack,
// Clear, Release, a shrinking reallocation, an overwriting assignment), and
// Cloner to be deep-copied by the copying operations. Growth moves elements
// without copying or destroying them. No element is destroyed twice.
//
// # Allocators
//
// Buffers are taken from an Allocator. The default, GoAllocator, keeps no
// records. Heap keeps a ledger of bytes and buffers in use so that callers
// can verify every buffer was given back:
//
//	h := containers.NewHeap()
//	s := containers.ByteStringFrom(h, "hi")
//	s.Release()
//	fmt.Println(h.InUse()) // 0
//
// SafeHeap is the mutex-protected variant. The heapmetrics package exports a
// heap's ledger to Prometheus.
//
// # Contract Violations
//
// Indexing outside [0, Size()) and building a FixedArray from the wrong
// number of values are programmer errors. They panic with an error wrapping
// ErrIndexOutOfRange or ErrLengthMismatch.
//
// # Thread Safety
//
// Containers are not goroutine-safe. Callers synchronize externally.
package containers
