package containers

import (
	"fmt"
	"testing"
)

func BenchmarkGrowableArrayPushBack(b *testing.B) {
	sizes := []int{8, 64, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				arr := NewGrowableArray[int](nil)
				for j := 0; j < size; j++ {
					arr.PushBack(j)
				}
				arr.Release()
			}
		})
	}
}

// BenchmarkGrowableArrayVsBuiltin compares against append on a builtin slice
func BenchmarkGrowableArrayVsBuiltin(b *testing.B) {
	type vec3 struct{ x, y, z float32 }

	b.Run("GrowableArray/EmplaceBack", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			arr := NewGrowableArray[vec3](nil)
			for j := 0; j < 100; j++ {
				arr.EmplaceBack(func(v *vec3) { v.x = float32(j) })
			}
			arr.Release()
		}
	})

	b.Run("GrowableArray/Reused", func(b *testing.B) {
		arr := NewGrowableArray[vec3](nil)
		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				arr.PushBack(vec3{x: float32(j)})
			}
			arr.Clear()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []vec3
			for j := 0; j < 100; j++ {
				s = append(s, vec3{x: float32(j)})
			}
			_ = s
		}
	})
}

func BenchmarkHeapLedger(b *testing.B) {
	b.Run("Heap", func(b *testing.B) {
		h := NewHeap()
		for i := 0; i < b.N; i++ {
			s := ByteStringFrom(h, "request-scoped")
			s.Release()
		}
	})

	b.Run("SafeHeap", func(b *testing.B) {
		h := NewSafeHeap()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				s := ByteStringFrom(h, "request-scoped")
				s.Release()
			}
		})
	})
}
