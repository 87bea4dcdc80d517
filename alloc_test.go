package containers

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocSlots(t *testing.T) {
	h := NewHeap()

	s := allocSlots[int64](h, 10)
	require.Len(t, s, 10)
	for _, v := range s {
		assert.Zero(t, v)
	}
	assert.Equal(t, 10*int(unsafe.Sizeof(int64(0))), h.InUse())

	freeSlots(h, s)
	assert.Equal(t, 0, h.InUse())

	// Zero and negative counts allocate nothing
	assert.Nil(t, allocSlots[int](h, 0))
	assert.Nil(t, allocSlots[int](h, -1))
	freeSlots[int](h, nil)
	assert.Equal(t, 1, h.Allocs())
	assert.Equal(t, 1, h.Frees())
}

func TestSlotBytes(t *testing.T) {
	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"byte", slotBytes[byte](7), 7},
		{"int32", slotBytes[int32](3), 12},
		{"empty struct", slotBytes[struct{}](5), 0},
		{"pair", slotBytes[[2]int64](2), 32},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("slotBytes %s = %d, want %d", tt.name, tt.got, tt.expected)
		}
	}
}
