package containers

import (
	"bytes"
	"strings"
)

// ByteString is an owning, null-terminated byte buffer. A non-nil buffer is
// exactly Size()+1 bytes long and its last byte is 0.
//
// Every assignment returns the old buffer and allocates a new one; a buffer
// is never reused. A ByteString must not be copied by value.
type ByteString struct {
	_     noCopy
	buf   []byte
	size  int
	alloc Allocator
}

// NewByteString creates an empty string with no buffer.
// A nil alloc means GoAllocator.
func NewByteString(alloc Allocator) *ByteString {
	return &ByteString{alloc: orDefault(alloc)}
}

// ByteStringFrom creates a string holding s up to its first NUL byte.
func ByteStringFrom(alloc Allocator, s string) *ByteString {
	b := NewByteString(alloc)
	b.fillString(s[:cstrlen(s)])
	return b
}

// ByteStringFromBytes creates a string holding p up to its first NUL byte.
// p is copied; the string does not alias it.
func ByteStringFromBytes(alloc Allocator, p []byte) *ByteString {
	b := NewByteString(alloc)
	b.fill(p[:cbytelen(p)])
	return b
}

// Size returns the payload length, not counting the terminator.
func (b *ByteString) Size() int { return b.size }

// Data returns the buffer, terminator included. It is nil for a string that
// never held a buffer. Writes through the slice change the string; writing
// the terminator breaks the invariant and is the caller's fault.
func (b *ByteString) Data() []byte { return b.buf }

// Bytes returns a copy of the payload.
func (b *ByteString) Bytes() []byte {
	return bytes.Clone(b.buf[:b.size])
}

// At returns a pointer to byte i of the payload. The terminator is not
// reachable: panics with ErrIndexOutOfRange unless 0 <= i < Size().
func (b *ByteString) At(i int) *byte {
	checkIndex(i, b.size)
	return &b.buf[i]
}

// Get returns byte i of the payload, with the same bounds check as At.
func (b *ByteString) Get(i int) byte {
	checkIndex(i, b.size)
	return b.buf[i]
}

// String returns the payload as a Go string.
func (b *ByteString) String() string {
	return string(b.buf[:b.size])
}

// Clone returns a string with its own buffer holding the same payload.
// Cloning an empty string allocates a buffer holding only the terminator.
func (b *ByteString) Clone() *ByteString {
	c := NewByteString(b.alloc)
	c.fill(b.buf[:b.size])
	return c
}

// Move returns a string that owns b's buffer. b is left empty with no
// buffer and stays usable.
func (b *ByteString) Move() *ByteString {
	m := &ByteString{buf: b.buf, size: b.size, alloc: b.alloc}
	b.buf, b.size = nil, 0
	return m
}

// Assign replaces b's payload with a copy of other's, in a new buffer.
// Assigning a string to itself still reallocates.
func (b *ByteString) Assign(other *ByteString) {
	payload := other.buf[:other.size]
	if other == b {
		// The old buffer is about to be returned.
		payload = bytes.Clone(payload)
	}
	b.Release()
	b.fill(payload)
}

// AssignMove returns b's buffer and takes over other's. other is left
// empty with no buffer. Moving a string onto itself does nothing.
func (b *ByteString) AssignMove(other *ByteString) {
	if other == b {
		return
	}
	b.Release()
	b.buf, b.size, b.alloc = other.buf, other.size, other.alloc
	other.buf, other.size = nil, 0
}

// AssignString replaces b's payload with s up to its first NUL byte.
func (b *ByteString) AssignString(s string) {
	b.Release()
	b.fillString(s[:cstrlen(s)])
}

// AssignBytes replaces b's payload with p up to its first NUL byte.
// p may alias b's own buffer.
func (b *ByteString) AssignBytes(p []byte) {
	p = bytes.Clone(p[:cbytelen(p)])
	b.Release()
	b.fill(p)
}

// Release returns the buffer, leaving b empty with no buffer.
func (b *ByteString) Release() {
	freeSlots(b.alloc, b.buf)
	b.buf, b.size = nil, 0
}

// fill allocates size+1 bytes for the empty b and copies payload and the
// terminator into them.
func (b *ByteString) fill(payload []byte) {
	b.size = len(payload)
	b.buf = allocSlots[byte](b.alloc, b.size+1)
	copy(b.buf, payload)
	b.buf[b.size] = 0
}

// fillString is fill for a string payload.
func (b *ByteString) fillString(payload string) {
	b.size = len(payload)
	b.buf = allocSlots[byte](b.alloc, b.size+1)
	copy(b.buf, payload)
	b.buf[b.size] = 0
}

// cstrlen is the length of s up to its first NUL byte.
func cstrlen(s string) int {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

// cbytelen is the length of p up to its first NUL byte.
func cbytelen(p []byte) int {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return i
	}
	return len(p)
}
