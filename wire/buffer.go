package wire

import (
	"bytes"
	"sync"
)

// Allocator hands out buffers used to build parameter payloads and hold
// column values read off the wire.
type Allocator interface {
	Buffer() *Buffer
	Release(*Buffer)
}

// DefaultAllocator is a process wide pool allocator.
var DefaultAllocator Allocator = NewPoolAllocator()

// PoolAllocator recycles buffers through a sync.Pool. It is safe for
// concurrent use.
type PoolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator returns a new PoolAllocator instance
func NewPoolAllocator() *PoolAllocator {
	a := &PoolAllocator{}
	a.pool.New = func() interface{} {
		return &Buffer{}
	}
	return a
}

// Buffer returns an empty buffer owned by a.
func (a *PoolAllocator) Buffer() *Buffer {
	b := a.pool.Get().(*Buffer)
	b.alloc = a
	return b
}

// Release resets b and returns it to the pool. Releasing NullValue or a
// buffer that came from another allocator is a no-op.
func (a *PoolAllocator) Release(b *Buffer) {
	if b == nil || b == NullValue || b.alloc != a {
		return
	}
	b.Reset()
	b.alloc = nil
	a.pool.Put(b)
}

// Buffer is a readable and writable byte sequence. Reads consume the
// buffered bytes.
type Buffer struct {
	buf   bytes.Buffer
	alloc Allocator
}

// NewBuffer returns a buffer whose initial contents are b. The buffer is
// not tied to any allocator.
func NewBuffer(b []byte) *Buffer {
	nb := &Buffer{}
	nb.buf.Write(b)
	return nb
}

// NewBufferString is like NewBuffer but starts with the bytes of s.
func NewBufferString(s string) *Buffer {
	nb := &Buffer{}
	nb.buf.WriteString(s)
	return nb
}

func (b *Buffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *Buffer) WriteString(s string) (int, error) {
	return b.buf.WriteString(s)
}

func (b *Buffer) Read(p []byte) (int, error) {
	return b.buf.Read(p)
}

// ReadString consumes every unread byte and returns it as text.
func (b *Buffer) ReadString() string {
	s := b.buf.String()
	b.buf.Reset()
	return s
}

// Bytes returns the unread portion of the buffer without consuming it.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

//Reset drops any buffered bytes.
func (b *Buffer) Reset() {
	b.buf.Reset()
}
