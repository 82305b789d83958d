// Package pool provides the growable byte buffer that legacy filter encoders
// write into, and a sync.Pool backed pool of such buffers.
//
// A ByteBuffer is not safe for concurrent use. Callers that share a buffer
// between goroutines must synchronize access themselves.
package pool

import (
	"io"
	"sync"
)

const (
	RequestBufferDefaultSize  = 512       // default capacity of a pooled request buffer
	RequestBufferMaxThreshold = 1024 * 64 // buffers grown past this are not returned to the pool
)

// ByteBuffer is an append-only byte buffer whose write cursor is len(B).
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

var (
	_ io.Writer     = (*ByteBuffer)(nil)
	_ io.ByteWriter = (*ByteBuffer)(nil)
	_ io.WriterTo   = (*ByteBuffer)(nil)
)

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the written portion of the buffer.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Available returns how many bytes can be written without reallocating.
func (bb *ByteBuffer) Available() int {
	return cap(bb.B) - len(bb.B)
}

// Grow ensures the buffer can hold n more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The buffer grows to exactly len+n when the shortfall is large, and doubles
// otherwise, so a caller that grows by a predicted size first pays for a
// single allocation.
func (bb *ByteBuffer) Grow(n int) {
	if bb.Available() >= n {
		return
	}

	newCap := 2 * cap(bb.B)
	if newCap < len(bb.B)+n {
		newCap = len(bb.B) + n
	}

	newBuf := make([]byte, len(bb.B), newCap)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Write appends the contents of data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of
// being retained, so one oversized request does not pin memory forever.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
// A maxThreshold of zero disables the size check.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var requestDefaultPool = NewByteBufferPool(RequestBufferDefaultSize, RequestBufferMaxThreshold)

// GetRequestBuffer retrieves a ByteBuffer from the default request pool.
func GetRequestBuffer() *ByteBuffer {
	return requestDefaultPool.Get()
}

// PutRequestBuffer returns a ByteBuffer to the default request pool.
func PutRequestBuffer(bb *ByteBuffer) {
	requestDefaultPool.Put(bb)
}
