package legacy

import (
	"fmt"

	"github.com/arloliu/scanfilter/endian"
	"github.com/arloliu/scanfilter/errs"
	"github.com/arloliu/scanfilter/pool"
)

const (
	// MaxTypeTagLength is the longest type tag the 1-byte length prefix can describe.
	MaxTypeTagLength = 1<<8 - 1

	// MaxByteArrayLength is the longest byte array the 3-byte length prefix can describe.
	MaxByteArrayLength = 1<<24 - 1

	byteArrayPrefixSize = 3
	int32Size           = 4
)

var engine = endian.GetBigEndianEngine()

// Field is a single element of a legacy payload.
type Field interface {
	// Size returns the exact number of bytes Append writes.
	Size() int
	// Check reports whether the field can be encoded.
	Check() error
	// Append writes the field at the buffer's write cursor.
	// It must only be called after Check returned nil.
	Append(buf *pool.ByteBuffer)
}

// Layout is an ordered list of fields making up one legacy payload.
type Layout []Field

// Size returns the exact encoded size of the layout in bytes.
func (l Layout) Size() int {
	n := 0
	for _, f := range l {
		n += f.Size()
	}

	return n
}

// Check validates every field of the layout.
func (l Layout) Check() error {
	for i, f := range l {
		if err := f.Check(); err != nil {
			return fmt.Errorf("legacy field %d: %w", i, err)
		}
	}

	return nil
}

// AppendTo writes the layout at the buffer's write cursor.
//
// The buffer is grown once by Size() before writing. If any field fails
// validation nothing is written.
func (l Layout) AppendTo(buf *pool.ByteBuffer) error {
	if err := l.Check(); err != nil {
		return err
	}

	buf.Grow(l.Size())
	for _, f := range l {
		f.Append(buf)
	}

	return nil
}

// Bytes encodes the layout into a newly allocated slice of exactly Size() bytes.
func (l Layout) Bytes() ([]byte, error) {
	buf := pool.NewByteBuffer(l.Size())
	if err := l.AppendTo(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type int32Field int32

// Int32 returns a field holding v as a 4-byte big-endian two's-complement integer.
func Int32(v int32) Field {
	return int32Field(v)
}

func (f int32Field) Size() int {
	return int32Size
}

func (f int32Field) Check() error {
	return nil
}

func (f int32Field) Append(buf *pool.ByteBuffer) {
	buf.B = engine.AppendUint32(buf.B, uint32(f)) //nolint:gosec
}

type typeTagField []byte

// TypeTag returns a field holding a filter's type tag behind a 1-byte length.
func TypeTag(name []byte) Field {
	return typeTagField(name)
}

func (f typeTagField) Size() int {
	return 1 + len(f)
}

func (f typeTagField) Check() error {
	if len(f) == 0 || len(f) > MaxTypeTagLength {
		return fmt.Errorf("%w: type tag length %d not in [1, %d]", errs.ErrInvalidFilterName, len(f), MaxTypeTagLength)
	}

	return nil
}

func (f typeTagField) Append(buf *pool.ByteBuffer) {
	buf.B = append(buf.B, byte(len(f)))
	buf.B = append(buf.B, f...)
}

type byteArrayField []byte

// ByteArray returns a field holding b behind a 3-byte big-endian length.
// A nil or empty b encodes as a zero length with no data bytes.
func ByteArray(b []byte) Field {
	return byteArrayField(b)
}

func (f byteArrayField) Size() int {
	return ByteArraySize(len(f))
}

func (f byteArrayField) Check() error {
	if len(f) > MaxByteArrayLength {
		return fmt.Errorf("%w: length %d exceeds %d", errs.ErrByteArrayTooLong, len(f), MaxByteArrayLength)
	}

	return nil
}

func (f byteArrayField) Append(buf *pool.ByteBuffer) {
	var prefix [byteArrayPrefixSize]byte
	endian.PutUint24(prefix[:], uint32(len(f))) //nolint:gosec
	buf.B = append(buf.B, prefix[:]...)
	buf.B = append(buf.B, f...)
}

// ByteArraySize returns the encoded size of an n-byte array.
func ByteArraySize(n int) int {
	return byteArrayPrefixSize + n
}

// WriteByteArray appends b to buf using the 3-byte length-prefixed convention.
// Arrays longer than MaxByteArrayLength are rejected and nothing is written.
func WriteByteArray(buf *pool.ByteBuffer, b []byte) error {
	return Layout{ByteArray(b)}.AppendTo(buf)
}
