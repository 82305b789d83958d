package legacy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arloliu/scanfilter/errs"
	"github.com/arloliu/scanfilter/pool"
	"github.com/stretchr/testify/require"
)

func TestInt32(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		bytes []byte
	}{
		{"zero", 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"ten", 10, []byte{0x00, 0x00, 0x00, 0x0A}},
		{"sentinel", -1, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"min", -1 << 31, []byte{0x80, 0x00, 0x00, 0x00}},
		{"max", 1<<31 - 1, []byte{0x7F, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Layout{Int32(tt.value)}.Bytes()
			require.NoError(t, err)
			require.Equal(t, tt.bytes, b)
			require.Equal(t, 4, Int32(tt.value).Size())
		})
	}
}

func TestTypeTag(t *testing.T) {
	b, err := Layout{TypeTag([]byte("abc"))}.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 'a', 'b', 'c'}, b)
	require.Equal(t, 4, TypeTag([]byte("abc")).Size())
}

func TestTypeTag_Bounds(t *testing.T) {
	t.Run("Max length", func(t *testing.T) {
		name := []byte(strings.Repeat("x", MaxTypeTagLength))
		b, err := Layout{TypeTag(name)}.Bytes()
		require.NoError(t, err)
		require.Len(t, b, 1+MaxTypeTagLength)
		require.Equal(t, byte(0xFF), b[0])
	})

	t.Run("Too long", func(t *testing.T) {
		name := []byte(strings.Repeat("x", MaxTypeTagLength+1))
		err := TypeTag(name).Check()
		require.ErrorIs(t, err, errs.ErrInvalidFilterName)
	})

	t.Run("Empty", func(t *testing.T) {
		require.ErrorIs(t, TypeTag(nil).Check(), errs.ErrInvalidFilterName)
	})
}

func TestByteArray(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		bytes []byte
	}{
		{"nil", nil, []byte{0x00, 0x00, 0x00}},
		{"empty", []byte{}, []byte{0x00, 0x00, 0x00}},
		{"three bytes", []byte{0x01, 0x02, 0x03}, []byte{0x00, 0x00, 0x03, 0x01, 0x02, 0x03}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Layout{ByteArray(tt.data)}.Bytes()
			require.NoError(t, err)
			require.Equal(t, tt.bytes, b)
			require.Equal(t, ByteArraySize(len(tt.data)), ByteArray(tt.data).Size())
		})
	}
}

func TestByteArray_LengthPrefixIsBigEndian(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA}, 0x0102)
	b, err := Layout{ByteArray(data)}.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x01, 0x02}, b[:3])
	require.Len(t, b, 3+0x0102)
}

func TestWriteByteArray_TooLong(t *testing.T) {
	buf := pool.NewByteBuffer(0)
	buf.MustWrite([]byte{0x42})

	err := WriteByteArray(buf, make([]byte, MaxByteArrayLength+1))

	require.ErrorIs(t, err, errs.ErrByteArrayTooLong)
	require.Equal(t, []byte{0x42}, buf.Bytes(), "rejected array must not be written")
}

func TestWriteByteArray_AppendsAtCursor(t *testing.T) {
	buf := pool.NewByteBuffer(0)
	buf.MustWrite([]byte{0xEE})

	require.NoError(t, WriteByteArray(buf, []byte("qa")))
	require.Equal(t, []byte{0xEE, 0x00, 0x00, 0x02, 'q', 'a'}, buf.Bytes())
}

func TestLayout_SizeMatchesOutput(t *testing.T) {
	layouts := map[string]Layout{
		"empty":          {},
		"ints":           {Int32(1), Int32(-1)},
		"tag and ints":   {TypeTag([]byte("filter")), Int32(10), Int32(5)},
		"with array":     {TypeTag([]byte("filter")), Int32(3), Int32(-1), ByteArray([]byte{1, 2, 3})},
		"with empty arr": {TypeTag([]byte("f")), Int32(0), Int32(-1), ByteArray([]byte{})},
	}

	for name, layout := range layouts {
		t.Run(name, func(t *testing.T) {
			buf := pool.NewByteBuffer(0)
			require.NoError(t, layout.AppendTo(buf))
			require.Equal(t, layout.Size(), buf.Len())
			require.Equal(t, layout.Size(), buf.Cap(), "AppendTo should allocate exactly once")
		})
	}
}

func TestLayout_AppendTo_RejectsWithoutPartialWrite(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	layout := Layout{
		TypeTag([]byte("ok")),
		Int32(7),
		TypeTag(nil),
	}

	err := layout.AppendTo(buf)

	require.ErrorIs(t, err, errs.ErrInvalidFilterName)
	require.Contains(t, err.Error(), "legacy field 2")
	require.Equal(t, 0, buf.Len())
}

func TestLayout_Deterministic(t *testing.T) {
	layout := Layout{TypeTag([]byte("tag")), Int32(10), Int32(5), ByteArray([]byte("q"))}

	first, err := layout.Bytes()
	require.NoError(t, err)
	second, err := layout.Bytes()
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func BenchmarkLayout_AppendTo(b *testing.B) {
	layout := Layout{
		TypeTag([]byte("org.apache.hadoop.hbase.filter.ColumnPaginationByteOffsetFilter")),
		Int32(100),
		Int32(-1),
		ByteArray([]byte("qualifier")),
	}
	buf := pool.NewByteBuffer(layout.Size())

	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		_ = layout.AppendTo(buf)
	}
}
