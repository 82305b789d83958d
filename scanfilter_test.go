package scanfilter

import (
	"testing"

	"github.com/arloliu/scanfilter/errs"
	"github.com/arloliu/scanfilter/filter"
	"github.com/arloliu/scanfilter/format"
	"github.com/arloliu/scanfilter/pool"
	"github.com/stretchr/testify/require"
)

func TestNewColumnPagination(t *testing.T) {
	f := NewColumnPagination(10, 20)

	require.Equal(t, int32(10), f.Limit())
	offset, ok := f.StartPoint().Offset()
	require.True(t, ok)
	require.Equal(t, int32(20), offset)
}

func TestNewColumnPaginationFrom(t *testing.T) {
	f, err := NewColumnPaginationFrom(10, []byte("q050"))
	require.NoError(t, err)
	require.Equal(t, filter.StartBoundary, f.StartPoint().Kind())
}

func TestNewEncoder(t *testing.T) {
	t.Run("Legacy", func(t *testing.T) {
		enc, err := NewEncoder(format.ProtocolLegacy)
		require.NoError(t, err)
		require.Equal(t, format.ProtocolLegacy, enc.Protocol())

		f := NewColumnPagination(10, 5)
		got, err := enc.Encode(f)
		require.NoError(t, err)

		buf := pool.GetRequestBuffer()
		defer pool.PutRequestBuffer(buf)
		require.NoError(t, f.SerializeOld(buf))
		require.Equal(t, buf.Bytes(), got)
	})

	t.Run("Later option overrides protocol", func(t *testing.T) {
		enc, err := NewEncoder(format.ProtocolLegacy, filter.WithProtocol(format.ProtocolProtobuf))
		require.NoError(t, err)
		require.Equal(t, format.ProtocolProtobuf, enc.Protocol())
	})

	t.Run("Unknown protocol", func(t *testing.T) {
		_, err := NewEncoder(format.ProtocolVersion(9))
		require.ErrorIs(t, err, errs.ErrUnsupportedProtocol)
	})
}
