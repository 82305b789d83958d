package filter

import (
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/scanfilter/errs"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	require.Equal(t, 1, r.Len())
	require.True(t, r.Supports(NewColumnPaginationFilter(1, 0)))

	name, ok := r.Lookup(TypeID(NewColumnPaginationLimitFilter(1)))
	require.True(t, ok)
	require.Equal(t, ColumnPaginationName, name)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		r := NewRegistry()
		id1, err := r.Register([]byte("org.example.A"))
		require.NoError(t, err)
		id2, err := r.Register([]byte("org.example.A"))
		require.NoError(t, err)

		require.Equal(t, id1, id2)
		require.Equal(t, 1, r.Len())
	})

	t.Run("Invalid names", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Register(nil)
		require.ErrorIs(t, err, errs.ErrInvalidFilterName)

		_, err = r.Register([]byte(strings.Repeat("n", 256)))
		require.ErrorIs(t, err, errs.ErrInvalidFilterName)
		require.Equal(t, 0, r.Len())
	})

	t.Run("Collision", func(t *testing.T) {
		r := NewRegistry()
		r.hashFn = func([]byte) uint64 { return 42 }

		_, err := r.Register([]byte("org.example.A"))
		require.NoError(t, err)
		_, err = r.Register([]byte("org.example.B"))
		require.ErrorIs(t, err, errs.ErrTypeIDCollision)

		name, ok := r.Lookup(42)
		require.True(t, ok)
		require.Equal(t, "org.example.A", name, "first registration wins")
	})
}

func TestRegistry_Supports(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.Supports(NewColumnPaginationFilter(1, 0)))

	_, err := r.Register([]byte(ColumnPaginationName))
	require.NoError(t, err)
	require.True(t, r.Supports(NewColumnPaginationFilter(1, 0)))
}

func TestRegistry_SupportsChecksNameOnSharedID(t *testing.T) {
	r := NewRegistry()
	r.hashFn = func([]byte) uint64 { return 7 }

	_, err := r.Register([]byte("org.example.Other"))
	require.NoError(t, err)
	require.False(t, r.Supports(NewColumnPaginationFilter(1, 0)))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	f := NewColumnPaginationFilter(1, 0)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = r.Register([]byte(ColumnPaginationName))
			} else {
				_ = r.Supports(f)
			}
		}()
	}
	wg.Wait()

	require.True(t, r.Supports(f))
	require.Equal(t, 1, r.Len())
}
