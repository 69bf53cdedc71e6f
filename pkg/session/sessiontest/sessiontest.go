// Package sessiontest runs the behavior every session store must share.
package sessiontest

import (
	"context"
	"testing"
	"time"

	"github.com/adrianliechti/joborder/pkg/session"

	"github.com/stretchr/testify/require"
)

func Run(t *testing.T, s session.Store) {
	ctx := context.Background()

	t.Run("put get", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "a", []byte(`{"id":"a"}`), time.Hour))

		value, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, []byte(`{"id":"a"}`), value)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "b", []byte("1"), time.Hour))
		require.NoError(t, s.Put(ctx, "b", []byte("2"), time.Hour))

		value, err := s.Get(ctx, "b")
		require.NoError(t, err)
		require.Equal(t, []byte("2"), value)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.Get(ctx, "missing")
		require.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "c", []byte("1"), time.Hour))
		require.NoError(t, s.Delete(ctx, "c"))
		require.NoError(t, s.Delete(ctx, "c"))

		_, err := s.Get(ctx, "c")
		require.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "d", []byte("1"), 50*time.Millisecond))

		time.Sleep(1100 * time.Millisecond)

		_, err := s.Get(ctx, "d")
		require.ErrorIs(t, err, session.ErrNotFound)
	})
}
