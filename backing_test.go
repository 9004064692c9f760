package weights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacking_Release(t *testing.T) {
	t.Run("private", func(t *testing.T) {
		b := allocPrivate(8)
		assert.Equal(t, "private", b.kind.String())
		require.Len(t, b.data, 8)

		require.NoError(t, b.release())
		assert.Nil(t, b.data)
	})

	t.Run("shared", func(t *testing.T) {
		skipIfNoShare(t)

		b, err := mapShared(8)
		require.NoError(t, err)
		assert.Equal(t, "shared", b.kind.String())
		b.data[7] = 1

		require.NoError(t, b.release())
		assert.Nil(t, b.data)
		require.NoError(t, b.release())
	})
}
