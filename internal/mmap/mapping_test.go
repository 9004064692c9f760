//go:build unix

package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapShared_ReadWriteClose(t *testing.T) {
	m, err := MapShared(4096)
	require.NoError(t, err)

	data := m.Bytes()
	require.Len(t, data, 4096)
	assert.Equal(t, 4096, m.Size())

	// Anonymous mappings start zeroed.
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not zero: %d", i, b)
		}
	}

	data[0] = 0xAB
	data[4095] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[4095])

	require.NoError(t, m.Advise(AccessRandom))
	require.NoError(t, m.Advise(AccessSequential))
	require.NoError(t, m.Advise(AccessDefault))

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "close must be idempotent")

	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
}

func TestMapShared_InvalidSize(t *testing.T) {
	_, err := MapShared(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapShared(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMapShared_OddSize(t *testing.T) {
	// Sizes need not be page multiples; the kernel rounds up internally.
	m, err := MapShared(12)
	require.NoError(t, err)
	defer m.Close()

	assert.Len(t, m.Bytes(), 12)
}
