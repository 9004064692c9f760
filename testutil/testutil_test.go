package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(4711)

	first := rng.Uint64()
	rng.Float32()
	rng.Reset()

	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float32, 256)
	rng.FillUniformRange(v, -1, 1)

	for _, x := range v {
		assert.GreaterOrEqual(t, x, float32(-1))
		assert.Less(t, x, float32(1))
	}
}

func TestIndices(t *testing.T) {
	rng := NewRNG(4711)

	idx := rng.Indices(64)
	assert.Len(t, idx, 64)

	seen := make(map[uint64]struct{}, len(idx))
	for _, i := range idx {
		seen[i] = struct{}{}
	}
	assert.Greater(t, len(seen), 60, "64-bit draws should almost never repeat")
}

func TestZipfIndices(t *testing.T) {
	rng := NewRNG(4711)

	idx := rng.ZipfIndices(10000, 100, 1.5)
	assert.Len(t, idx, 10000)

	counts := make([]int, 100)
	for _, i := range idx {
		assert.Less(t, i, uint64(100))
		counts[i]++
	}
	assert.Greater(t, counts[0], counts[50], "head must be hotter than tail")

	assert.Equal(t, []uint64{0, 0, 0}, rng.ZipfIndices(3, 1, 1.0))
}

func TestIntn(t *testing.T) {
	rng := NewRNG(4711)

	for range 256 {
		n := rng.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
}

func TestFillUniform(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float32, 256)
	rng.FillUniform(v)

	for _, x := range v {
		assert.GreaterOrEqual(t, x, float32(0))
		assert.Less(t, x, float32(1))
	}
}
