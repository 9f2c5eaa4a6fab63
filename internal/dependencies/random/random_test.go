package random

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoIntnBounds(t *testing.T) {
	r := New()
	for i := 0; i < 200; i++ {
		v := r.Intn(8)
		assert.True(t, v >= 0 && v < 8)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestCryptoShuffleIsPermutation(t *testing.T) {
	r := New()
	values := []int{1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, sorted)
}

func TestCryptoString(t *testing.T) {
	r := New()
	s := r.String(12, "AB")
	require.Len(t, s, 12)
	for _, c := range s {
		assert.Contains(t, "AB", string(c))
	}
	assert.Empty(t, r.String(0, "AB"))
	assert.Empty(t, r.String(4, ""))
}

func TestSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.String(8, "XYZ"), b.String(8, "XYZ"))

	x := []string{"A", "B", "C", "D", "E"}
	y := slices.Clone(x)
	a.Shuffle(len(x), func(i, j int) { x[i], x[j] = x[j], x[i] })
	b.Shuffle(len(y), func(i, j int) { y[i], y[j] = y[j], y[i] })
	assert.Equal(t, x, y)
	assert.Equal(t, uint64(42), a.Seed())
}

func TestSeededDiffersAcrossSeeds(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1<<30) != b.Intn(1<<30) {
			same = false
		}
	}
	assert.False(t, same)
}

func TestSeedFromPhrase(t *testing.T) {
	assert.Equal(t, SeedFromPhrase("animals"), SeedFromPhrase("animals"))
	assert.NotEqual(t, SeedFromPhrase("animals"), SeedFromPhrase("Animals"))
}
