package rands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedFromString(t *testing.T) {
	require.Equal(t, SeedFromString("a"), SeedFromString("a"))
	require.NotEqual(t, SeedFromString("a"), SeedFromString("b"))
}

func TestDeriveSeed(t *testing.T) {
	seen := make(map[uint64]struct{})
	for i := 0; i < 64; i++ {
		seen[DeriveSeed(1, i)] = struct{}{}
	}
	require.Len(t, seen, 64)
	require.Equal(t, DeriveSeed(1, 3), DeriveSeed(1, 3))
	require.NotEqual(t, DeriveSeed(1, 3), DeriveSeed(2, 3))
}

func TestCountingNilUsesGlobal(t *testing.T) {
	c := Counting(nil)
	_ = c.Uint64()
	_ = c.Uint64N(10)
	require.Equal(t, uint64(2), c.Draws())
}
