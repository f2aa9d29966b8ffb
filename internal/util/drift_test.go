package util

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriftStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	const base = 420.0
	for i := 0; i < 10000; i++ {
		got := Drift(base, 5, rng)
		// ±3% per second over 5 seconds is at most ±15%
		assert.GreaterOrEqual(t, got, base*0.85-0.005)
		assert.LessOrEqual(t, got, base*1.15+0.005)
	}
}

func TestDriftRoundsToTwoDecimals(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 10000; i++ {
		got := Drift(613.37, 3, rng)
		cents := got * 100
		assert.InDelta(t, math.Round(cents), cents, 1e-6)
	}
}

func TestDriftFloorsAtOneCent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 10000; i++ {
		got := Drift(0.01, 8, rng)
		assert.GreaterOrEqual(t, got, 0.01)
	}

	assert.Equal(t, 0.01, Drift(0, 1, rng))
}

func TestDriftClampsElapsed(t *testing.T) {
	// identical seeds draw identical percentages, so a clamped elapsed value
	// must produce the exact same price as the boundary it clamps to
	low := Drift(100, 0.2, rand.New(rand.NewSource(9)))
	lowBoundary := Drift(100, 1, rand.New(rand.NewSource(9)))
	assert.Equal(t, lowBoundary, low)

	high := Drift(100, 3600, rand.New(rand.NewSource(9)))
	highBoundary := Drift(100, 8, rand.New(rand.NewSource(9)))
	assert.Equal(t, highBoundary, high)

	mid := Drift(100, 4, rand.New(rand.NewSource(9)))
	midAgain := Drift(100, 4, rand.New(rand.NewSource(9)))
	assert.Equal(t, midAgain, mid)
}

func TestDriftScalesWithElapsed(t *testing.T) {
	// same draw, longer elapsed: the swing away from base grows proportionally
	short := Drift(1000, 1, rand.New(rand.NewSource(11)))
	long := Drift(1000, 8, rand.New(rand.NewSource(11)))

	assert.InDelta(t, (short-1000)*8, long-1000, 0.05)
}
