package util

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/pkg/mkterr"
)

func TestPickWeightedEmptyTable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := PickWeighted(nil, rng)
	require.Error(t, err)

	var merr *mkterr.MarketError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, mkterr.CodeInvalidConfiguration, merr.ErrorCode)
}

func TestPickWeightedAllZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entries := []model.DropEntry{
		{ID: "first", Weight: 0},
		{ID: "second", Weight: 0},
		{ID: "third", Weight: 0},
	}

	for i := 0; i < 100; i++ {
		id, err := PickWeighted(entries, rng)
		require.NoError(t, err)
		assert.Equal(t, "first", id)
	}
}

func TestPickWeightedSingleEntry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entries := []model.DropEntry{
		{ID: "only", Weight: 42},
	}

	for i := 0; i < 100; i++ {
		id, err := PickWeighted(entries, rng)
		require.NoError(t, err)
		assert.Equal(t, "only", id)
	}
}

func TestPickWeightedZeroWeightEntryNeverPicked(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entries := []model.DropEntry{
		{ID: "never", Weight: 0},
		{ID: "always", Weight: 10},
	}

	for i := 0; i < 1000; i++ {
		id, err := PickWeighted(entries, rng)
		require.NoError(t, err)
		assert.Equal(t, "always", id)
	}
}

func TestPickWeightedConvergesToWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entries := []model.DropEntry{
		{ID: "cigs", Weight: 30},
		{ID: "weed", Weight: 25},
		{ID: "pills", Weight: 18},
		{ID: "weap", Weight: 10},
		{ID: "chips", Weight: 10},
		{ID: "gold", Weight: 7},
	}

	const n = 200000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		id, err := PickWeighted(entries, rng)
		require.NoError(t, err)
		counts[id]++
	}

	for _, e := range entries {
		expected := float64(e.Weight) / 100
		actual := float64(counts[e.ID]) / n
		assert.InDeltaf(t, expected, actual, 0.005,
			"observed frequency of %s drifted from its weight share: got %f, want %f of %d rolls",
			e.ID, actual, expected, n)
	}
	assert.Len(t, counts, len(entries))
}

func TestPickWeightedDeterministicWithSeed(t *testing.T) {
	entries := []model.DropEntry{
		{ID: "a", Weight: 1},
		{ID: "b", Weight: 2},
		{ID: "c", Weight: 3},
	}

	roll := func(seed int64) []string {
		rng := rand.New(rand.NewSource(seed))
		out := make([]string, 0, 50)
		for i := 0; i < 50; i++ {
			id, err := PickWeighted(entries, rng)
			require.NoError(t, err)
			out = append(out, id)
		}
		return out
	}

	assert.Equal(t, roll(7), roll(7))
}

func TestPickWeightedNeverInventsIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	entries := []model.DropEntry{
		{ID: "x", Weight: 1},
		{ID: "y", Weight: int(math.MaxInt32 / 2)},
	}

	for i := 0; i < 1000; i++ {
		id, err := PickWeighted(entries, rng)
		require.NoError(t, err)
		assert.Contains(t, []string{"x", "y"}, id)
	}
}
