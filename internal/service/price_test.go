package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakerfm.dev/market-next/internal/repo"
)

func TestAdvanceKeepsItemSetAndBounds(t *testing.T) {
	conf := newTestConfig(t)
	s := NewPrice(repo.NewPrice(conf))
	ctx := context.Background()

	table, err := s.Advance(ctx)
	require.NoError(t, err)

	assert.Len(t, table.Prices, 6)
	for id, price := range table.Prices {
		assert.GreaterOrEqualf(t, price, 0.01, "price of %s fell below the floor", id)

		cents := price * 100
		assert.InDeltaf(t, math.Round(cents), cents, 1e-6, "price of %s is not in whole cents", id)
	}

	// the seed was written moments ago, so elapsed clamps to its lower bound
	// and each price may swing at most about ±3%
	assert.InDelta(t, 420, table.Prices["cigs"], 420*0.04)
	assert.InDelta(t, 2000, table.Prices["gold"], 2000*0.04)
}

func TestAdvanceIsMutating(t *testing.T) {
	conf := newTestConfig(t)
	s := NewPrice(repo.NewPrice(conf))
	ctx := context.Background()

	first, err := s.Advance(ctx)
	require.NoError(t, err)
	second, err := s.Advance(ctx)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, second.LastUpdated, first.LastUpdated)

	// the second read walks from the first result, not from the seed
	for id, price := range second.Prices {
		base := first.Prices[id]
		assert.InDeltaf(t, base, price, base*0.25+0.01,
			"price of %s moved further than one drift step allows", id)
	}
}

func TestAdvancePersistsAcrossRestart(t *testing.T) {
	conf := newTestConfig(t)
	ctx := context.Background()

	first, err := NewPrice(repo.NewPrice(conf)).Advance(ctx)
	require.NoError(t, err)

	// a new service over the same snapshot directory stands in for a restart
	second, err := NewPrice(repo.NewPrice(conf)).Advance(ctx)
	require.NoError(t, err)

	for id, price := range second.Prices {
		base := first.Prices[id]
		assert.InDeltaf(t, base, price, base*0.25+0.01,
			"price of %s did not continue from the persisted walk", id)
	}
}
