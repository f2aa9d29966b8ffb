package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/model/cache"
	"quakerfm.dev/market-next/internal/pkg/mkterr"
	"quakerfm.dev/market-next/internal/repo"
)

func TestGetDropTableSeedsDefault(t *testing.T) {
	conf := newTestConfig(t)
	s := NewDrop(repo.NewDrop(conf))

	table, err := s.GetDropTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.DropEntry{
		{ID: "cigs", Weight: 30},
		{ID: "weed", Weight: 25},
		{ID: "pills", Weight: 18},
		{ID: "weap", Weight: 10},
		{ID: "chips", Weight: 10},
		{ID: "gold", Weight: 7},
	}, table.Entries)
}

func TestUpdateDropTablePersists(t *testing.T) {
	conf := newTestConfig(t)
	s := NewDrop(repo.NewDrop(conf))
	ctx := context.Background()

	submitted := &model.DropTable{Entries: []model.DropEntry{
		{ID: "cigs", Weight: 50},
		{ID: "gold", Weight: 50},
	}}
	updated, err := s.UpdateDropTable(ctx, submitted)
	require.NoError(t, err)
	assert.Equal(t, submitted.Entries, updated.Entries)

	// a fresh service over the same snapshot directory must see the update
	_ = cache.DropTable.Flush()
	reloaded, err := NewDrop(repo.NewDrop(conf)).GetDropTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, submitted.Entries, reloaded.Entries)
}

func TestUpdateDropTableRejectsMalformed(t *testing.T) {
	conf := newTestConfig(t)
	dropRepo := repo.NewDrop(conf)
	s := NewDrop(dropRepo)
	ctx := context.Background()

	before, err := s.GetDropTable(ctx)
	require.NoError(t, err)

	cases := []*model.DropTable{
		{},
		{Entries: []model.DropEntry{{ID: "", Weight: 1}}},
		{Entries: []model.DropEntry{{ID: "cigs", Weight: -5}}},
		{Entries: []model.DropEntry{{ID: "cigs", Weight: 1}, {ID: "cigs", Weight: 2}}},
	}
	for _, table := range cases {
		_, err := s.UpdateDropTable(ctx, table)
		require.Error(t, err)

		var merr *mkterr.MarketError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, mkterr.CodeInvalidConfiguration, merr.ErrorCode)
	}

	// the persisted snapshot must be untouched by any rejected update
	after, err := dropRepo.GetDropTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Entries, after.Entries)
}

func TestRollReturnsKnownID(t *testing.T) {
	conf := newTestConfig(t)
	s := NewDrop(repo.NewDrop(conf))
	ctx := context.Background()

	table, err := s.GetDropTable(ctx)
	require.NoError(t, err)

	known := make(map[string]struct{}, len(table.Entries))
	for _, e := range table.Entries {
		known[e.ID] = struct{}{}
	}

	for i := 0; i < 1000; i++ {
		id, err := s.Roll(ctx)
		require.NoError(t, err)
		assert.Contains(t, known, id)
	}
}

func TestRollFollowsUpdatedTable(t *testing.T) {
	conf := newTestConfig(t)
	s := NewDrop(repo.NewDrop(conf))
	ctx := context.Background()

	_, err := s.UpdateDropTable(ctx, &model.DropTable{Entries: []model.DropEntry{
		{ID: "onlyone", Weight: 1},
	}})
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		id, err := s.Roll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "onlyone", id)
	}
}
