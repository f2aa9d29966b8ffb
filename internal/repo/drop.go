package repo

import (
	"context"

	"quakerfm.dev/market-next/internal/app/appconfig"
	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/pkg/mkterr"
	"quakerfm.dev/market-next/internal/repo/snapshot"
)

type Drop struct {
	snap *snapshot.S[model.DropTable]
}

func NewDrop(conf *appconfig.Config) *Drop {
	return &Drop{
		snap: snapshot.New[model.DropTable](conf.DataDir, "drops"),
	}
}

// GetDropTable returns the persisted drop table, seeding the built-in default
// table on first startup.
func (r *Drop) GetDropTable(ctx context.Context) (*model.DropTable, error) {
	table, err := r.snap.LoadOrSeed(ctx, defaultDropTable)
	if err != nil {
		return nil, mkterr.ErrStorageFailure.Msg("failed to load drop table: %s", err)
	}
	return table, nil
}

// SaveDropTable overwrites the persisted drop table in place. The table is
// never deleted, only replaced.
func (r *Drop) SaveDropTable(ctx context.Context, table *model.DropTable) error {
	if err := r.snap.Save(ctx, table); err != nil {
		return mkterr.ErrStorageFailure.Msg("failed to save drop table: %s", err)
	}
	return nil
}

func defaultDropTable() *model.DropTable {
	return &model.DropTable{
		Entries: []model.DropEntry{
			{ID: "cigs", Weight: 30},
			{ID: "weed", Weight: 25},
			{ID: "pills", Weight: 18},
			{ID: "weap", Weight: 10},
			{ID: "chips", Weight: 10},
			{ID: "gold", Weight: 7},
		},
	}
}
