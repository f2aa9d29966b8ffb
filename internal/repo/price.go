package repo

import (
	"context"
	"time"

	"quakerfm.dev/market-next/internal/app/appconfig"
	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/pkg/mkterr"
	"quakerfm.dev/market-next/internal/repo/snapshot"
)

type Price struct {
	snap *snapshot.S[model.PriceTable]
}

func NewPrice(conf *appconfig.Config) *Price {
	return &Price{
		snap: snapshot.New[model.PriceTable](conf.DataDir, "prices"),
	}
}

// GetPriceTable returns the persisted price table, seeding the built-in
// default table on first startup.
func (r *Price) GetPriceTable(ctx context.Context) (*model.PriceTable, error) {
	table, err := r.snap.LoadOrSeed(ctx, defaultPriceTable)
	if err != nil {
		return nil, mkterr.ErrStorageFailure.Msg("failed to load price table: %s", err)
	}
	return table, nil
}

func (r *Price) SavePriceTable(ctx context.Context, table *model.PriceTable) error {
	if err := r.snap.Save(ctx, table); err != nil {
		return mkterr.ErrStorageFailure.Msg("failed to save price table: %s", err)
	}
	return nil
}

func defaultPriceTable() *model.PriceTable {
	return &model.PriceTable{
		Prices: map[string]float64{
			"cigs":  420.00,
			"weed":  850.00,
			"pills": 610.00,
			"weap":  1250.00,
			"chips": 300.00,
			"gold":  2000.00,
		},
		LastUpdated: time.Now().UnixMilli(),
	}
}
