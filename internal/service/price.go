package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/pkg/observability"
	"quakerfm.dev/market-next/internal/repo"
	"quakerfm.dev/market-next/internal/util"
)

type Price struct {
	PriceRepo *repo.Price

	// mu serializes the read-modify-write cycle: every price read advances the
	// walk, so two concurrent reads must not start from the same base.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPrice(priceRepo *repo.Price) *Price {
	return &Price{
		PriceRepo: priceRepo,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Advance applies the bounded random walk to every price and persists the
// result. Reads are deliberately mutating: the returned table becomes the base
// for the next call, so GET prices is not idempotent.
func (s *Price) Advance(ctx context.Context) (*model.PriceTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.PriceRepo.GetPriceTable(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	elapsed := float64(now.UnixMilli()-table.LastUpdated) / 1000
	for id, price := range table.Prices {
		table.Prices[id] = util.Drift(price, elapsed, s.rng)
	}
	table.LastUpdated = now.UnixMilli()

	if err := s.PriceRepo.SavePriceTable(ctx, table); err != nil {
		return nil, err
	}

	observability.PriceReads.Inc()
	return table, nil
}
