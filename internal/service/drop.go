package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/model/cache"
	"quakerfm.dev/market-next/internal/pkg/observability"
	"quakerfm.dev/market-next/internal/repo"
	"quakerfm.dev/market-next/internal/util"
)

type Drop struct {
	DropRepo *repo.Drop

	// rng is not safe for concurrent use; mu guards it across requests
	mu  sync.Mutex
	rng *rand.Rand
}

func NewDrop(dropRepo *repo.Drop) *Drop {
	return &Drop{
		DropRepo: dropRepo,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Cache: (singular) dropTable, 1 hr
func (s *Drop) GetDropTable(ctx context.Context) (*model.DropTable, error) {
	var table model.DropTable
	err := cache.DropTable.MutexGetSet(&table, func() (model.DropTable, error) {
		t, err := s.DropRepo.GetDropTable(ctx)
		if err != nil {
			return model.DropTable{}, err
		}
		return *t, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// UpdateDropTable overwrites the persisted table with the submitted one. The
// caller is expected to have authorized the request already; a table failing
// validation is rejected with no partial effect.
func (s *Drop) UpdateDropTable(ctx context.Context, table *model.DropTable) (*model.DropTable, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	if err := s.DropRepo.SaveDropTable(ctx, table); err != nil {
		return nil, err
	}
	cache.DropTable.Flush()

	return table, nil
}

// Roll picks one entry from the current drop table with probability
// proportional to its share of total weight.
func (s *Drop) Roll(ctx context.Context) (string, error) {
	table, err := s.GetDropTable(ctx)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	id, err := util.PickWeighted(table.Entries, s.rng)
	s.mu.Unlock()
	if err != nil {
		return "", err
	}

	observability.DropRolls.WithLabelValues(id).Inc()
	return id, nil
}
