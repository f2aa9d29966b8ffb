package repo

import (
	"context"

	"quakerfm.dev/market-next/internal/app/appconfig"
	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/pkg/mkterr"
	"quakerfm.dev/market-next/internal/repo/snapshot"
)

type Key struct {
	snap *snapshot.S[model.KeySet]
}

func NewKey(conf *appconfig.Config) *Key {
	return &Key{
		snap: snapshot.New[model.KeySet](conf.DataDir, "keys"),
	}
}

// GetKeySet returns the persisted key set, seeding an empty set on first
// startup. The set grows monotonically; there is no revocation path.
func (r *Key) GetKeySet(ctx context.Context) (*model.KeySet, error) {
	set, err := r.snap.LoadOrSeed(ctx, func() *model.KeySet {
		return &model.KeySet{Keys: []string{}}
	})
	if err != nil {
		return nil, mkterr.ErrStorageFailure.Msg("failed to load key set: %s", err)
	}
	return set, nil
}

func (r *Key) SaveKeySet(ctx context.Context, set *model.KeySet) error {
	if err := r.snap.Save(ctx, set); err != nil {
		return mkterr.ErrStorageFailure.Msg("failed to save key set: %s", err)
	}
	return nil
}
