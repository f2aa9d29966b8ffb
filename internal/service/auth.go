package service

import (
	"context"
	"time"

	"github.com/dchest/uniuri"
	"github.com/rs/zerolog/log"

	"quakerfm.dev/market-next/internal/app/appconfig"
	"quakerfm.dev/market-next/internal/constant"
	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/model/cache"
	"quakerfm.dev/market-next/internal/pkg/mkterr"
	"quakerfm.dev/market-next/internal/repo"
)

type Auth struct {
	KeyRepo *repo.Key

	conf *appconfig.Config
}

func NewAuth(keyRepo *repo.Key, conf *appconfig.Config) *Auth {
	return &Auth{
		KeyRepo: keyRepo,
		conf:    conf,
	}
}

// Login checks the presented credentials against the fixed admin pair and, on
// success, mints a fresh key, appends it to the persisted key set and returns
// it. The key carries no identity beyond "was issued by a successful login".
func (s *Auth) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.conf.AdminUsername || password != s.conf.AdminPassword {
		return "", mkterr.ErrUnauthorized.Msg("invalid credentials")
	}

	set, err := s.KeyRepo.GetKeySet(ctx)
	if err != nil {
		return "", err
	}

	var key string
	for i := 0; i < constant.LoginMaxRetries; i++ {
		candidate := uniuri.NewLen(constant.APIKeyLength)
		if set.Contains(candidate) {
			log.Warn().
				Str("evt.name", "auth.mint.retry").
				Int("retry", i).
				Msg("minted a key that was already issued, retrying")
			continue
		}
		key = candidate
		break
	}
	if key == "" {
		return "", mkterr.ErrInternalError.Msg("failed to mint a unique api key")
	}

	set.Append(key)
	if err := s.KeyRepo.SaveKeySet(ctx, set); err != nil {
		return "", err
	}
	cache.KeySet.Flush()

	log.Info().
		Str("evt.name", "auth.login").
		Int("issued", len(set.Keys)).
		Msg("issued a new api key")

	return key, nil
}

// Authorize checks that key is a member of the issued key set. Keys never
// expire and cannot be revoked; a rejected key leaves no partial effect as the
// gate runs before any mutation.
//
// Cache: (singular) keySet, 1 hr
func (s *Auth) Authorize(ctx context.Context, key string) error {
	if key == "" {
		return mkterr.ErrUnauthorized.Msg("missing api key")
	}

	var set model.KeySet
	err := cache.KeySet.MutexGetSet(&set, func() (model.KeySet, error) {
		v, err := s.KeyRepo.GetKeySet(ctx)
		if err != nil {
			return model.KeySet{}, err
		}
		return *v, nil
	}, time.Hour)
	if err != nil {
		return err
	}

	if !set.Contains(key) {
		return mkterr.ErrUnauthorized.Msg("unknown api key")
	}
	return nil
}
