package service

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"

	"quakerfm.dev/market-next/internal/app/appconfig"
)

type Health struct {
	conf *appconfig.Config

	startedAt time.Time
}

func NewHealth(conf *appconfig.Config) *Health {
	return &Health{
		conf:      conf,
		startedAt: time.Now(),
	}
}

// Ping verifies the snapshot directory is reachable and writable, as every
// market operation eventually goes through it.
func (s *Health) Ping(ctx context.Context) error {
	if err := os.MkdirAll(s.conf.DataDir, 0o755); err != nil {
		return errors.Wrap(err, "snapshot directory not writable")
	}
	return nil
}

// Uptime returns whole seconds since process start, measured against the
// monotonic clock.
func (s *Health) Uptime() int64 {
	return int64(time.Since(s.startedAt).Seconds())
}
