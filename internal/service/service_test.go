package service

import (
	"testing"

	"quakerfm.dev/market-next/internal/app/appconfig"
	"quakerfm.dev/market-next/internal/model/cache"
)

// newTestConfig builds a config backed by a throwaway snapshot directory and
// resets the global singular caches, since those outlive any one test.
func newTestConfig(t *testing.T) *appconfig.Config {
	t.Helper()

	cache.Initialize()
	_ = cache.DropTable.Flush()
	_ = cache.KeySet.Flush()

	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			DataDir:       t.TempDir(),
			AdminUsername: "admin",
			AdminPassword: "quakerfm",
		},
	}
}
