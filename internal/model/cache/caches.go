package cache

import (
	"sync"

	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/pkg/cache"
)

type Flusher func() error

var (
	DropTable *cache.Singular[model.DropTable]

	KeySet *cache.Singular[model.KeySet]

	once sync.Once

	SingularFlusherMap map[string]Flusher
)

func Initialize() {
	once.Do(initializeCaches)
}

func initializeCaches() {
	SingularFlusherMap = make(map[string]Flusher)

	// drop
	DropTable = cache.NewSingular[model.DropTable]("dropTable")

	SingularFlusherMap["dropTable"] = DropTable.Flush

	// auth
	KeySet = cache.NewSingular[model.KeySet]("keySet")

	SingularFlusherMap["keySet"] = KeySet.Flush
}
