package server

import (
	"go.uber.org/fx"

	"quakerfm.dev/market-next/internal/server/httpserver"
	"quakerfm.dev/market-next/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
