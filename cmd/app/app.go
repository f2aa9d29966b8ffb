package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"quakerfm.dev/market-next/cmd/app/server"
	"quakerfm.dev/market-next/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "marketbackend",
		Description: "The QuakerFM contraband market backend. Built with Go, fiber and go.uber.org/fx. Persists all market state as flat JSON snapshots.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
