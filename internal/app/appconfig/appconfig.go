package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"quakerfm.dev/market-next/internal/app/appcontext"
)

func Parse(ctx appcontext.Ctx) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	if err := envconfig.Process("market", &config); err != nil {
		_ = envconfig.Usage("market", &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
