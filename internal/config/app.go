package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/majordomo/pkg/log"
)

type AppConfig struct {
	// Port serves the liveness endpoint hosting platforms probe.
	Port int `env:"PORT" envDefault:"8080"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}
