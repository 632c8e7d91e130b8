package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/majordomo/pkg/log"
)

type WeatherConfig struct {
	BaseURL string `env:"WEATHER_BASE_URL" envDefault:"https://wttr.in"`

	// The lookup is optional prompt garnish and must never stall a reply.
	Timeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"3s"`
}

func NewWeatherConfig(ctx context.Context) *WeatherConfig {
	c := &WeatherConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Weather config")
	}
	return c
}
