package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/majordomo/pkg/log"
)

type SupabaseConfig struct {
	URL string `env:"SUPABASE_URL,required,notEmpty"`
	Key string `env:"SUPABASE_KEY,required,notEmpty"`
}

func NewSupabaseConfig(ctx context.Context) *SupabaseConfig {
	c := &SupabaseConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Supabase config")
	}
	return c
}
