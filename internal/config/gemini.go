package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/majordomo/pkg/log"
)

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY,required,notEmpty"`

	// ReplyModel answers the user; ReflectionModel rewrites the
	// personality summary in the background.
	ReplyModel      string `env:"GEMINI_REPLY_MODEL" envDefault:"gemini-2.5-flash"`
	ReflectionModel string `env:"GEMINI_REFLECTION_MODEL" envDefault:"gemini-3-flash-preview"`
	EmbeddingModel  string `env:"GEMINI_EMBEDDING_MODEL" envDefault:"text-embedding-004"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}
