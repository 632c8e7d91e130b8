package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/majordomo/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"TELEGRAM_TOKEN,required,notEmpty"`

	// PublicURL switches inbound delivery from long polling to a webhook
	// registered at this externally reachable URL.
	PublicURL     string `env:"PUBLIC_URL"`
	WebhookListen string `env:"WEBHOOK_LISTEN" envDefault:":8443"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
