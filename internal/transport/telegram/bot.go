package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/majordomo/internal/config"
	"github.com/sandevgo/majordomo/internal/core"
	"github.com/sandevgo/majordomo/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Answerer runs the full reply pipeline for one inbound message and
// delivers the reply through send.
type Answerer interface {
	Answer(ctx context.Context, userID int64, text string, send func(reply string) error) error
}

type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	butler Answerer
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	bt Answerer,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: newPoller(cfg),
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		butler: bt,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

// newPoller selects push (webhook) or pull (long polling) delivery. A
// configured public URL means the process is reachable from outside.
func newPoller(cfg *config.TelegramConfig) tele.Poller {
	if cfg.PublicURL != "" {
		return &tele.Webhook{
			Listen:      cfg.WebhookListen,
			DropUpdates: true,
			Endpoint:    &tele.WebhookEndpoint{PublicURL: cfg.PublicURL},
		}
	}
	return &tele.LongPoller{Timeout: 10 * time.Second}
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Bool("webhook", b.cfg.PublicURL != "").Msg("starting telegram bot")
	if needsBacklogReset(b.cfg) {
		if err := b.bot.RemoveWebhook(true); err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("failed to drop pending updates")
		}
	}
	b.bot.Start()
	return nil
}

// needsBacklogReset reports whether pending updates must be dropped
// explicitly before delivery starts. The webhook poller does this on
// its own via DropUpdates; long polling needs a deleteWebhook call
// with drop_pending_updates set.
func needsBacklogReset(cfg *config.TelegramConfig) bool {
	return cfg.PublicURL == ""
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	text := c.Text()
	// Commands have their own handlers; the butler pipeline only sees
	// plain conversation.
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	ctx := c.Get(baseContextKey).(context.Context)
	userID := c.Sender().ID

	logger := log.FromCtx(ctx).With().
		Str("request_id", uuid.NewString()).
		Int64("user_id", userID).
		Logger()
	ctx = logger.WithContext(ctx)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	err := b.butler.Answer(ctx, userID, text, func(reply string) error {
		return c.Send(reply)
	})
	if err != nil {
		logger.Error().Err(err).Msg("message pipeline failed")
		return c.Send(core.ApologyReply)
	}

	return nil
}
