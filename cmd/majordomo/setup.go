package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/majordomo/internal/config"
	"github.com/sandevgo/majordomo/internal/providers/llm"
	"github.com/sandevgo/majordomo/internal/providers/weather"
	"github.com/sandevgo/majordomo/internal/service/butler"
	"github.com/sandevgo/majordomo/internal/storage/supabase"
	"github.com/sandevgo/majordomo/internal/transport/health"
	"github.com/sandevgo/majordomo/internal/transport/telegram"
	"github.com/sandevgo/majordomo/pkg/log"
	"github.com/sandevgo/majordomo/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration. Missing secrets abort here, before any client is
	// constructed.
	appCfg := config.NewAppConfig(ctx)
	tgCfg := config.NewTelegramConfig(ctx)
	geminiCfg := config.NewGeminiConfig(ctx)
	supabaseCfg := config.NewSupabaseConfig(ctx)
	weatherCfg := config.NewWeatherConfig(ctx)

	// 2. Storage
	store, err := supabase.NewClient(supabaseCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize supabase client")
	}

	// 3. LLM Provider
	gemini, err := llm.NewGemini(ctx, geminiCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize gemini client")
	}

	// 4. Butler Service
	bt := butler.New(
		supabase.NewProfileRepo(store),
		supabase.NewMemoryRepo(store),
		supabase.NewChatLogRepo(store),
		gemini,
		weather.New(weatherCfg),
	)

	// 5. Transports
	bot, err := telegram.NewBot(ctx, tgCfg, bt)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}
	services = append(services, bot)
	services = append(services, health.NewServer(appCfg))

	return services
}

func initEnv(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(".env"); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn().Err(err).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Msg("loaded .env file")
	return nil
}
