package main

import (
	"context"
	"os"

	"github.com/sandevgo/majordomo/internal/config"
	"github.com/sandevgo/majordomo/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "majordomo",
	Short: "Majordomo — a personal butler bot",
	Long:  `Majordomo is a Telegram butler whose persona evolves from your conversations.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
