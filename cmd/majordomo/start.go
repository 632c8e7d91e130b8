package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/majordomo/pkg/log"
	"github.com/sandevgo/majordomo/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Majordomo services",
	Long:  `Initializes and starts the Telegram transport and the health endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting majordomo")

		services := NewServices(ctx)

		// Flush buffered log lines only after every service has shut
		// down, so their teardown messages are not lost.
		services = append(services, srv.NewCleanup(func() error {
			flushLog()
			return nil
		}))

		// Start services
		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("majordomo has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
