package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/console"
	"parcel-tracker/internal/core/logger"
	deliveryservice "parcel-tracker/internal/features/deliveries/service"
	orderservice "parcel-tracker/internal/features/orders/service"
	returnservice "parcel-tracker/internal/features/returns/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd builds the parcels command tree. The menu reads from in and
// renders to out.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		configDir string
		logLevel  string
	)

	rootCmd := &cobra.Command{
		Use:   "parcels",
		Short: "Track deliveries, returns and outgoing orders",
		Long: `parcels runs an interactive menu over three in-memory collections:

  - deliveries: parcels out for delivery, newest first
  - returns:    returned parcels, processed most recent first
  - orders:     outgoing orders, processed oldest first

State lives only as long as the process.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configDir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}

			if err := logger.Init(cfg.Environment, cfg.Logging.Level, cfg.Logging.Output); err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer logger.Sync()

			l := logger.Get()
			l.Info("Application starting",
				zap.String("environment", cfg.Environment),
				zap.String("log_level", cfg.Logging.Level),
				zap.String("version", version),
			)

			d := console.New(
				deliveryservice.NewRegistry(),
				returnservice.NewStack(),
				orderservice.NewQueue(),
				in,
				out,
				console.Options{
					Title:  cfg.Console.Title,
					Color:  cfg.Console.Color,
					Logger: l,
				},
			)

			if err := d.Run(cmd.Context()); err != nil {
				if errors.Is(err, context.Canceled) {
					l.Info("Shutting down on signal")
					return nil
				}
				return err
			}

			l.Info("Application stopped")
			return nil
		},
	}

	rootCmd.Flags().StringVar(&configDir, "config-dir", ".", "directory containing the .env file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the parcels version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, "parcels", version)
		},
	})

	return rootCmd
}
