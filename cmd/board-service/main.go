package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	_ "whisperboard/cmd/board-service/docs"
	"whisperboard/internal/config"
	"whisperboard/internal/logger"
	"whisperboard/pkg/logging"
)

var (
	configFile string
)

// @title           Whisperboard API
// @version         1.0
// @description     Anonymous message board: submit short text posts and read the feed in reverse-chronological order.

// @host      localhost:8080
// @BasePath  /

// @schemes   http https

func main() {
	rootCmd := &cobra.Command{
		Use:   "board-service",
		Short: "Anonymous message board service",
		Long:  "HTTP service for the anonymous message board, backed by an external record store",
		RunE:  serveCmd().RunE,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (required)")

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the board service",
		RunE: func(cmd *cobra.Command, args []string) error {
			earlyLog := logging.NewEarlyLog()

			if configFile == "" {
				configFile = os.Getenv("CONFIG_FILE")
				if configFile == "" {
					earlyLog.Error("Config file is required. Use --config flag or CONFIG_FILE environment variable")
					return fmt.Errorf("config file is required")
				}
			}

			cfg, err := config.Load(configFile)
			if err != nil {
				earlyLog.Error("Failed to load config: %v", err)
				return err
			}

			log, err := logger.New(cfg.Logging.Level)
			if err != nil {
				earlyLog.Error("Failed to init logger: %v", err)
				return err
			}
			defer log.Sync()

			if cfg.Store.APIKey == "" {
				log.Warnw("STORE_API_KEY is not set; /messages will return 500")
			}
			if cfg.Store.CollectionID == "" {
				log.Warnw("STORE_COLLECTION_ID is not set; /messages will return 500")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			log.InfowCtx(ctx, "Starting board service")

			app := NewApp(cfg, log)
			if err := app.Initialize(ctx); err != nil {
				log.Fatalf("Failed to initialize application: %v", err)
			}

			if err := app.Run(ctx); err != nil {
				log.ErrorwCtx(ctx, "Application error", "error", err)
				return err
			}
			return nil
		},
	}
}
