// The clinicbots command runs the two Telegram bots: the patient-facing
// helper and the operator bot that posts questions to the doctor channel.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ruslanamed/clinic-go/internal/bot"
	"github.com/ruslanamed/clinic-go/internal/config"
	"github.com/ruslanamed/clinic-go/internal/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.LoadBots()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup("info", false)

	service, err := bot.NewService(cfg, logger)
	if err != nil {
		return fmt.Errorf("starting bots: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("bots running")
	if err := service.Run(ctx); err != nil {
		return fmt.Errorf("running bots: %w", err)
	}

	logger.Info("bots stopped")
	return nil
}
