package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/scoreboard-relay/internal/config"
	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
	"github.com/preston-bernstein/scoreboard-relay/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "scoreboard-relay"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	bootLogger := logging.NewLogger(logging.Config{Service: serviceName, Version: appVersion, Output: os.Stderr})
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warn(bootLogger, "failed to read .env file", logging.FieldError, err)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error(bootLogger, "invalid configuration", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
