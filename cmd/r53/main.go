package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lite-lake/infra-r53/internal/constants"
	"github.com/lite-lake/infra-r53/internal/infrastructure/logger"
	"github.com/lite-lake/infra-r53/internal/interfaces/cli"
)

func main() {
	logLevel := slog.LevelWarn
	if os.Getenv(constants.EnvDebug) != "" {
		logLevel = slog.LevelDebug
	}

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    os.Getenv(constants.EnvLogFormat),
		AddSource: os.Getenv(constants.EnvDebug) != "",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
