package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"service-exchangerate/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		logger.Log.Error().Err(err).Msg("exchangerate failed")
		os.Exit(1)
	}
}
