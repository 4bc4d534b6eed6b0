package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/outofforest/logger"
)

func main() {
	log := logger.New(logger.DefaultConfig)
	ctx, cancel := signal.NotifyContext(logger.WithLogger(context.Background(), log), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand(os.Stdout).ExecuteContext(ctx)
	cancel()
	if err != nil {
		log.Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}
