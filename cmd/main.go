package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"goban/internal/bootstrap"
	cliDelivery "goban/internal/delivery/cli"
)

func main() {
	cfg, cfgErr := bootstrap.Setup(".env")
	if cfgErr != nil {
		cfg = bootstrap.Default()
	}

	logger := NewLogger(cfg.DebugLog)
	defer logger.Sync()

	if cfgErr != nil {
		logger.Infow("no config file found, using defaults", "board_size", cfg.BoardSize)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	handler := cliDelivery.NewHandler(*cfg, logger, os.Stdin, os.Stdout)
	if err := handler.Run(ctx); err != nil {
		logger.Fatalw("session failed", "error", err)
	}
}

func NewLogger(debug bool) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("received shutdown signal")
	cancelFunc()
}
