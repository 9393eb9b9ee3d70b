// Command clubsite runs the sports club website API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/bootstrap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "clubsite:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := bootstrap.OpenDeps(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.Close(context.Background()); err != nil {
			logger.Warn("closing backend connections", zap.Error(err))
		}
	}()

	if err := bootstrap.EnsureSchema(ctx, deps, logger); err != nil {
		return err
	}
	if err := bootstrap.SeedAdmin(ctx, deps, cfg, logger); err != nil {
		return err
	}

	handler, err := bootstrap.BuildHandler(cfg, deps, logger)
	if err != nil {
		return err
	}

	return bootstrap.Serve(ctx, cfg, handler, logger)
}

func newLogger(cfg bootstrap.Config) (*zap.Logger, error) {
	if cfg.IsProd() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
