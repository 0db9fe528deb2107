package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/manage-jobs/internal/config"
	"github.com/honeycarbs/manage-jobs/internal/mcp"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
	"github.com/honeycarbs/manage-jobs/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	res, err := mcp.BuildResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	srv, err := mcp.NewServer(logger, cfg, *res)
	if err != nil {
		logger.Error("failed to register MCP tools", "err", err)
		os.Exit(1)
	}

	res.Controller.Mount(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		return shutdown.Graceful(gctx,
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			10*time.Second,
			logger,
			srv,
			res.Controller,
		)
	})

	if err := g.Wait(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		os.Exit(1)
	}
	logger.Info("MCP server stopped")
}
