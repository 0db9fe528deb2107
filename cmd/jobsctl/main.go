package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/honeycarbs/manage-jobs/internal/cli"
	"github.com/honeycarbs/manage-jobs/internal/config"
	"github.com/honeycarbs/manage-jobs/internal/mcp"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
	"github.com/honeycarbs/manage-jobs/pkg/shutdown"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// logs go to stderr so they don't interleave with the rendered list
	logger := logging.New(cfg.LogLevel, "console")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := mcp.BuildResources(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}
	defer func() { _ = shutdown.Stop(2*time.Second, logger, res.Controller) }()

	res.Controller.Mount(ctx)

	fmt.Println("List of Jobs - type 'help' for commands")
	repl := cli.New(res.Controller, res.Clipboard, os.Stdout, logger.Named("card"))
	if err := repl.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Error("jobsctl exited with error", "err", err)
		os.Exit(1)
	}
}
