package mcp

import (
	"context"
	"fmt"

	"github.com/honeycarbs/manage-jobs/internal/config"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

// BuildResources runs the injector and reports which optional integrations came up
func BuildResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	res, err := InitializeResources(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("mcp: initialize resources: %w", err)
	}

	logger.Info("listing client initialized",
		"base_url", cfg.ListingBaseURL,
		"path", cfg.ListingPath,
		"page_size", cfg.PageSize,
	)
	if cfg.AuthToken == "" {
		logger.Warn("TALENT_AUTH_TOKEN not set; loads fail until a talentAuthToken cookie is present")
	}
	if res.Exporter == nil {
		logger.Info("sheets export disabled")
	}
	if res.Clipboard == nil {
		logger.Info("clipboard disabled; job_action copy returns text only")
	}

	return res, nil
}
