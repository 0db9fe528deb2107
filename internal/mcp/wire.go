//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/manage-jobs/internal/auth"
	"github.com/honeycarbs/manage-jobs/internal/config"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist/providers/talent"
	"github.com/honeycarbs/manage-jobs/pkg/listing"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Listing API
		provideListingConfig,
		listing.NewClient,
		provideTalentProvider,
		wire.Bind(new(joblist.Source), new(*talent.Provider)),

		// Auth
		provideCookieStore,
		wire.Bind(new(joblist.TokenSource), new(*auth.CookieStore)),

		provideController,
		provideClipboard,
		provideExporter,
		newResources,
	)

	return &Resources{}, nil
}
