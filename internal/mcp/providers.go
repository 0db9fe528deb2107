package mcp

import (
	"context"
	"net/http"

	"github.com/honeycarbs/manage-jobs/internal/auth"
	"github.com/honeycarbs/manage-jobs/internal/card"
	"github.com/honeycarbs/manage-jobs/internal/config"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist/providers/talent"
	"github.com/honeycarbs/manage-jobs/internal/mcp/tools"
	"github.com/honeycarbs/manage-jobs/pkg/listing"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
	sheetsclient "github.com/honeycarbs/manage-jobs/pkg/sheets"
)

// provideListingConfig extracts the listing API settings from main config. The
// HTTP client shares the cookie jar so cookies the API sets are seen by Token.
func provideListingConfig(cfg config.Config, store *auth.CookieStore) listing.Config {
	return listing.Config{
		BaseURL: cfg.ListingBaseURL,
		Path:    cfg.ListingPath,
		HTTPClient: &http.Client{
			Jar:     store.Jar(),
			Timeout: cfg.ListingTimeout,
		},
		RequestsPerSecond: cfg.ListingRateLimit,
	}
}

func provideTalentProvider(client *listing.Client) (*talent.Provider, error) {
	return talent.NewProvider(client)
}

// provideCookieStore seeds the talentAuthToken cookie from TALENT_AUTH_TOKEN when set
func provideCookieStore(cfg config.Config) (*auth.CookieStore, error) {
	store, err := auth.NewCookieStore(cfg.SiteURL)
	if err != nil {
		return nil, err
	}
	if cfg.AuthToken != "" {
		store.SetToken(cfg.AuthToken)
	}
	return store, nil
}

func provideController(cfg config.Config, logger *logging.Logger, source joblist.Source, tokens joblist.TokenSource) (*joblist.Controller, error) {
	log := logger.Named("joblist")
	loader := joblist.NewLoaderBuilder().
		Allow(joblist.RoleEmployer, joblist.RoleRecruiter).
		Build()

	return joblist.NewController(source, tokens,
		joblist.WithLogger(log),
		joblist.WithLoader(loader),
		joblist.WithResultHook(func(res joblist.LoadResult) {
			log.Debug("job listing load finished",
				"seq", res.Seq,
				"status", res.Status.String(),
				"page", res.Query.Page,
				"jobs", res.JobCount,
			)
		}),
		joblist.WithPageSize(cfg.PageSize),
		joblist.WithPreservePage(cfg.PreservePageOnFilter),
		joblist.WithRequestTimeout(cfg.ListingTimeout),
	)
}

// provideClipboard returns nil unless the host clipboard is enabled and usable
func provideClipboard(cfg config.Config, logger *logging.Logger) card.Clipboard {
	if !cfg.ClipboardEnabled {
		return nil
	}
	cb := card.SystemClipboard{}
	if !cb.Available() {
		logger.Warn("clipboard enabled but unsupported on this host")
		return nil
	}
	return cb
}

// provideExporter returns nil when sheets credentials are not configured
func provideExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (tools.Exporter, error) {
	if !cfg.SheetsEnabled() {
		return nil, nil
	}
	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.SheetsCredentialsPath})
	if err != nil {
		return nil, err
	}
	logger.Info("Google Sheets client initialized")
	return newSheetsExporter(client), nil
}

func newResources(cfg config.Config, ctrl *joblist.Controller, clipboard card.Clipboard, exporter tools.Exporter) *Resources {
	return &Resources{
		Controller: ctrl,
		Clipboard:  clipboard,
		Exporter:   exporter,
		SheetsID:   cfg.SheetsID,
	}
}
