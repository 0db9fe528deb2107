package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config contains runtime settings for the manage-jobs server and CLI
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
	Host      string `envconfig:"MCP_HOST" default:"0.0.0.0"`
	Port      string `envconfig:"PORT" default:"8080" validate:"required,numeric"`

	// Listing API
	ListingBaseURL   string        `envconfig:"LISTING_BASE_URL" default:"http://localhost:51689" validate:"required,url"`
	ListingPath      string        `envconfig:"LISTING_PATH" default:"/listing/listing/getSortedEmployerJobs" validate:"required,startswith=/"`
	ListingTimeout   time.Duration `envconfig:"LISTING_TIMEOUT" default:"15s" validate:"gt=0"`
	ListingRateLimit float64       `envconfig:"LISTING_RATE_LIMIT" default:"0" validate:"gte=0"`
	PageSize         int           `envconfig:"LISTING_PAGE_SIZE" default:"4" validate:"gte=1,lte=100"`

	// PreservePageOnFilter keeps the current page when filters or sort change
	PreservePageOnFilter bool `envconfig:"PRESERVE_PAGE_ON_FILTER" default:"false"`

	// Auth cookie; the site URL scopes the talentAuthToken cookie and defaults to the listing base URL
	SiteURL   string `envconfig:"TALENT_SITE_URL" validate:"omitempty,url"`
	AuthToken string `envconfig:"TALENT_AUTH_TOKEN"`

	SheetsCredentialsPath string `envconfig:"GOOGLE_SHEETS_CREDENTIALS_PATH" validate:"omitempty,file"`
	SheetsID              string `envconfig:"GOOGLE_SHEETS_ID"`

	ClipboardEnabled bool `envconfig:"CLIPBOARD_ENABLED" default:"false"`
}

var validate = validator.New()

// Load reads optional .env files (default ".env") and then the environment
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if cfg.SiteURL == "" {
		cfg.SiteURL = cfg.ListingBaseURL
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("config: invalid settings: %w", err)
	}

	return cfg, nil
}

// SheetsEnabled reports whether export to Google Sheets is configured
func (c Config) SheetsEnabled() bool {
	return c.SheetsCredentialsPath != ""
}
