package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	defaultPath = "/listing/listing/getSortedEmployerJobs"
)

// ErrMissingToken is returned when no bearer token is supplied
var ErrMissingToken = errors.New("listing: bearer token is required")

var validate = validator.New()

// NewClient instantiates a listing API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("listing: base url is required")
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("listing: parse base url: %w", err)
	}

	p := cfg.Path
	if p == "" {
		p = defaultPath
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:    baseURL,
		path:       p,
		httpClient: httpClient,
		limiter:    limiter,
	}, nil
}

// FetchJobs issues one GET for the given query; it never retries
func (c *Client) FetchJobs(ctx context.Context, token string, q Query) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("listing: client is nil")
	}
	if token == "" {
		return Page{}, ErrMissingToken
	}
	if err := validate.Struct(q); err != nil {
		return Page{}, fmt.Errorf("listing: invalid query: %w", err)
	}

	u, err := c.buildURL(q)
	if err != nil {
		return Page{}, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Page{}, fmt.Errorf("listing: rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Page{}, fmt.Errorf("listing: build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("listing: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Page{}, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload jobsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Page{}, fmt.Errorf("listing: decode response: %w", err)
	}

	if !payload.Success {
		return Page{}, &APIError{Message: payload.Message, RequestID: requestID}
	}

	return Page{
		Jobs:       payload.MyJobs,
		TotalCount: payload.TotalCount,
		RequestID:  requestID,
	}, nil
}

func (c *Client) buildURL(q Query) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("listing: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, c.path)

	values, err := query.Values(q)
	if err != nil {
		return "", fmt.Errorf("listing: encode query: %w", err)
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}
