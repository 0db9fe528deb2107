package listing

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Config defines listing API client settings
type Config struct {
	BaseURL    string
	Path       string
	HTTPClient *http.Client
	// RequestsPerSecond caps outbound calls; zero disables the limiter
	RequestsPerSecond float64
}

// Client queries the employer job listing API
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Query is the query string sent to getSortedEmployerJobs
type Query struct {
	ActivePage    int    `url:"activePage" validate:"gte=1"`
	Limit         int    `url:"limit" validate:"gte=1"`
	SortByDate    string `url:"sortbyDate" validate:"oneof=asc desc"`
	ShowActive    bool   `url:"showActive"`
	ShowClosed    bool   `url:"showClosed"`
	ShowDraft     bool   `url:"showDraft"`
	ShowExpired   bool   `url:"showExpired"`
	ShowUnexpired bool   `url:"showUnexpired"`
}

// Page is a decoded successful response
type Page struct {
	Jobs       []Job
	TotalCount int
	RequestID  string
}

type jobsResponse struct {
	Success    bool   `json:"success"`
	MyJobs     []Job  `json:"myJobs"`
	TotalCount int    `json:"totalCount"`
	Message    string `json:"message,omitempty"`
}

// Job is a job summary as returned by the API
type Job struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Location        Location `json:"location"`
	Summary         string   `json:"summary"`
	Status          int      `json:"status"`
	NoOfSuggestions int      `json:"noOfSuggestions"`
}

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// APIError is returned when the API answers with success=false
type APIError struct {
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("listing: API reported failure: %s", e.Message)
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("listing: API error (%d): %s", e.StatusCode, e.Body)
}
