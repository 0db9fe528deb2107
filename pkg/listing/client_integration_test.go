package listing

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestFetchJobsIntegration(t *testing.T) {
	baseURL := os.Getenv("LISTING_BASE_URL")
	token := os.Getenv("TALENT_AUTH_TOKEN")

	if baseURL == "" || token == "" {
		t.Skip("LISTING_BASE_URL and TALENT_AUTH_TOKEN must be set to run this test")
	}

	client, err := NewClient(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, err := client.FetchJobs(ctx, token, Query{
		ActivePage:    1,
		Limit:         4,
		SortByDate:    "desc",
		ShowActive:    true,
		ShowDraft:     true,
		ShowExpired:   true,
		ShowUnexpired: true,
	})
	if err != nil {
		t.Fatalf("FetchJobs: %v", err)
	}

	for i, job := range page.Jobs {
		t.Logf("Result %d: %s (%s, %s) status=%d", i+1, job.Title, job.Location.City, job.Location.Country, job.Status)
	}
	t.Logf("listing returned %d of %d jobs", len(page.Jobs), page.TotalCount)
}
