package talent

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/pkg/listing"
)

// listingClient describes the subset of the listing client used by the provider.
type listingClient interface {
	FetchJobs(ctx context.Context, token string, q listing.Query) (listing.Page, error)
}

// Provider implements joblist.Source over the talent listing API
type Provider struct {
	client listingClient
}

// NewProvider builds a listing provider
func NewProvider(client listingClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("talent provider: client is required")
	}
	return &Provider{client: client}, nil
}

// FetchJobs maps the query onto the API and normalizes the response
func (p *Provider) FetchJobs(ctx context.Context, token string, q domain.JobQuery) (domain.JobPage, error) {
	if p == nil || p.client == nil {
		return domain.JobPage{}, fmt.Errorf("talent provider: client is nil")
	}

	page, err := p.client.FetchJobs(ctx, token, toListingQuery(q))
	if err != nil {
		var apiErr *listing.APIError
		if errors.As(err, &apiErr) {
			return domain.JobPage{}, &joblist.RejectedError{Message: apiErr.Message}
		}
		return domain.JobPage{}, err
	}

	jobs := make([]domain.JobSummary, 0, len(page.Jobs))
	for _, j := range page.Jobs {
		jobs = append(jobs, domain.JobSummary{
			ID:    j.ID,
			Title: j.Title,
			Location: domain.Location{
				City:    j.Location.City,
				Country: j.Location.Country,
			},
			Summary:         j.Summary,
			Status:          j.Status,
			NoOfSuggestions: j.NoOfSuggestions,
		})
	}

	return domain.JobPage{Jobs: jobs, TotalCount: page.TotalCount}, nil
}

func toListingQuery(q domain.JobQuery) listing.Query {
	return listing.Query{
		ActivePage:    q.Page,
		Limit:         q.PageSize,
		SortByDate:    string(q.SortOrder),
		ShowActive:    q.Filters.Active,
		ShowClosed:    q.Filters.Closed,
		ShowDraft:     q.Filters.Draft,
		ShowExpired:   q.Filters.Expired,
		ShowUnexpired: q.Filters.Unexpired,
	}
}

var _ joblist.Source = (*Provider)(nil)
