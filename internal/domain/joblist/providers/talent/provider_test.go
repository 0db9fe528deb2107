package talent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/pkg/listing"
)

type stubClient struct {
	gotToken string
	gotQuery listing.Query
	page     listing.Page
	err      error
}

func (s *stubClient) FetchJobs(_ context.Context, token string, q listing.Query) (listing.Page, error) {
	s.gotToken = token
	s.gotQuery = q
	return s.page, s.err
}

func TestProviderMapsQueryAndJobs(t *testing.T) {
	client := &stubClient{page: listing.Page{
		TotalCount: 9,
		Jobs: []listing.Job{{
			ID:              "abc",
			Title:           "Recruiter",
			Location:        listing.Location{City: "Wellington", Country: "NZ"},
			Summary:         "Hire people",
			Status:          0,
			NoOfSuggestions: 2,
		}},
	}}
	p, err := NewProvider(client)
	require.NoError(t, err)

	page, err := p.FetchJobs(context.Background(), "tok", domain.JobQuery{
		Page:      3,
		PageSize:  4,
		SortOrder: domain.SortAsc,
		Filters:   domain.FilterSet{Closed: true, Expired: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "tok", client.gotToken)
	assert.Equal(t, listing.Query{
		ActivePage:  3,
		Limit:       4,
		SortByDate:  "asc",
		ShowClosed:  true,
		ShowExpired: true,
	}, client.gotQuery)

	assert.Equal(t, 9, page.TotalCount)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, domain.JobSummary{
		ID:              "abc",
		Title:           "Recruiter",
		Location:        domain.Location{City: "Wellington", Country: "NZ"},
		Summary:         "Hire people",
		Status:          0,
		NoOfSuggestions: 2,
	}, page.Jobs[0])
}

func TestProviderTranslatesAPIError(t *testing.T) {
	p, err := NewProvider(&stubClient{err: &listing.APIError{Message: "unauthorized"}})
	require.NoError(t, err)

	_, err = p.FetchJobs(context.Background(), "tok", domain.JobQuery{Page: 1, PageSize: 4, SortOrder: domain.SortDesc})
	var rejected *joblist.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "unauthorized", rejected.Message)
}

func TestProviderPassesTransportErrors(t *testing.T) {
	boom := errors.New("connection refused")
	p, err := NewProvider(&stubClient{err: boom})
	require.NoError(t, err)

	_, err = p.FetchJobs(context.Background(), "tok", domain.JobQuery{Page: 1, PageSize: 4, SortOrder: domain.SortDesc})
	assert.ErrorIs(t, err, boom)
}
