package listing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultQuery() Query {
	return Query{
		ActivePage:    2,
		Limit:         4,
		SortByDate:    "desc",
		ShowActive:    true,
		ShowDraft:     true,
		ShowExpired:   true,
		ShowUnexpired: true,
	}
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	require.NoError(t, err)
	return c
}

func TestFetchJobsSendsQueryAndHeaders(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"totalCount":10,"myJobs":[
			{"id":"j1","title":"Go Engineer","location":{"city":"Auckland","country":"NZ"},"summary":"Build things","status":1,"noOfSuggestions":3}
		]}`))
	})

	page, err := c.FetchJobs(context.Background(), "tok-123", defaultQuery())
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/listing/listing/getSortedEmployerJobs", got.URL.Path)
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))

	q := got.URL.Query()
	assert.Equal(t, "2", q.Get("activePage"))
	assert.Equal(t, "4", q.Get("limit"))
	assert.Equal(t, "desc", q.Get("sortbyDate"))
	assert.Equal(t, "true", q.Get("showActive"))
	assert.Equal(t, "false", q.Get("showClosed"))
	assert.Equal(t, "true", q.Get("showDraft"))
	assert.Equal(t, "true", q.Get("showExpired"))
	assert.Equal(t, "true", q.Get("showUnexpired"))

	assert.Equal(t, 10, page.TotalCount)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, "Go Engineer", page.Jobs[0].Title)
	assert.Equal(t, "Auckland", page.Jobs[0].Location.City)
	assert.Equal(t, 3, page.Jobs[0].NoOfSuggestions)
	assert.Equal(t, got.Header.Get("X-Request-ID"), page.RequestID)
}

func TestFetchJobsLogicalFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"unauthorized"}`))
	})

	_, err := c.FetchJobs(context.Background(), "tok", defaultQuery())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "unauthorized", apiErr.Message)
}

func TestFetchJobsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.FetchJobs(context.Background(), "tok", defaultQuery())
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "boom", statusErr.Body)
}

func TestFetchJobsNonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>login</html>`))
	})

	_, err := c.FetchJobs(context.Background(), "tok", defaultQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestFetchJobsRejectsBadInput(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := c.FetchJobs(context.Background(), "", defaultQuery())
	assert.ErrorIs(t, err, ErrMissingToken)

	q := defaultQuery()
	q.SortByDate = "newest"
	_, err = c.FetchJobs(context.Background(), "tok", q)
	assert.ErrorContains(t, err, "invalid query")

	q = defaultQuery()
	q.ActivePage = 0
	_, err = c.FetchJobs(context.Background(), "tok", q)
	assert.ErrorContains(t, err, "invalid query")

	assert.Zero(t, calls)
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestFetchJobsHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchJobs(ctx, "tok", defaultQuery())
	assert.ErrorIs(t, err, context.Canceled)
}
