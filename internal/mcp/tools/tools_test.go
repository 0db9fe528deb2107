package tools

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

type pagedSource struct {
	mu      sync.Mutex
	total   int
	err     error
	queries []domain.JobQuery
}

func (s *pagedSource) FetchJobs(_ context.Context, _ string, q domain.JobQuery) (domain.JobPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if s.err != nil {
		return domain.JobPage{}, s.err
	}
	return domain.JobPage{
		Jobs: []domain.JobSummary{{
			ID:       fmt.Sprintf("job-%d", q.Page),
			Title:    fmt.Sprintf("Engineer %d", q.Page),
			Location: domain.Location{City: "Berlin", Country: "Germany"},
			Summary:  "Builds things",
			Status:   1,
		}},
		TotalCount: s.total,
	}, nil
}

func (s *pagedSource) last() domain.JobQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[len(s.queries)-1]
}

type token string

func (t token) Token() (string, error) { return string(t), nil }

type memClipboard struct {
	text string
	err  error
}

func (m *memClipboard) WriteAll(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

type recordingExporter struct {
	id    string
	tab   string
	clear bool
	jobs  []domain.JobSummary
}

func (r *recordingExporter) Export(_ context.Context, id, tab string, clear bool, jobs []domain.JobSummary) error {
	r.id, r.tab, r.clear, r.jobs = id, tab, clear, jobs
	return nil
}

func mounted(t *testing.T, src *pagedSource) *joblist.Controller {
	t.Helper()
	ctrl, err := joblist.NewController(src, token("tok"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = ctrl.Mount(context.Background()).Wait(ctx)
	require.NoError(t, err)

	t.Cleanup(func() { _ = ctrl.Shutdown(context.Background()) })
	return ctrl
}

func TestJobsPageAdvancesAndReportsMoved(t *testing.T) {
	src := &pagedSource{total: 9}
	jt := jobsTool{ctrl: mounted(t, src), logger: logging.NewNop()}

	_, out, err := jt.page(context.Background(), nil, &JobsPageParams{Direction: "next"})
	require.NoError(t, err)

	res := out.(JobsViewResult)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.TotalPages)
	require.NotNil(t, res.Moved)
	assert.True(t, *res.Moved)
	assert.Equal(t, "loaded", res.Status)
	assert.Equal(t, "job-2", res.Jobs[0].ID)

	_, out, err = jt.page(context.Background(), nil, &JobsPageParams{Direction: "prev"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.(JobsViewResult).Page)

	_, out, err = jt.page(context.Background(), nil, &JobsPageParams{Direction: "prev"})
	require.NoError(t, err)
	assert.False(t, *out.(JobsViewResult).Moved)
}

func TestJobsPageRejectsUnknownDirection(t *testing.T) {
	jt := jobsTool{ctrl: mounted(t, &pagedSource{total: 1}), logger: logging.NewNop()}

	_, _, err := jt.page(context.Background(), nil, &JobsPageParams{Direction: "sideways"})
	assert.Error(t, err)
}

func TestJobsFilterReportsIgnoredKeys(t *testing.T) {
	src := &pagedSource{total: 2}
	jt := jobsTool{ctrl: mounted(t, src), logger: logging.NewNop()}

	_, out, err := jt.filter(context.Background(), nil, &JobsFilterParams{Filters: []string{"showDraft", "showArchived"}})
	require.NoError(t, err)

	res := out.(JobsViewResult)
	assert.Equal(t, []string{"showDraft"}, res.Filters)
	assert.Equal(t, []string{"showArchived"}, res.IgnoredFilters)
	assert.True(t, src.last().Filters.Draft)
	assert.False(t, src.last().Filters.Active)

	_, out, err = jt.filter(context.Background(), nil, &JobsFilterParams{Reset: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"showActive", "showDraft", "showExpired", "showUnexpired"}, out.(JobsViewResult).Filters)
}

func TestJobsSort(t *testing.T) {
	src := &pagedSource{total: 2}
	jt := jobsTool{ctrl: mounted(t, src), logger: logging.NewNop()}

	_, out, err := jt.sort(context.Background(), nil, &JobsSortParams{Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "asc", out.(JobsViewResult).Sort)
	assert.Equal(t, domain.SortAsc, src.last().SortOrder)

	_, _, err = jt.sort(context.Background(), nil, &JobsSortParams{Order: "sideways"})
	assert.Error(t, err)
}

func TestJobsListSurfacesFailure(t *testing.T) {
	src := &pagedSource{total: 2}
	jt := jobsTool{ctrl: mounted(t, src), logger: logging.NewNop()}

	src.mu.Lock()
	src.err = errors.New("connection refused")
	src.mu.Unlock()

	result, out, err := jt.list(context.Background(), nil, &JobsListParams{Refresh: true})
	require.NoError(t, err)

	res := out.(JobsViewResult)
	assert.Equal(t, "failed", res.Status)
	assert.Contains(t, res.Error, "connection refused")
	assert.Equal(t, "job-1", res.Jobs[0].ID)

	text := result.Content[0].(*sdkmcp.TextContent).Text
	assert.Contains(t, text, "Last load failed")
}

func TestJobActionCopy(t *testing.T) {
	ctrl := mounted(t, &pagedSource{total: 1})
	cb := &memClipboard{}
	ct := cardTool{ctrl: ctrl, clipboard: cb, logger: logging.NewNop()}

	_, out, err := ct.handle(context.Background(), nil, &JobActionParams{JobID: "job-1", Action: "Copy"})
	require.NoError(t, err)

	res := out.(JobActionResult)
	assert.True(t, res.OK)
	assert.Equal(t, "Title: Engineer 1\nLocation: Berlin, Germany\nSummary: Builds things\n", cb.text)
	assert.Equal(t, cb.text, res.CopyText)
}

func TestJobActionCopyWithoutClipboard(t *testing.T) {
	ct := cardTool{ctrl: mounted(t, &pagedSource{total: 1}), logger: logging.NewNop()}

	result, out, err := ct.handle(context.Background(), nil, &JobActionParams{JobID: "job-1", Action: "copy"})
	require.NoError(t, err)
	assert.False(t, out.(JobActionResult).OK)
	assert.Contains(t, result.Content[0].(*sdkmcp.TextContent).Text, "Could not copy text")
}

func TestJobActionErrors(t *testing.T) {
	ct := cardTool{ctrl: mounted(t, &pagedSource{total: 1}), logger: logging.NewNop()}

	_, _, err := ct.handle(context.Background(), nil, &JobActionParams{JobID: "job-1", Action: "delete"})
	assert.Error(t, err)

	_, _, err = ct.handle(context.Background(), nil, &JobActionParams{JobID: "missing", Action: "edit"})
	assert.Error(t, err)

	_, out, err := ct.handle(context.Background(), nil, &JobActionParams{JobID: "job-1", Action: "close"})
	require.NoError(t, err)
	assert.True(t, out.(JobActionResult).OK)
}

func TestJobsExport(t *testing.T) {
	exp := &recordingExporter{}
	et := exportTool{ctrl: mounted(t, &pagedSource{total: 1}), exporter: exp, defaultID: "sheet-1", logger: logging.NewNop()}

	_, out, err := et.export(context.Background(), nil, &JobsExportParams{Tab: "Jobs", ClearTab: true})
	require.NoError(t, err)

	assert.Equal(t, 1, out.(JobsExportResult).Rows)
	assert.Equal(t, "sheet-1", exp.id)
	assert.Equal(t, "Jobs", exp.tab)
	assert.True(t, exp.clear)
	require.Len(t, exp.jobs, 1)

	et.defaultID = ""
	_, _, err = et.export(context.Background(), nil, &JobsExportParams{})
	assert.Error(t, err)
}

func TestToolsOverMCPSession(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ctrl := mounted(t, &pagedSource{total: 5})
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	require.NoError(t, RegisterJobTools(server, ctrl, logging.NewNop()))
	require.NoError(t, RegisterCardTools(server, ctrl, nil, logging.NewNop()))
	require.NoError(t, RegisterExportTools(server, ctrl, nil, "", logging.NewNop()))

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	_, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	listed, err := session.ListTools(ctx, &sdkmcp.ListToolsParams{})
	require.NoError(t, err)
	var names []string
	for _, tool := range listed.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"jobs_list", "jobs_page", "jobs_filter", "jobs_sort", "job_action"}, names)

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "jobs_page",
		Arguments: map[string]any{"direction": "next"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, res.Content[0].(*sdkmcp.TextContent).Text, "Page 2 of 2")
}
