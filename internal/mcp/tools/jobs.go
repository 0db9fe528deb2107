package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/internal/domain/filter"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

// Controller is the subset of joblist.Controller the tools drive
type Controller interface {
	LoadPage() *joblist.Ticket
	ChangePage(dir joblist.Direction) (*joblist.Ticket, bool)
	ChangeFilters(sel filter.Selection) (*joblist.Ticket, []string)
	ChangeSort(order domain.SortOrder) (*joblist.Ticket, error)
	Settle(ctx context.Context) (joblist.LoadResult, error)
	View() joblist.View
	Job(id string) (domain.JobSummary, bool)
}

// JobsListParams defines the arguments for the jobs_list tool
type JobsListParams struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"Re-fetch the current page before returning"`
}

// JobsPageParams defines the arguments for the jobs_page tool
type JobsPageParams struct {
	Direction string `json:"direction" jsonschema:"next or prev"`
}

// JobsFilterParams defines the arguments for the jobs_filter tool
type JobsFilterParams struct {
	Filters []string `json:"filters,omitempty" jsonschema:"Filter keys to activate: showActive, showClosed, showDraft, showExpired, showUnexpired"`
	Reset   bool     `json:"reset,omitempty" jsonschema:"Restore the default filters instead"`
}

// JobsSortParams defines the arguments for the jobs_sort tool
type JobsSortParams struct {
	Order string `json:"order" jsonschema:"asc (oldest first) or desc (newest first)"`
}

type jobsTool struct {
	ctrl   Controller
	logger *logging.Logger
}

// RegisterJobTools installs the listing tools
func RegisterJobTools(server *sdkmcp.Server, ctrl Controller, logger *logging.Logger) error {
	if ctrl == nil {
		return fmt.Errorf("job list controller not configured")
	}
	t := jobsTool{ctrl: ctrl, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "jobs_list",
		Description: "Show the current page of the employer's job listings",
	}, t.list)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "jobs_page",
		Description: "Move to the next or previous page of job listings",
	}, t.page)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "jobs_filter",
		Description: "Replace the active status filters, or reset them to the defaults",
	}, t.filter)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "jobs_sort",
		Description: "Sort job listings by posting date",
	}, t.sort)

	logger.Info("job list tools registered", "tools", []string{"jobs_list", "jobs_page", "jobs_filter", "jobs_sort"})
	return nil
}

func (t jobsTool) list(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobsListParams) (*sdkmcp.CallToolResult, any, error) {
	if params != nil && params.Refresh {
		t.ctrl.LoadPage()
	}
	return t.respond(ctx, "jobs_list", nil, nil)
}

func (t jobsTool) page(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobsPageParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobsPageParams{}
	}
	dir := joblist.Direction(params.Direction)
	if dir != joblist.Next && dir != joblist.Prev {
		return nil, nil, fmt.Errorf("direction must be %q or %q", joblist.Next, joblist.Prev)
	}

	_, moved := t.ctrl.ChangePage(dir)
	t.logger.Debug("jobs_page", "direction", dir, "moved", moved)
	return t.respond(ctx, "jobs_page", &moved, nil)
}

func (t jobsTool) filter(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobsFilterParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobsFilterParams{}
	}
	sel := filter.Select(params.Filters...)
	if params.Reset {
		sel = filter.Reset()
	}

	_, ignored := t.ctrl.ChangeFilters(sel)
	t.logger.Debug("jobs_filter", "reset", params.Reset, "filters", params.Filters, "ignored", ignored)
	return t.respond(ctx, "jobs_filter", nil, ignored)
}

func (t jobsTool) sort(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobsSortParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobsSortParams{}
	}
	if _, err := t.ctrl.ChangeSort(domain.SortOrder(params.Order)); err != nil {
		return nil, nil, err
	}
	return t.respond(ctx, "jobs_sort", nil, nil)
}

func (t jobsTool) respond(ctx context.Context, tool string, moved *bool, ignored []string) (*sdkmcp.CallToolResult, any, error) {
	last, err := settle(ctx, t.ctrl)
	if err != nil {
		t.logger.Error(tool+": waiting for job listing failed", "err", err)
		return nil, nil, fmt.Errorf("%s: %w", tool, err)
	}

	v := t.ctrl.View()
	res := buildView(v, last)
	res.Moved = moved
	res.IgnoredFilters = ignored

	t.logger.Info(tool+" completed",
		"status", res.Status,
		"page", res.Page,
		"total_pages", res.TotalPages,
		"jobs", len(res.Jobs),
	)

	return textResult(renderView(v, res)), res, nil
}
