package tools

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/manage-jobs/internal/card"
	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
)

// settleTimeout bounds how long a tool waits for the listing API
const settleTimeout = 20 * time.Second

// JobsViewResult is the structured screen state returned by the listing tools
type JobsViewResult struct {
	Jobs           []domain.JobSummary `json:"jobs" jsonschema:"Jobs on the current page"`
	Page           int                 `json:"page" jsonschema:"Current page, 1-indexed"`
	TotalPages     int                 `json:"total_pages" jsonschema:"Total pages for the active filters"`
	PageSize       int                 `json:"page_size"`
	Filters        []string            `json:"filters" jsonschema:"Active filter keys"`
	Sort           string              `json:"sort" jsonschema:"asc or desc by posting date"`
	Status         string              `json:"status" jsonschema:"Outcome of the last load: loaded, rejected, failed"`
	Error          string              `json:"error,omitempty" jsonschema:"Failure reason when the last load did not apply"`
	Moved          *bool               `json:"moved,omitempty" jsonschema:"For page navigation: whether the page changed"`
	IgnoredFilters []string            `json:"ignored_filters,omitempty" jsonschema:"Unknown filter keys that were not applied"`
}

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

func settle(ctx context.Context, ctrl Controller) (joblist.LoadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, settleTimeout)
	defer cancel()
	return ctrl.Settle(ctx)
}

func buildView(v joblist.View, last joblist.LoadResult) JobsViewResult {
	filters := make([]string, 0, len(domain.FilterKeys))
	for _, k := range v.Filters.Enabled() {
		filters = append(filters, string(k))
	}

	res := JobsViewResult{
		Jobs:       v.Jobs,
		Page:       v.Page.CurrentPage,
		TotalPages: v.Page.TotalPages,
		PageSize:   v.Page.PageSize,
		Filters:    filters,
		Sort:       string(v.Sort),
		Status:     last.Status.String(),
	}
	if res.Jobs == nil {
		res.Jobs = []domain.JobSummary{}
	}
	if last.Err != nil {
		res.Error = last.Err.Error()
	}
	return res
}

func renderView(v joblist.View, res JobsViewResult) string {
	text := card.RenderList(card.ListView{
		Jobs:    v.Jobs,
		Page:    v.Page,
		Filters: v.Filters,
		Sort:    v.Sort,
	})
	if res.Error != "" {
		text += "\nLast load " + res.Status + ": " + res.Error + "\n"
	}
	return text
}
