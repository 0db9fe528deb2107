package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

// Exporter writes job summaries to a spreadsheet tab
type Exporter interface {
	Export(ctx context.Context, spreadsheetID, tab string, clear bool, jobs []domain.JobSummary) error
}

// JobsExportParams defines the arguments for the jobs_export tool
type JobsExportParams struct {
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"Target spreadsheet; defaults to GOOGLE_SHEETS_ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, Sheet1 when empty"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"Remove existing rows below the header first"`
}

// JobsExportResult reports how many rows were written
type JobsExportResult struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	Tab           string `json:"tab"`
	Rows          int    `json:"rows"`
}

type exportTool struct {
	ctrl      Controller
	exporter  Exporter
	defaultID string
	logger    *logging.Logger
}

// RegisterExportTools installs jobs_export when an exporter is configured
func RegisterExportTools(server *sdkmcp.Server, ctrl Controller, exporter Exporter, defaultID string, logger *logging.Logger) error {
	if exporter == nil {
		logger.Info("sheets export disabled: no credentials configured")
		return nil
	}
	if ctrl == nil {
		return fmt.Errorf("job list controller not configured")
	}
	t := exportTool{ctrl: ctrl, exporter: exporter, defaultID: defaultID, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "jobs_export",
		Description: "Append the jobs on the current page to a Google Sheets tab",
	}, t.export)

	logger.Info("export tools registered")
	return nil
}

func (t exportTool) export(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobsExportParams{}
	}
	id := params.SpreadsheetID
	if id == "" {
		id = t.defaultID
	}
	if id == "" {
		return nil, nil, fmt.Errorf("spreadsheet_id is required")
	}

	jobs := t.ctrl.View().Jobs
	if err := t.exporter.Export(ctx, id, params.Tab, params.ClearTab, jobs); err != nil {
		t.logger.Error("jobs_export failed", "err", err, "spreadsheet_id", id)
		return nil, nil, fmt.Errorf("jobs_export: %w", err)
	}

	res := JobsExportResult{SpreadsheetID: id, Tab: params.Tab, Rows: len(jobs)}
	t.logger.Info("jobs_export completed", "spreadsheet_id", id, "tab", params.Tab, "rows", len(jobs))
	return textResult(fmt.Sprintf("Exported %d jobs to spreadsheet %s", len(jobs), id)), res, nil
}
