package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/manage-jobs/internal/card"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

// JobActionParams defines the arguments for the job_action tool
type JobActionParams struct {
	JobID  string `json:"job_id" jsonschema:"ID of a job on the current page"`
	Action string `json:"action" jsonschema:"close, edit or copy"`
}

// JobActionResult is the outcome of a card action
type JobActionResult struct {
	JobID    string `json:"job_id"`
	Action   string `json:"action"`
	OK       bool   `json:"ok"`
	CopyText string `json:"copy_text,omitempty" jsonschema:"Details block for copy, returned even when the clipboard write fails"`
}

type cardTool struct {
	ctrl      Controller
	clipboard card.Clipboard
	logger    *logging.Logger
}

// RegisterCardTools installs job_action. clipboard may be nil on headless hosts.
func RegisterCardTools(server *sdkmcp.Server, ctrl Controller, clipboard card.Clipboard, logger *logging.Logger) error {
	if ctrl == nil {
		return fmt.Errorf("job list controller not configured")
	}
	t := cardTool{ctrl: ctrl, clipboard: clipboard, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "job_action",
		Description: "Press Close, Edit or Copy on a job card from the current page",
	}, t.handle)

	logger.Info("card tools registered", "clipboard", clipboard != nil)
	return nil
}

func (t cardTool) handle(_ context.Context, _ *sdkmcp.CallToolRequest, params *JobActionParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.JobID == "" {
		return nil, nil, fmt.Errorf("job_id is required")
	}
	action, ok := card.ParseAction(params.Action)
	if !ok {
		return nil, nil, fmt.Errorf("unknown action %q", params.Action)
	}
	job, ok := t.ctrl.Job(params.JobID)
	if !ok {
		return nil, nil, fmt.Errorf("job %s is not on the current page", params.JobID)
	}

	c := card.New(job, t.clipboard, t.logger.Named("card"))
	res := JobActionResult{
		JobID:  job.ID,
		Action: string(action),
		OK:     c.Handle(action),
	}

	msg := fmt.Sprintf("Selected job ID: %s", job.ID)
	if action == card.ActionCopy {
		res.CopyText = card.CopyText(job)
		msg = "Job details copied to clipboard"
		if !res.OK {
			msg = "Could not copy text"
		}
		msg += "\n\n" + res.CopyText
	}

	return textResult(msg), res, nil
}
