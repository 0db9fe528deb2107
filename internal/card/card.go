package card

import (
	"fmt"
	"strings"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

// Action is one of the card buttons
type Action string

const (
	ActionClose Action = "close"
	ActionEdit  Action = "edit"
	ActionCopy  Action = "copy"
)

// ParseAction reports whether s names a card action
func ParseAction(s string) (Action, bool) {
	switch a := Action(strings.ToLower(s)); a {
	case ActionClose, ActionEdit, ActionCopy:
		return a, true
	}
	return "", false
}

// Clipboard is where Copy writes the job details
type Clipboard interface {
	WriteAll(text string) error
}

// ExpiredLabel is shown on cards with status 0
const ExpiredLabel = "Expired"

// CopyText is the fixed block written to the clipboard
func CopyText(job domain.JobSummary) string {
	return fmt.Sprintf("Title: %s\nLocation: %s, %s\nSummary: %s\n",
		job.Title, job.Location.City, job.Location.Country, job.Summary)
}

// Card renders a single job summary and handles its actions
type Card struct {
	job       domain.JobSummary
	clipboard Clipboard
	logger    *logging.Logger
}

func New(job domain.JobSummary, clipboard Clipboard, logger *logging.Logger) *Card {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Card{job: job, clipboard: clipboard, logger: logger}
}

func (c *Card) Job() domain.JobSummary {
	return c.job
}

// Handle runs an action. Copy failures are logged and reported as false, never returned.
func (c *Card) Handle(a Action) bool {
	switch a {
	case ActionCopy:
		return c.Copy()
	case ActionClose, ActionEdit:
		c.Select()
		return true
	}
	return false
}

// Select records a close/edit selection
func (c *Card) Select() {
	c.logger.Info(fmt.Sprintf("Selected job ID: %s", c.job.ID), "job_id", c.job.ID)
}

// Copy writes the job details to the clipboard
func (c *Card) Copy() bool {
	if c.clipboard == nil {
		c.logger.Error("Could not copy text", "err", "clipboard unavailable", "job_id", c.job.ID)
		return false
	}
	if err := c.clipboard.WriteAll(CopyText(c.job)); err != nil {
		c.logger.Error("Could not copy text", "err", err, "job_id", c.job.ID)
		return false
	}
	c.logger.Info("Job details copied to clipboard", "job_id", c.job.ID)
	return true
}

// Render draws the card as plain text
func (c *Card) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  [%d suggestions]\n", c.job.Title, c.job.NoOfSuggestions)
	fmt.Fprintf(&b, "%s, %s\n", c.job.Location.City, c.job.Location.Country)
	if c.job.Summary != "" {
		fmt.Fprintf(&b, "%s\n", c.job.Summary)
	}
	if c.job.Expired() {
		fmt.Fprintf(&b, "[%s] ", ExpiredLabel)
	}
	b.WriteString("(Close) (Edit) (Copy)")
	fmt.Fprintf(&b, "  id=%s\n", c.job.ID)

	return b.String()
}
