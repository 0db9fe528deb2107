// Package cli is the interactive terminal front end for the job list
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/honeycarbs/manage-jobs/internal/card"
	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/internal/domain/filter"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

const help = `Commands:
  list                 show the current page
  next | prev          move one page
  filter <keys...>     show only these statuses (showActive showClosed showDraft showExpired showUnexpired)
  filter reset         restore the default filters
  sort asc|desc        oldest or newest first
  close|edit|copy <id> press a card button
  reload               re-fetch the current page
  help                 this text
  quit | exit          leave`

// ErrQuit ends the loop
var ErrQuit = errors.New("quit")

// Controller is what the REPL drives
type Controller interface {
	LoadPage() *joblist.Ticket
	ChangePage(dir joblist.Direction) (*joblist.Ticket, bool)
	ChangeFilters(sel filter.Selection) (*joblist.Ticket, []string)
	ChangeSort(order domain.SortOrder) (*joblist.Ticket, error)
	Settle(ctx context.Context) (joblist.LoadResult, error)
	View() joblist.View
	Job(id string) (domain.JobSummary, bool)
}

type REPL struct {
	ctrl      Controller
	clipboard card.Clipboard
	logger    *logging.Logger
	out       io.Writer
	wait      time.Duration
}

func New(ctrl Controller, clipboard card.Clipboard, out io.Writer, logger *logging.Logger) *REPL {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &REPL{ctrl: ctrl, clipboard: clipboard, logger: logger, out: out, wait: 30 * time.Second}
}

// Run reads commands from in until EOF, quit, or ctx ends. Input is scanned
// in its own goroutine so cancellation does not wait for a newline.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	if err := r.show(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	inputChan := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(inputChan)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(r.out, "> ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return ctx.Err()
		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}

			err := r.Exec(ctx, line)
			switch {
			case errors.Is(err, ErrQuit):
				return nil
			case err != nil:
				fmt.Fprintf(r.out, "error: %v\n", err)
			}
		}
	}
}

// Exec runs one command line
func (r *REPL) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return ErrQuit
	case "help":
		fmt.Fprintln(r.out, help)
		return nil
	case "list":
		return r.show(ctx)
	case "reload":
		r.ctrl.LoadPage()
		return r.show(ctx)
	case "next", "prev":
		if _, moved := r.ctrl.ChangePage(joblist.Direction(cmd)); !moved {
			edge := "last"
			if cmd == "prev" {
				edge = "first"
			}
			fmt.Fprintf(r.out, "already on the %s page\n", edge)
			return nil
		}
		return r.show(ctx)
	case "filter":
		if len(args) == 0 {
			return fmt.Errorf("filter needs keys or %q", filter.ResetToken)
		}
		_, ignored := r.ctrl.ChangeFilters(filter.ParseSelection(args))
		if len(ignored) > 0 {
			fmt.Fprintf(r.out, "ignored unknown filters: %s\n", strings.Join(ignored, ", "))
		}
		return r.show(ctx)
	case "sort":
		if len(args) != 1 {
			return fmt.Errorf("sort needs asc or desc")
		}
		if _, err := r.ctrl.ChangeSort(domain.SortOrder(strings.ToLower(args[0]))); err != nil {
			return err
		}
		return r.show(ctx)
	}

	if action, ok := card.ParseAction(cmd); ok {
		if len(args) != 1 {
			return fmt.Errorf("%s needs a job id", cmd)
		}
		return r.press(action, args[0])
	}

	return fmt.Errorf("unknown command %q (try help)", cmd)
}

func (r *REPL) press(action card.Action, id string) error {
	job, ok := r.ctrl.Job(id)
	if !ok {
		return fmt.Errorf("job %s is not on this page", id)
	}

	c := card.New(job, r.clipboard, r.logger)
	ok = c.Handle(action)

	switch {
	case action != card.ActionCopy:
		fmt.Fprintf(r.out, "Selected job ID: %s\n", job.ID)
	case ok:
		fmt.Fprintln(r.out, "Job details copied to clipboard")
	default:
		fmt.Fprintf(r.out, "Could not copy text\n%s", card.CopyText(job))
	}
	return nil
}

func (r *REPL) show(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.wait)
	defer cancel()

	last, err := r.ctrl.Settle(ctx)
	if err != nil {
		return err
	}

	v := r.ctrl.View()
	fmt.Fprint(r.out, card.RenderList(card.ListView{
		Jobs:    v.Jobs,
		Page:    v.Page,
		Filters: v.Filters,
		Sort:    v.Sort,
	}))
	if last.Err != nil {
		fmt.Fprintf(r.out, "Error loading jobs: %v\n", last.Err)
	}
	return nil
}
