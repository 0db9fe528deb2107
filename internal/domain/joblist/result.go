package joblist

import (
	"context"
	"fmt"

	"github.com/honeycarbs/manage-jobs/internal/domain"
)

// Status is the outcome of one load
type Status int

const (
	StatusPending Status = iota
	StatusLoaded
	StatusRejected
	StatusFailed
	StatusSuperseded
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusRejected:
		return "rejected"
	case StatusFailed:
		return "failed"
	case StatusSuperseded:
		return "superseded"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// RejectedError means the listing API answered success=false
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "job listing rejected: " + e.Message
}

// LoadResult describes how a load ended. Only StatusLoaded changes what is displayed.
type LoadResult struct {
	Seq        uint64
	Query      domain.JobQuery
	Status     Status
	JobCount   int
	TotalCount int
	TotalPages int
	// Clamped is set when the current page fell past TotalPages and a follow-up load was issued
	Clamped bool
	Err     error
}

// OK reports whether the load was applied
func (r LoadResult) OK() bool {
	return r.Status == StatusLoaded
}

// Ticket tracks one issued load
type Ticket struct {
	seq    uint64
	query  domain.JobQuery
	done   chan struct{}
	result LoadResult
}

func newTicket(seq uint64, q domain.JobQuery) *Ticket {
	return &Ticket{seq: seq, query: q, done: make(chan struct{})}
}

func (t *Ticket) Seq() uint64 {
	return t.seq
}

func (t *Ticket) Query() domain.JobQuery {
	return t.query
}

// Done is closed once the load has been reconciled
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the load completes or ctx ends
func (t *Ticket) Wait(ctx context.Context) (LoadResult, error) {
	select {
	case <-t.done:
		return t.result, nil
	case <-ctx.Done():
		return LoadResult{Seq: t.seq, Query: t.query, Status: StatusPending}, ctx.Err()
	}
}

func (t *Ticket) complete(r LoadResult) {
	t.result = r
	close(t.done)
}
