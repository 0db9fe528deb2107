package joblist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/internal/domain/filter"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

// ErrNotMounted is returned by Settle before Mount has run
var ErrNotMounted = errors.New("joblist: controller not mounted")

// Source loads one page of jobs from the listing API
type Source interface {
	FetchJobs(ctx context.Context, token string, q domain.JobQuery) (domain.JobPage, error)
}

// TokenSource yields the bearer token; it is consulted on every load
type TokenSource interface {
	Token() (string, error)
}

// Direction is a page navigation step
type Direction string

const (
	Next Direction = "next"
	Prev Direction = "prev"
)

// Option configures Controller
type Option func(*config)

type config struct {
	logger         *logging.Logger
	pageSize       int
	preservePage   bool
	requestTimeout time.Duration
	loader         LoaderData
	onResult       func(LoadResult)
}

// WithLogger sets the operator log
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithPageSize sets the fixed page size
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// WithPreservePage keeps the current page across filter/sort changes instead of returning to page 1
func WithPreservePage(v bool) Option {
	return func(c *config) {
		c.preservePage = v
	}
}

// WithRequestTimeout bounds each fetch
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config) {
		c.requestTimeout = d
	}
}

// WithLoader overrides the initial loader data
func WithLoader(l LoaderData) Option {
	return func(c *config) {
		c.loader = l
	}
}

// WithResultHook is called after every load is reconciled, outside the controller lock
func WithResultHook(fn func(LoadResult)) Option {
	return func(c *config) {
		c.onResult = fn
	}
}

// View is a consistent snapshot of what the screen displays
type View struct {
	Jobs     []domain.JobSummary
	Page     domain.PageState
	Filters  domain.FilterSet
	Sort     domain.SortOrder
	Loader   LoaderData
	Fetching bool
	Last     *LoadResult
}

// Controller owns pagination and the displayed jobs, and is the only
// component issuing listing requests.
type Controller struct {
	source   Source
	tokens   TokenSource
	filters  *filter.Controller
	logger   *logging.Logger
	preserve bool
	timeout  time.Duration
	onResult func(LoadResult)

	wg sync.WaitGroup

	// changeMu serializes filter/sort changes so each caller reads back its own load
	changeMu sync.Mutex

	mu       sync.Mutex
	baseCtx  context.Context
	stop     context.CancelFunc
	stopped  bool
	page     domain.PageState
	jobs     []domain.JobSummary
	loader   LoaderData
	seq      uint64
	inflight context.CancelFunc
	latest   *Ticket
	changed  *Ticket
	last     *LoadResult
}

// NewController builds a Controller; it stays idle until Mount
func NewController(source Source, tokens TokenSource, opts ...Option) (*Controller, error) {
	if source == nil {
		return nil, fmt.Errorf("joblist.Controller: source is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("joblist.Controller: token source is required")
	}

	cfg := &config{
		pageSize:       domain.DefaultPageSize,
		requestTimeout: 30 * time.Second,
		loader:         DefaultLoader(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	c := &Controller{
		source:   source,
		tokens:   tokens,
		logger:   cfg.logger,
		preserve: cfg.preservePage,
		timeout:  cfg.requestTimeout,
		onResult: cfg.onResult,
		page:     domain.NewPageState(cfg.pageSize),
		loader:   cfg.loader,
	}
	c.filters = filter.NewController(c.onFilterOrSortChanged, cfg.logger.Named("filter"))

	return c, nil
}

// Filters exposes the filter controller; its changes trigger reloads here
func (c *Controller) Filters() *filter.Controller {
	return c.filters
}

// Mount passes the loader gate and issues the first load
func (c *Controller) Mount(ctx context.Context) *Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.baseCtx != nil || c.stopped {
		return c.latest
	}
	c.baseCtx, c.stop = context.WithCancel(ctx)

	c.initLocked()
	return c.issueLocked()
}

// Reload re-runs the loader gate step for the page chrome
func (c *Controller) Reload() LoaderData {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.initLocked()
	return c.loader
}

func (c *Controller) initLocked() {
	c.loader = c.loader.WithLoading(false)
}

// LoadPage re-fetches the current page under the current filters and sort
func (c *Controller) LoadPage() *Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.issueLocked()
}

// ChangePage moves one page in dir and reloads. Moves past either end are
// inert and return false.
func (c *Controller) ChangePage(dir Direction) (*Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return nil, false
	}

	switch {
	case dir == Next && c.page.HasNext():
		c.page.CurrentPage++
	case dir == Prev && c.page.HasPrev():
		c.page.CurrentPage--
	default:
		return nil, false
	}

	return c.issueLocked(), true
}

// ChangeFilters forwards to the filter controller and returns the resulting
// load together with any ignored keys
func (c *Controller) ChangeFilters(sel filter.Selection) (*Ticket, []string) {
	c.changeMu.Lock()
	defer c.changeMu.Unlock()

	ignored := c.filters.ChangeFilters(sel)
	return c.lastChange(), ignored
}

// ChangeSort forwards to the filter controller
func (c *Controller) ChangeSort(order domain.SortOrder) (*Ticket, error) {
	c.changeMu.Lock()
	defer c.changeMu.Unlock()

	if err := c.filters.ChangeSort(order); err != nil {
		return nil, err
	}
	return c.lastChange(), nil
}

func (c *Controller) lastChange() *Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.changed
}

func (c *Controller) onFilterOrSortChanged() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		c.changed = nil
		return
	}
	if !c.preserve {
		c.page.CurrentPage = 1
	}
	c.changed = c.issueLocked()
}

// Latest returns the most recently issued load, or nil
func (c *Controller) Latest() *Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

// Settle waits until the most recent load has been reconciled, following
// any loads issued meanwhile
func (c *Controller) Settle(ctx context.Context) (LoadResult, error) {
	for {
		t := c.Latest()
		if t == nil {
			return LoadResult{}, ErrNotMounted
		}
		res, err := t.Wait(ctx)
		if err != nil {
			return res, err
		}
		if c.Latest() == t {
			return res, nil
		}
	}
}

// View returns a snapshot of the displayed state
func (c *Controller) View() View {
	filters, sort := c.filters.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Jobs:     slices.Clone(c.jobs),
		Page:     c.page,
		Filters:  filters,
		Sort:     sort,
		Loader:   c.loader,
		Fetching: c.inflight != nil,
	}
	if c.last != nil {
		last := *c.last
		v.Last = &last
	}
	return v
}

// Job returns a displayed job by id
func (c *Controller) Job(id string) (domain.JobSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, j := range c.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.JobSummary{}, false
}

// Shutdown cancels in-flight loads and waits for them to finish. Later
// triggers are inert.
func (c *Controller) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	c.stopped = true
	if c.stop != nil {
		c.stop()
	}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// issueLocked starts a load for the current state; c.mu must be held.
// The previous in-flight request, if any, is cancelled.
func (c *Controller) issueLocked() *Ticket {
	if c.baseCtx == nil || c.stopped {
		return nil
	}
	if c.inflight != nil {
		c.inflight()
	}

	c.seq++
	filters, sort := c.filters.Snapshot()
	q := domain.JobQuery{
		Page:      c.page.CurrentPage,
		PageSize:  c.page.PageSize,
		SortOrder: sort,
		Filters:   filters,
	}

	ctx, cancel := context.WithTimeout(c.baseCtx, c.timeout)
	c.inflight = cancel

	t := newTicket(c.seq, q)
	c.latest = t

	c.wg.Add(1)
	go c.fetch(ctx, cancel, t)

	return t
}

func (c *Controller) fetch(ctx context.Context, cancel context.CancelFunc, t *Ticket) {
	defer c.wg.Done()
	defer cancel()

	var (
		page domain.JobPage
		err  error
	)
	token, err := c.tokens.Token()
	if err == nil {
		page, err = c.source.FetchJobs(ctx, token, t.query)
	}

	res := c.reconcile(t, page, err)
	t.complete(res)

	if c.onResult != nil {
		c.onResult(res)
	}
}

func (c *Controller) reconcile(t *Ticket, page domain.JobPage, err error) LoadResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := LoadResult{Seq: t.seq, Query: t.query}

	if t.seq != c.seq {
		res.Status = StatusSuperseded
		res.Err = err
		c.logger.Debug("discarding superseded job listing response", "seq", t.seq, "latest", c.seq)
		return res
	}
	c.inflight = nil

	var rejected *RejectedError
	switch {
	case errors.As(err, &rejected):
		res.Status = StatusRejected
		res.Err = err
		c.logger.Error("Error loading jobs", "message", rejected.Message, "seq", t.seq)
	case err != nil:
		res.Status = StatusFailed
		res.Err = err
		c.logger.Error("job listing request failed", "err", err, "seq", t.seq)
	default:
		res.Status = StatusLoaded
		res.JobCount = len(page.Jobs)
		res.TotalCount = page.TotalCount
		res.TotalPages = domain.TotalPagesFor(page.TotalCount, c.page.PageSize)

		c.jobs = slices.Clone(page.Jobs)
		c.page.TotalPages = res.TotalPages
		if c.page.CurrentPage > c.page.TotalPages {
			c.logger.Info("current page past last page, reloading last page",
				"page", c.page.CurrentPage, "total_pages", c.page.TotalPages)
			c.page.CurrentPage = c.page.TotalPages
			res.Clamped = true
		}
	}

	c.last = &res
	if res.Clamped {
		c.issueLocked()
	}
	return res
}
