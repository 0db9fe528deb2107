package filter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

// ErrInvalidSortOrder is returned for anything other than asc/desc
var ErrInvalidSortOrder = errors.New("filter: sort order must be asc or desc")

// ResetToken is the literal selection value that restores the defaults
const ResetToken = "reset"

// Selection is the outcome of the multi-select filter control
type Selection struct {
	Reset bool
	Keys  []string
}

// Reset selects the default filters
func Reset() Selection {
	return Selection{Reset: true}
}

// Select activates exactly the given keys
func Select(keys ...string) Selection {
	return Selection{Keys: keys}
}

// ParseSelection maps raw control values; a lone "reset" is the reset sentinel
func ParseSelection(values []string) Selection {
	if len(values) == 1 && values[0] == ResetToken {
		return Reset()
	}
	return Select(values...)
}

// Option is a labelled choice shown by the filter/sort dropdowns
type Option struct {
	Key   string
	Text  string
	Value string
}

// FilterOptions are the multi-select choices
var FilterOptions = []Option{
	{Key: string(domain.ShowActive), Text: "Active Jobs", Value: string(domain.ShowActive)},
	{Key: string(domain.ShowClosed), Text: "Closed Jobs", Value: string(domain.ShowClosed)},
	{Key: string(domain.ShowDraft), Text: "Draft Jobs", Value: string(domain.ShowDraft)},
	{Key: string(domain.ShowExpired), Text: "Expired Jobs", Value: string(domain.ShowExpired)},
	{Key: string(domain.ShowUnexpired), Text: "Unexpired Jobs", Value: string(domain.ShowUnexpired)},
}

// SortOptions are the date sort choices
var SortOptions = []Option{
	{Key: "newest", Text: "Newest first", Value: string(domain.SortDesc)},
	{Key: "oldest", Text: "Oldest first", Value: string(domain.SortAsc)},
}

// Controller owns the active filters and sort order. It never talks to the
// network; every accepted change invokes onChange once.
type Controller struct {
	mu       sync.Mutex
	filters  domain.FilterSet
	sort     domain.SortOrder
	onChange func()
	logger   *logging.Logger
}

// NewController starts from the default filters, newest first
func NewController(onChange func(), logger *logging.Logger) *Controller {
	if onChange == nil {
		onChange = func() {}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Controller{
		filters:  domain.DefaultFilterSet(),
		sort:     domain.DefaultSortOrder,
		onChange: onChange,
		logger:   logger,
	}
}

// ChangeFilters replaces the filter set and signals a reload. Unknown keys are
// not applied and are returned.
func (c *Controller) ChangeFilters(sel Selection) (ignored []string) {
	next := domain.DefaultFilterSet()
	if !sel.Reset {
		next = domain.FilterSet{}
		for _, raw := range sel.Keys {
			key, ok := domain.ParseFilterKey(raw)
			if !ok {
				ignored = append(ignored, raw)
				continue
			}
			next = next.With(key, true)
		}
	}

	if len(ignored) > 0 {
		c.logger.Warn("ignoring unknown filter keys", "keys", ignored)
	}

	c.mu.Lock()
	c.filters = next
	c.mu.Unlock()

	c.onChange()
	return ignored
}

// ChangeSort replaces the sort order and signals a reload
func (c *Controller) ChangeSort(order domain.SortOrder) error {
	if !order.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	c.mu.Lock()
	c.sort = order
	c.mu.Unlock()

	c.onChange()
	return nil
}

// Snapshot returns the current filters and sort order
func (c *Controller) Snapshot() (domain.FilterSet, domain.SortOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters, c.sort
}
