package domain

import (
	"fmt"
)

// FilterKey names one of the job status filters
type FilterKey string

const (
	ShowActive    FilterKey = "showActive"
	ShowClosed    FilterKey = "showClosed"
	ShowDraft     FilterKey = "showDraft"
	ShowExpired   FilterKey = "showExpired"
	ShowUnexpired FilterKey = "showUnexpired"
)

// FilterKeys lists every filter in display order
var FilterKeys = []FilterKey{ShowActive, ShowClosed, ShowDraft, ShowExpired, ShowUnexpired}

// ParseFilterKey reports whether s names a known filter
func ParseFilterKey(s string) (FilterKey, bool) {
	for _, k := range FilterKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// FilterSet holds the five status filters; all keys are always present
type FilterSet struct {
	Active    bool
	Closed    bool
	Draft     bool
	Expired   bool
	Unexpired bool
}

// DefaultFilterSet is the set applied on first load and on reset
func DefaultFilterSet() FilterSet {
	return FilterSet{
		Active:    true,
		Closed:    false,
		Draft:     true,
		Expired:   true,
		Unexpired: true,
	}
}

// Get returns the value of key
func (f FilterSet) Get(key FilterKey) bool {
	switch key {
	case ShowActive:
		return f.Active
	case ShowClosed:
		return f.Closed
	case ShowDraft:
		return f.Draft
	case ShowExpired:
		return f.Expired
	case ShowUnexpired:
		return f.Unexpired
	}
	return false
}

// With returns a copy of f with key set to v
func (f FilterSet) With(key FilterKey, v bool) FilterSet {
	switch key {
	case ShowActive:
		f.Active = v
	case ShowClosed:
		f.Closed = v
	case ShowDraft:
		f.Draft = v
	case ShowExpired:
		f.Expired = v
	case ShowUnexpired:
		f.Unexpired = v
	}
	return f
}

// Enabled returns the keys set to true, in display order
func (f FilterSet) Enabled() []FilterKey {
	out := make([]FilterKey, 0, len(FilterKeys))
	for _, k := range FilterKeys {
		if f.Get(k) {
			out = append(out, k)
		}
	}
	return out
}

// SortOrder orders jobs by posting date
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DefaultSortOrder is newest first
const DefaultSortOrder = SortDesc

// Valid reports whether s is one of the two sort tokens
func (s SortOrder) Valid() bool {
	return s == SortAsc || s == SortDesc
}

// DefaultPageSize matches the four-column card grid
const DefaultPageSize = 4

// PageState tracks pagination for the displayed list
type PageState struct {
	CurrentPage int
	PageSize    int
	TotalPages  int
}

// NewPageState starts on page 1 of 1
func NewPageState(pageSize int) PageState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return PageState{CurrentPage: 1, PageSize: pageSize, TotalPages: 1}
}

// TotalPagesFor is ceil(totalCount/pageSize), never below 1
func TotalPagesFor(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 1
	}
	return (totalCount + pageSize - 1) / pageSize
}

// HasNext reports whether a next page exists
func (p PageState) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// HasPrev reports whether a previous page exists
func (p PageState) HasPrev() bool {
	return p.CurrentPage > 1
}

func (p PageState) String() string {
	return fmt.Sprintf("Page %d of %d", p.CurrentPage, p.TotalPages)
}

// Location is where a job is based
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// JobStatusExpired marks an expired posting
const JobStatusExpired = 0

// JobSummary is the card-level view of a job posting
type JobSummary struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Location        Location `json:"location"`
	Summary         string   `json:"summary"`
	Status          int      `json:"status"`
	NoOfSuggestions int      `json:"noOfSuggestions"`
}

// Expired reports whether the posting has expired
func (j JobSummary) Expired() bool {
	return j.Status == JobStatusExpired
}

// JobQuery is the request sent to the listing API
type JobQuery struct {
	Page      int
	PageSize  int
	SortOrder SortOrder
	Filters   FilterSet
}

// JobPage is one page of the listing API response
type JobPage struct {
	Jobs       []JobSummary
	TotalCount int
}
