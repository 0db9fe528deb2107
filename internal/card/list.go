package card

import (
	"fmt"
	"strings"

	"github.com/honeycarbs/manage-jobs/internal/domain"
	"github.com/honeycarbs/manage-jobs/internal/domain/filter"
)

// EmptyMessage is shown when no jobs match
const EmptyMessage = "No jobs found."

// ListView is what RenderList needs from the screen state
type ListView struct {
	Jobs    []domain.JobSummary
	Page    domain.PageState
	Filters domain.FilterSet
	Sort    domain.SortOrder
}

// RenderList draws the whole manage-jobs screen: filters, cards and pager
func RenderList(v ListView) string {
	var b strings.Builder

	b.WriteString("List of Jobs\n")
	fmt.Fprintf(&b, "Filter: %s\n", filterLabels(v.Filters))
	fmt.Fprintf(&b, "Sort by date: %s\n\n", sortLabel(v.Sort))

	if len(v.Jobs) == 0 {
		b.WriteString(EmptyMessage + "\n")
		return b.String()
	}

	for _, j := range v.Jobs {
		b.WriteString(New(j, nil, nil).Render())
		b.WriteString("\n")
	}

	prev, next := "< Previous", "Next >"
	if !v.Page.HasPrev() {
		prev = "  (first)"
	}
	if !v.Page.HasNext() {
		next = "(last)  "
	}
	fmt.Fprintf(&b, "%s   %s   %s\n", prev, v.Page.String(), next)

	return b.String()
}

func filterLabels(f domain.FilterSet) string {
	var labels []string
	for _, opt := range filter.FilterOptions {
		if key, ok := domain.ParseFilterKey(opt.Value); ok && f.Get(key) {
			labels = append(labels, opt.Text)
		}
	}
	if len(labels) == 0 {
		return "(none)"
	}
	return strings.Join(labels, ", ")
}

func sortLabel(s domain.SortOrder) string {
	for _, opt := range filter.SortOptions {
		if opt.Value == string(s) {
			return opt.Text
		}
	}
	return string(s)
}
