package catalog

import "strings"

// StatusFilter narrows the locations listing by state status.
type StatusFilter string

const (
	FilterAll        StatusFilter = "all"
	FilterActive     StatusFilter = StatusFilter(StatusActive)
	FilterComingSoon StatusFilter = StatusFilter(StatusComingSoon)
)

// ParseStatusFilter maps a query-string value to a StatusFilter. Anything
// unrecognized means no status restriction.
func ParseStatusFilter(v string) StatusFilter {
	switch StatusFilter(v) {
	case FilterActive, FilterComingSoon:
		return StatusFilter(v)
	default:
		return FilterAll
	}
}

// LocationFilter is the search box and status toggle on the locations page.
type LocationFilter struct {
	Query  string       `json:"query"`
	Status StatusFilter `json:"status"`
}

// Matches reports whether s satisfies both the query and the status predicate.
func (f LocationFilter) Matches(s State) bool {
	return f.matchesQuery(s) && f.matchesStatus(s)
}

func (f LocationFilter) matchesQuery(s State) bool {
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.ShortName), q)
}

func (f LocationFilter) matchesStatus(s State) bool {
	if f.Status == "" || f.Status == FilterAll {
		return true
	}
	return StateStatus(f.Status) == s.Status
}

// IsZero reports whether the filter restricts nothing.
func (f LocationFilter) IsZero() bool {
	return f.Query == "" && (f.Status == "" || f.Status == FilterAll)
}

// FilterStates returns the states matching f, preserving input order.
func FilterStates(states []State, f LocationFilter) []State {
	out := make([]State, 0, len(states))
	for _, s := range states {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}
