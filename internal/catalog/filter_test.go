package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(states []State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.Name
	}
	return out
}

func TestFilterActiveWithQueryA(t *testing.T) {
	c := mustDefault(t)

	got := FilterStates(c.States(), LocationFilter{Query: "a", Status: FilterActive})

	// DC qualifies through "Columbia", not through its abbreviation.
	assert.Equal(t, []string{"District of Columbia", "Maryland", "Virginia"}, names(got))
}

func TestFilterMatchesShortName(t *testing.T) {
	c := mustDefault(t)

	got := FilterStates(c.States(), LocationFilter{Query: "ny"})
	assert.Equal(t, []string{"New York"}, names(got))

	got = FilterStates(c.States(), LocationFilter{Query: "Fl", Status: FilterComingSoon})
	assert.Equal(t, []string{"Florida"}, names(got))
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	c := mustDefault(t)
	assert.Len(t, FilterStates(c.States(), LocationFilter{}), 5)
	assert.Len(t, FilterStates(c.States(), LocationFilter{Status: FilterAll}), 5)
}

func TestFilterNoMatches(t *testing.T) {
	c := mustDefault(t)
	got := FilterStates(c.States(), LocationFilter{Query: "zzz"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilterProperties(t *testing.T) {
	c := mustDefault(t)
	all := c.States()

	queries := []string{"", "a", "A", "ma", "VIR", "d", "dc", "of", "new", " ", "x", "ia", "o"}
	statuses := []StatusFilter{FilterAll, FilterActive, FilterComingSoon, ""}

	for _, q := range queries {
		for _, st := range statuses {
			f := LocationFilter{Query: q, Status: st}
			got := FilterStates(all, f)

			require.LessOrEqual(t, len(got), len(all), "query %q status %q", q, st)

			lq := strings.ToLower(q)
			for _, s := range got {
				nameHit := strings.Contains(strings.ToLower(s.Name), lq)
				shortHit := strings.Contains(strings.ToLower(s.ShortName), lq)
				assert.True(t, nameHit || shortHit, "%s should not match %q", s.Name, q)
				if st == FilterActive || st == FilterComingSoon {
					assert.Equal(t, StateStatus(st), s.Status)
				}
			}

			// Every excluded state must fail at least one predicate.
			included := map[string]bool{}
			for _, s := range got {
				included[s.ID] = true
			}
			for _, s := range all {
				if !included[s.ID] {
					assert.False(t, f.Matches(s), "%s was dropped but matches %+v", s.Name, f)
				}
			}
		}
	}
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in   string
		want StatusFilter
	}{
		{"active", FilterActive},
		{"coming-soon", FilterComingSoon},
		{"all", FilterAll},
		{"", FilterAll},
		{"bogus", FilterAll},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStatusFilter(tt.in), tt.in)
	}
}

func TestLocationFilterIsZero(t *testing.T) {
	assert.True(t, LocationFilter{}.IsZero())
	assert.True(t, LocationFilter{Status: FilterAll}.IsZero())
	assert.False(t, LocationFilter{Query: "a"}.IsZero())
	assert.False(t, LocationFilter{Status: FilterActive}.IsZero())
}
