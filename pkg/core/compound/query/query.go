// Package query holds the keyword matcher and result ordering for compound
// searches. Everything here is pure: no store access, no locks, no state
// between calls, so it is safe from any number of concurrent sessions.
package query

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	model "github.com/wen89126-oss/lab-compound-db/pkg/model"
)

// FilterAll is the sentinel for an unconstrained location or lid-color filter.
const FilterAll = "All"

// casKeyword decides CAS mode: every rune a digit or a hyphen. CAS registry
// numbers are hierarchical, so these keywords get prefix semantics — "75" must
// match "75-07-0" but not "2675-74-9", which a contains-match would include.
var casKeyword = regexp.MustCompile(`^[0-9-]+$`)

// Filter is one search invocation's constraints.
type Filter struct {
	Keyword  string
	Location string // FilterAll or an exact model.Location value
	LidColor string // FilterAll or an exact model.LidColor key
}

// NewFilter trims the keyword and normalizes empty filters to FilterAll.
func NewFilter(keyword, location, lidColor string) Filter {
	if location == "" {
		location = FilterAll
	}
	if lidColor == "" {
		lidColor = FilterAll
	}
	return Filter{
		Keyword:  strings.TrimSpace(keyword),
		Location: location,
		LidColor: lidColor,
	}
}

// CASMode reports whether the keyword gets CAS-prefix semantics.
func (f Filter) CASMode() bool {
	return f.Keyword != "" && casKeyword.MatchString(f.Keyword)
}

// Match reports whether c satisfies every constrained dimension of f.
func (f Filter) Match(c *model.Compound) bool {
	if f.Location != FilterAll && string(c.Location) != f.Location {
		return false
	}
	if f.LidColor != FilterAll && string(c.LidColor) != f.LidColor {
		return false
	}
	return f.matchText(c)
}

func (f Filter) matchText(c *model.Compound) bool {
	if f.Keyword == "" {
		return true
	}

	kw := strings.ToLower(f.Keyword)
	if f.CASMode() {
		return strings.HasPrefix(strings.ToLower(c.CAS), kw)
	}

	return strings.Contains(strings.ToLower(c.EnglishName), kw) ||
		strings.Contains(strings.ToLower(c.Formula), kw) ||
		strings.Contains(strings.ToLower(c.CAS), kw)
}

// casTriple is a CAS number parsed into its three numeric segments.
type casTriple [3]int

// parseCAS decomposes a CAS value into three hyphen-separated integer
// segments. Anything else — empty, wrong segment count, non-numeric segment —
// reports false and the record sorts with the missing-CAS group.
func parseCAS(s string) (casTriple, bool) {
	var t casTriple

	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return t, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return t, false
		}
		t[i] = n
	}
	return t, true
}

func (a casTriple) less(b casTriple) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Order sorts list by parsed CAS ascending, segments compared as integers so
// "2-5-5" comes before "10-1-1". Records without a parsable CAS sort after all
// parsable ones. The sort is stable and the input arrives newest first, which
// keeps insertion order (most recent first) as the tie-break.
func Order(list []*model.Compound) {
	sort.SliceStable(list, func(i, j int) bool {
		ti, oki := parseCAS(list[i].CAS)
		tj, okj := parseCAS(list[j].CAS)
		switch {
		case oki && okj:
			return ti.less(tj)
		case oki:
			return true
		case okj:
			return false
		default:
			return false
		}
	})
}

// Apply selects the matching subset of list and orders it. list is read from
// live store state at call time; nothing is cached between invocations.
func Apply(list []*model.Compound, f Filter) []*model.Compound {
	out := make([]*model.Compound, 0, len(list))
	for _, c := range list {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	Order(out)
	return out
}
