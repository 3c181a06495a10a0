// Package filter projects the loaded report set into the visible,
// ordered subset.
package filter

import (
	"sort"

	"github.com/mgdov/eco-place/internal/model"
)

// Filter is the in-memory filter selection. An empty slice on a
// dimension means "no constraint", not "match nothing". Category
// filtering is not here: it is applied upstream at fetch time.
type Filter struct {
	Types   []model.PollutionType
	Sources []model.ReportSource
}

// Empty reports whether no constraint is active.
func (f Filter) Empty() bool {
	return len(f.Types) == 0 && len(f.Sources) == 0
}

func (f Filter) matches(r model.PollutionReport) bool {
	if len(f.Types) > 0 && !containsType(f.Types, r.PollutionType) {
		return false
	}
	if len(f.Sources) > 0 && !containsSource(f.Sources, r.Source) {
		return false
	}
	return true
}

// Apply returns the matching reports ordered most recent first, ties
// kept in input order. The input slice is never mutated; the result is
// a pure function of (reports, filter).
func Apply(reports []model.PollutionReport, f Filter) []model.PollutionReport {
	var out []model.PollutionReport
	if f.Empty() {
		out = make([]model.PollutionReport, len(reports))
		copy(out, reports)
	} else {
		out = make([]model.PollutionReport, 0, len(reports))
		for _, r := range reports {
			if f.matches(r) {
				out = append(out, r)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReportedAt.After(out[j].ReportedAt)
	})
	return out
}

func containsType(set []model.PollutionType, v model.PollutionType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsSource(set []model.ReportSource, v model.ReportSource) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
