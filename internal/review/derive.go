// Package review implements the candidate review workspace: loading jobs and
// applications from the portal, deriving the visible list, tracking the
// detail-panel selection, and applying status and rescore mutations.
package review

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jonathan/candidate-review/internal/types"
)

// SortKey selects the ordering of the derived list.
type SortKey string

// Supported sort keys. An unknown key falls back to SortScore, the portal's
// default ordering.
const (
	SortScore SortKey = "score" // overall score descending, stable
	SortDate  SortKey = "date"  // submission time descending
	SortName  SortKey = "name"  // candidate name ascending, locale-aware
)

// StatusFilter restricts the derived list to one status, or FilterAll.
type StatusFilter string

// FilterAll matches every status.
const FilterAll StatusFilter = "all"

// Match reports whether an application with status s passes the filter.
func (f StatusFilter) Match(s types.Status) bool {
	return f == "" || f == FilterAll || string(f) == string(s)
}

// Derive computes the visible, ordered subset of apps for the given search
// text, status filter, and sort key. The input slice is never mutated or
// reordered; the result is a fresh slice. Filtering happens before sorting:
// status first, then search text.
func Derive(apps []types.Application, search string, filter StatusFilter, key SortKey) []types.Application {
	query := strings.ToLower(strings.TrimSpace(search))

	out := make([]types.Application, 0, len(apps))
	for _, app := range apps {
		if !filter.Match(app.Status) {
			continue
		}
		if query != "" && !matchesQuery(app, query) {
			continue
		}
		out = append(out, app)
	}

	switch key {
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		})
	case SortName:
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].CandidateName, out[j].CandidateName) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Scores.Overall > out[j].Scores.Overall
		})
	}
	return out
}

// matchesQuery reports whether the lowercased query is a substring of the
// candidate's name, email, or college, or of any skill.
func matchesQuery(app types.Application, query string) bool {
	if strings.Contains(strings.ToLower(app.CandidateName), query) ||
		strings.Contains(strings.ToLower(app.Email), query) ||
		strings.Contains(strings.ToLower(app.College), query) {
		return true
	}
	for _, skill := range app.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}
