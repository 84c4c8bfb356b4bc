package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-review/internal/types"
)

func sampleApps() []types.Application {
	return []types.Application{
		{
			ID:            "a1",
			CandidateName: "Alice Smith",
			Email:         "alice@example.com",
			College:       "State University",
			Skills:        []string{"Go", "PostgreSQL"},
			Scores:        types.ScoreBreakdown{Overall: 88},
			SubmittedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			Status:        types.StatusPending,
		},
		{
			ID:            "a2",
			CandidateName: "bob jones",
			Email:         "bob@example.com",
			College:       "Tech Institute",
			Skills:        []string{"Python"},
			Scores:        types.ScoreBreakdown{Overall: 92},
			SubmittedAt:   time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
			Status:        types.StatusShortlisted,
		},
		{
			ID:            "a3",
			CandidateName: "Carol White",
			Email:         "carol@example.com",
			College:       "State University",
			Skills:        []string{"Go", "Kubernetes"},
			Scores:        types.ScoreBreakdown{Overall: 88},
			SubmittedAt:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			Status:        types.StatusRejected,
		},
	}
}

func ids(apps []types.Application) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.ID
	}
	return out
}

func TestDeriveStatusFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter StatusFilter
		expect []string
	}{
		{"all sentinel", FilterAll, []string{"a2", "a1", "a3"}},
		{"empty filter matches all", StatusFilter(""), []string{"a2", "a1", "a3"}},
		{"pending only", StatusFilter(types.StatusPending), []string{"a1"}},
		{"shortlisted only", StatusFilter(types.StatusShortlisted), []string{"a2"}},
		{"no matches", StatusFilter(types.StatusInterviewed), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(sampleApps(), "", tt.filter, SortScore)
			assert.Equal(t, tt.expect, ids(got))
		})
	}
}

func TestDeriveSearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		expect []string
	}{
		{"empty matches everything", "", []string{"a2", "a1", "a3"}},
		{"name lowercase", "alice", []string{"a1"}},
		{"name exact case", "Alice", []string{"a1"}},
		{"email", "bob@", []string{"a2"}},
		{"college shared", "state university", []string{"a1", "a3"}},
		{"skill", "kubernetes", []string{"a3"}},
		{"skill substring", "go", []string{"a1", "a3"}},
		{"no match", "zzz", []string{}},
		{"surrounding whitespace trimmed", "  alice  ", []string{"a1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(sampleApps(), tt.search, FilterAll, SortScore)
			assert.Equal(t, tt.expect, ids(got))
		})
	}
}

func TestDeriveSearchCaseInsensitiveEquivalence(t *testing.T) {
	lower := Derive(sampleApps(), "alice", FilterAll, SortScore)
	upper := Derive(sampleApps(), "ALICE", FilterAll, SortScore)
	assert.Equal(t, lower, upper)
}

func TestDeriveSortScoreStable(t *testing.T) {
	got := Derive(sampleApps(), "", FilterAll, SortScore)
	require.Equal(t, []string{"a2", "a1", "a3"}, ids(got),
		"descending by score; a1 and a3 tie at 88 and keep input order")
}

func TestDeriveSortDate(t *testing.T) {
	got := Derive(sampleApps(), "", FilterAll, SortDate)
	assert.Equal(t, []string{"a2", "a3", "a1"}, ids(got), "newest submission first")
}

func TestDeriveSortName(t *testing.T) {
	got := Derive(sampleApps(), "", FilterAll, SortName)
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(got),
		"ascending by name, case-insensitive collation")
}

func TestDeriveUnknownSortKeyFallsBackToScore(t *testing.T) {
	got := Derive(sampleApps(), "", FilterAll, SortKey("bogus"))
	assert.Equal(t, []string{"a2", "a1", "a3"}, ids(got))
}

func TestDeriveCombination(t *testing.T) {
	// Status filter applies before search, both before sort.
	apps := sampleApps()
	got := Derive(apps, "state", StatusFilter(types.StatusRejected), SortName)
	assert.Equal(t, []string{"a3"}, ids(got))
}

func TestDeriveResultIsSubset(t *testing.T) {
	apps := sampleApps()
	got := Derive(apps, "go", FilterAll, SortScore)
	byID := make(map[string]bool, len(apps))
	for _, a := range apps {
		byID[a.ID] = true
	}
	for _, a := range got {
		assert.True(t, byID[a.ID], "derived entry %s must come from the input", a.ID)
	}
	assert.LessOrEqual(t, len(got), len(apps))
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	apps := sampleApps()
	original := make([]types.Application, len(apps))
	copy(original, apps)

	_ = Derive(apps, "go", StatusFilter(types.StatusPending), SortName)
	_ = Derive(apps, "", FilterAll, SortDate)

	assert.Equal(t, original, apps, "input order and contents must be preserved")
}

func TestDeriveEmptyInput(t *testing.T) {
	got := Derive(nil, "alice", FilterAll, SortScore)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
