package wire

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/candidate-review/internal/types"
)

// Normalization is total and idempotent: it never fails, and a record
// carrying only canonical values round-trips unchanged. The alternate key
// wins when both keys carry a value, matching the portal's own clients.

// NormalizeJob converts a raw job record into the canonical JobPosting.
func NormalizeJob(rec JobRecord) types.JobPosting {
	return types.JobPosting{
		ID:           firstNonEmpty(rec.AltID, rec.ID),
		Title:        rec.Title,
		Department:   rec.Department,
		Description:  rec.Description,
		Requirements: stringSet(rec.Requirements),
		Location:     rec.Location,
		Type:         rec.Type,
		Applicants:   int(firstNonZero(rec.AltApplicantCount, rec.Applicants)),
		Status:       types.JobStatus(rec.Status),
		CreatedAt:    parseTimestamp(rec.AltCreatedAt, rec.CreatedAt),
	}
}

// NormalizeApplication converts a raw application record into the canonical
// Application.
func NormalizeApplication(rec ApplicationRecord) types.Application {
	status := types.Status(rec.Status)
	if !status.Valid() {
		status = types.StatusPending
	}
	return types.Application{
		ID:              firstNonEmpty(rec.AltID, rec.ID),
		JobID:           firstNonEmpty(rec.AltJobID, rec.JobID),
		CandidateName:   firstNonEmpty(rec.AltStudentName, rec.StudentName),
		Email:           rec.Email,
		Phone:           rec.Phone,
		College:         rec.College,
		Degree:          rec.Degree,
		GraduationYear:  firstNonEmpty(rec.AltGraduationYear, rec.GraduationYear),
		ExperienceYears: experienceYears(rec.AltYearsExperience, rec.Experience),
		Skills:          stringSet(rec.Skills),
		ResumeURL:       firstNonEmpty(rec.AltResumeURL, rec.ResumeURL),
		SubmittedAt:     parseTimestamp(rec.AltSubmittedAt, rec.SubmittedAt),
		Scores: types.ScoreBreakdown{
			Overall:      clampScore(firstNonZero(rec.AltOverallScore, rec.OverallScore)),
			KeywordMatch: clampScore(firstNonZero(rec.AltKeywordMatchScore, rec.KeywordMatchScore)),
			SkillMatch:   clampScore(firstNonZero(rec.AltSkillMatchScore, rec.SkillMatchScore)),
			Experience:   clampScore(firstNonZero(rec.AltExperienceScore, rec.ExperienceScore)),
			Education:    clampScore(firstNonZero(rec.AltEducationScore, rec.EducationScore)),
			Formatting:   clampScore(firstNonZero(rec.AltFormattingScore, rec.FormattingScore)),
		},
		MatchedKeywords: firstSet(rec.AltMatchedKeywords, rec.MatchedKeywords),
		MissingKeywords: firstSet(rec.AltMissingKeywords, rec.MissingKeywords),
		MatchedSkills:   firstSet(rec.AltMatchedSkills, rec.MatchedSkills),
		MissingSkills:   firstSet(rec.AltMissingSkills, rec.MissingSkills),
		Analysis:        firstNonEmpty(rec.AltAnalysis, rec.Analysis),
		Status:          status,
	}
}

// firstNonEmpty returns the first value that is not the empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstNonZero returns the first non-zero value. Zero is indistinguishable
// from absent on the wire, so a zero primary never shadows an alternate.
func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// firstSet returns the first non-empty slice, copied, or an empty slice.
func firstSet(candidates ...[]string) []string {
	for _, c := range candidates {
		if len(c) > 0 {
			return stringSet(c)
		}
	}
	return []string{}
}

// stringSet copies s, dropping blank entries. The result is never nil.
func stringSet(s []string) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// clampScore rounds v to the nearest integer and clamps it to [0,100].
func clampScore(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return int(math.Round(v))
}

// experienceYears resolves the experience field, which arrives either as a
// year count or as a free-form string like "2" or "3 years".
func experienceYears(years float64, raw string) int {
	if years > 0 {
		return int(math.Round(years))
	}
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// timestampLayouts are the formats the portal has been observed to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp returns the first candidate that parses; unparseable or
// absent input yields the zero time.
func parseTimestamp(candidates ...string) time.Time {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
