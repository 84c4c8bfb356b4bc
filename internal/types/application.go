// Package types provides type definitions for the canonical data model shared
// across the candidate-review dashboard.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Status is the review status of an application.
type Status string

// Valid application statuses. Any status may be set from any other; the
// portal enforces no workflow ordering.
const (
	StatusPending     Status = "pending"
	StatusShortlisted Status = "shortlisted"
	StatusInterviewed Status = "interviewed"
	StatusRejected    Status = "rejected"
)

// Statuses returns all valid application statuses in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusShortlisted, StatusInterviewed, StatusRejected}
}

// Valid reports whether s is one of the known application statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusInterviewed, StatusRejected:
		return true
	}
	return false
}

// JobStatus is the lifecycle status of a job posting.
type JobStatus string

// Job posting statuses.
const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
)

// ScoreBreakdown holds the ATS score components for an application.
// All values are in [0,100]; absent wire values normalize to 0.
type ScoreBreakdown struct {
	Overall      int `json:"overall"`
	KeywordMatch int `json:"keyword_match"`
	SkillMatch   int `json:"skill_match"`
	Experience   int `json:"experience"`
	Education    int `json:"education"`
	Formatting   int `json:"formatting"`
}

// Application is the canonical shape of a candidate submission after
// normalization. Slice fields are never nil.
type Application struct {
	ID              string         `json:"id"`
	JobID           string         `json:"job_id"`
	CandidateName   string         `json:"candidate_name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	College         string         `json:"college"`
	Degree          string         `json:"degree"`
	GraduationYear  string         `json:"graduation_year"`
	ExperienceYears int            `json:"experience_years"`
	Skills          []string       `json:"skills"`
	ResumeURL       string         `json:"resume_url"`
	SubmittedAt     time.Time      `json:"submitted_at"`
	Scores          ScoreBreakdown `json:"scores"`
	MatchedKeywords []string       `json:"matched_keywords"`
	MissingKeywords []string       `json:"missing_keywords"`
	MatchedSkills   []string       `json:"matched_skills"`
	MissingSkills   []string       `json:"missing_skills"`
	Analysis        string         `json:"analysis"`
	Status          Status         `json:"status"`
}

// JobPosting is the canonical shape of a job requisition after normalization.
// Owned by the posting service; this module only reads it.
type JobPosting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Applicants   int       `json:"applicants"`
	Status       JobStatus `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// RequiresSkill reports whether skill matches one of the job's requirements,
// compared case-insensitively.
func (j *JobPosting) RequiresSkill(skill string) bool {
	for _, req := range j.Requirements {
		if strings.EqualFold(req, skill) {
			return true
		}
	}
	return false
}

// StatusCounts summarizes application statuses for a job, as reported by the
// portal alongside the application list.
type StatusCounts struct {
	Pending     int `json:"pending"`
	Shortlisted int `json:"shortlisted"`
	Interviewed int `json:"interviewed"`
	Rejected    int `json:"rejected"`
}

// Total returns the number of applications across all statuses.
func (c StatusCounts) Total() int {
	return c.Pending + c.Shortlisted + c.Interviewed + c.Rejected
}
