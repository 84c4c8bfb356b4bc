// Package render provides formatted terminal output for the review CLI.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-review/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// barWidth is the width of a score bar at 100
	barWidth = 20
	// maxSkillsShown is the number of skills listed per candidate row
	maxSkillsShown = 4
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// JobList outputs the loaded job postings.
func (p *Printer) JobList(jobs []types.JobPosting) {
	if len(jobs) == 0 {
		p.printBox("Jobs", "No jobs posted yet.")
		return
	}

	var sb strings.Builder
	for _, job := range jobs {
		sb.WriteString(fmt.Sprintf("%-26s %-16s %3d applicants  [%s]\n",
			truncate(job.Title, 26), truncate(job.Department, 16), job.Applicants, job.Status))
		sb.WriteString(fmt.Sprintf("  id: %s\n", job.ID))
	}
	p.printBox(fmt.Sprintf("Jobs (%d)", len(jobs)), strings.TrimRight(sb.String(), "\n"))
}

// CandidateList outputs the derived, ordered candidate list for a job.
func (p *Printer) CandidateList(job *types.JobPosting, apps []types.Application, counts types.StatusCounts, totalLoaded int) {
	title := "Candidates"
	if job != nil {
		title = fmt.Sprintf("Candidates — %s", job.Title)
	}

	if len(apps) == 0 {
		p.printBox(title, "No candidates found. Try adjusting the search or filters.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d  (pending %d, shortlisted %d, interviewed %d, rejected %d)\n\n",
		len(apps), totalLoaded, counts.Pending, counts.Shortlisted, counts.Interviewed, counts.Rejected))

	for i, app := range apps {
		sb.WriteString(fmt.Sprintf("#%-3d %-24s score %3d  %-12s %s\n",
			i+1, truncate(app.CandidateName, 24), app.Scores.Overall, app.Status, app.ID))
		sb.WriteString(fmt.Sprintf("     %s\n", truncate(app.College, boxWidth-10)))
		if len(app.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("     %s\n", skillChips(job, app.Skills)))
		}
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// Detail outputs the detail panel for one application.
func (p *Printer) Detail(job *types.JobPosting, app types.Application) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s  <%s>  %s\n", app.CandidateName, app.Email, app.Phone))
	sb.WriteString(fmt.Sprintf("%s — %s, class of %s\n", app.College, app.Degree, app.GraduationYear))
	sb.WriteString(fmt.Sprintf("Experience: %d years    Applied: %s    Status: %s\n",
		app.ExperienceYears, formatDate(app), app.Status))
	sb.WriteString("\n")

	sb.WriteString("ATS Score Breakdown\n")
	sb.WriteString(scoreBar("Overall", app.Scores.Overall))
	sb.WriteString(scoreBar("Keyword Match", app.Scores.KeywordMatch))
	sb.WriteString(scoreBar("Skill Match", app.Scores.SkillMatch))
	sb.WriteString(scoreBar("Experience", app.Scores.Experience))
	sb.WriteString(scoreBar("Education", app.Scores.Education))
	sb.WriteString(scoreBar("Formatting", app.Scores.Formatting))

	if len(app.Skills) > 0 {
		sb.WriteString("\nSkills: " + skillChips(job, app.Skills) + "\n")
	}
	if len(app.MatchedSkills) > 0 {
		sb.WriteString("Matched: " + strings.Join(app.MatchedSkills, ", ") + "\n")
	}
	if len(app.MissingSkills) > 0 {
		sb.WriteString("Missing: " + strings.Join(app.MissingSkills, ", ") + "\n")
	}
	if app.Analysis != "" {
		sb.WriteString("\nAnalysis\n" + app.Analysis + "\n")
	}
	if app.ResumeURL != "" {
		sb.WriteString("\nResume: " + app.ResumeURL + "\n")
	}

	p.printBox(fmt.Sprintf("Candidate — %s", app.CandidateName), strings.TrimRight(sb.String(), "\n"))
}

// scoreBar renders one labelled score as a fixed-width bar.
func scoreBar(label string, score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("  %-14s %s %3d%%\n", label, bar, score)
}

// skillChips lists skills, marking the ones that match the job's
// requirements and eliding the overflow.
func skillChips(job *types.JobPosting, skills []string) string {
	parts := make([]string, 0, maxSkillsShown+1)
	for i, skill := range skills {
		if i == maxSkillsShown {
			parts = append(parts, fmt.Sprintf("+%d more", len(skills)-maxSkillsShown))
			break
		}
		if job != nil && job.RequiresSkill(skill) {
			parts = append(parts, skill+" ✓")
		} else {
			parts = append(parts, skill)
		}
	}
	return strings.Join(parts, ", ")
}

func formatDate(app types.Application) string {
	if app.SubmittedAt.IsZero() {
		return "unknown"
	}
	return app.SubmittedAt.Format("2006-01-02")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
