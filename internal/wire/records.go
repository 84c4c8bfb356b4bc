// Package wire defines the portal's raw payload shapes and normalizes them
// into the canonical model. Every logical field may arrive under either a
// primary (camelCase) or an alternate (snake_case / Mongo "_id") key; nothing
// outside this package branches on key presence.
package wire

// JobRecord mirrors a job posting as the portal sends it.
type JobRecord struct {
	ID    string `json:"id"`
	AltID string `json:"_id"`

	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Status       string   `json:"status"`

	Applicants        float64 `json:"applicants"`
	AltApplicantCount float64 `json:"applicant_count"`

	CreatedAt    string `json:"createdAt"`
	AltCreatedAt string `json:"created_at"`
}

// ApplicationRecord mirrors a candidate application as the portal sends it.
type ApplicationRecord struct {
	ID    string `json:"id"`
	AltID string `json:"_id"`

	JobID    string `json:"jobId"`
	AltJobID string `json:"job_id"`

	StudentName    string `json:"studentName"`
	AltStudentName string `json:"student_name"`

	Email   string `json:"email"`
	Phone   string `json:"phone"`
	College string `json:"college"`
	Degree  string `json:"degree"`

	GraduationYear    string `json:"graduationYear"`
	AltGraduationYear string `json:"graduation_year"`

	// Experience arrives either as a free-form string ("2") or as a number
	// of years under the alternate key.
	Experience         string  `json:"experience"`
	AltYearsExperience float64 `json:"years_of_experience"`

	Skills []string `json:"skills"`

	ResumeURL    string `json:"resumeUrl"`
	AltResumeURL string `json:"resume_url"`

	SubmittedAt    string `json:"submittedAt"`
	AltSubmittedAt string `json:"submitted_at"`

	OverallScore    float64 `json:"overallScore"`
	AltOverallScore float64 `json:"overall_score"`

	KeywordMatchScore    float64 `json:"keywordMatchScore"`
	AltKeywordMatchScore float64 `json:"keyword_match_score"`

	SkillMatchScore    float64 `json:"skillMatchScore"`
	AltSkillMatchScore float64 `json:"skill_match_score"`

	ExperienceScore    float64 `json:"experienceScore"`
	AltExperienceScore float64 `json:"experience_score"`

	EducationScore    float64 `json:"educationScore"`
	AltEducationScore float64 `json:"education_score"`

	FormattingScore    float64 `json:"formattingScore"`
	AltFormattingScore float64 `json:"formatting_score"`

	MatchedKeywords    []string `json:"matchedKeywords"`
	AltMatchedKeywords []string `json:"matched_keywords"`

	MissingKeywords    []string `json:"missingKeywords"`
	AltMissingKeywords []string `json:"missing_keywords"`

	MatchedSkills    []string `json:"matchedSkills"`
	AltMatchedSkills []string `json:"matched_skills"`

	MissingSkills    []string `json:"missingSkills"`
	AltMissingSkills []string `json:"missing_skills"`

	Analysis    string `json:"aiAnalysis"`
	AltAnalysis string `json:"ai_analysis"`

	Status string `json:"status"`
}
