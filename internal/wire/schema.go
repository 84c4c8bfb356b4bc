package wire

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Advisory JSON Schemas for the portal payloads. Validation only produces
// warnings for diagnostics; normalization itself is total and never rejects
// a payload.

const jobSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"_id": {"type": "string"},
		"title": {"type": "string"},
		"department": {"type": "string"},
		"description": {"type": "string"},
		"requirements": {"type": "array", "items": {"type": "string"}},
		"location": {"type": "string"},
		"type": {"type": "string"},
		"status": {"type": "string", "enum": ["active", "closed"]},
		"applicants": {"type": "number"},
		"applicant_count": {"type": "number"},
		"createdAt": {"type": "string"},
		"created_at": {"type": "string"}
	}
}`

const applicationSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"_id": {"type": "string"},
		"jobId": {"type": "string"},
		"job_id": {"type": "string"},
		"studentName": {"type": "string"},
		"student_name": {"type": "string"},
		"email": {"type": "string"},
		"phone": {"type": "string"},
		"college": {"type": "string"},
		"degree": {"type": "string"},
		"skills": {"type": "array", "items": {"type": "string"}},
		"years_of_experience": {"type": "number"},
		"overallScore": {"type": "number", "minimum": 0, "maximum": 100},
		"overall_score": {"type": "number", "minimum": 0, "maximum": 100},
		"status": {"type": "string", "enum": ["pending", "shortlisted", "interviewed", "rejected"]}
	}
}`

// CheckJob validates a raw job payload against the advisory schema and
// returns human-readable warnings. It never fails the caller.
func CheckJob(raw []byte) []string {
	return check(jobSchema, raw)
}

// CheckApplication validates a raw application payload against the advisory
// schema and returns human-readable warnings. It never fails the caller.
func CheckApplication(raw []byte) []string {
	return check(applicationSchema, raw)
}

func check(schema string, raw []byte) []string {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return []string{fmt.Sprintf("schema check skipped: %v", err)}
	}
	if result.Valid() {
		return nil
	}
	warnings := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		warnings = append(warnings, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return warnings
}
