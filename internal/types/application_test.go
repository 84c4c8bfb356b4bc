package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("Pending").Valid(), "statuses are lowercase on the wire")
}

func TestRequiresSkill(t *testing.T) {
	job := JobPosting{Requirements: []string{"Go", "PostgreSQL"}}

	assert.True(t, job.RequiresSkill("go"))
	assert.True(t, job.RequiresSkill("POSTGRESQL"))
	assert.False(t, job.RequiresSkill("Rust"))
	assert.False(t, job.RequiresSkill("Postgres"), "substring is not a requirement match")
}

func TestStatusCountsTotal(t *testing.T) {
	counts := StatusCounts{Pending: 2, Shortlisted: 1, Interviewed: 1, Rejected: 3}
	assert.Equal(t, 7, counts.Total())
}
