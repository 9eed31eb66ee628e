package candidate

import (
	"time"

	"github.com/talentsift/cvanalyzer/pkg/kernel"
)

// Candidate is a person record with contact details, independent of any
// résumé. Candidates are created and destroyed only by the seeder; this
// module reads them.
type Candidate struct {
	ID        kernel.CandidateID `db:"id" json:"id"`
	FullName  kernel.FullName    `db:"full_name" json:"full_name"`
	Email     kernel.Email       `db:"email" json:"email"`
	Phone     kernel.Phone       `db:"phone_number" json:"phone_number"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
}

// MatchesName reports whether the candidate's full name contains term,
// case-insensitively. An empty term matches every candidate.
func (c *Candidate) MatchesName(term string) bool {
	if term == "" {
		return true
	}
	return c.FullName.ContainsFold(term)
}
