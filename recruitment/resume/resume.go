package resume

import (
	"time"

	"github.com/talentsift/cvanalyzer/pkg/kernel"
)

// MaxScanRows bounds how many résumés a single scan may pull from the
// store. Rows beyond the cap are silently excluded, which trades
// completeness for bounded memory and latency on large corpora.
const MaxScanRows = 3000

// Resume is a single submitted résumé tied to exactly one candidate.
// The store never mutates résumés through this module; they are created
// and destroyed only by the seeder.
type Resume struct {
	ID          kernel.ResumeID       `db:"id" json:"id"`
	CandidateID kernel.CandidateID    `db:"candidate_id" json:"candidate_id"`
	Text        string                `db:"resume_text" json:"resume_text,omitempty"` // NULL in the store reads as ""
	Category    kernel.ResumeCategory `db:"category" json:"category"`
	PDFURL      *string               `db:"pdf_url" json:"pdf_url,omitempty"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
}

// HasText reports whether the résumé carries any free text to score
func (r *Resume) HasText() bool {
	return r.Text != ""
}
