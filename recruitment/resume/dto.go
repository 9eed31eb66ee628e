package resume

import (
	"github.com/talentsift/cvanalyzer/pkg/kernel"
)

// CandidateRef is the owning candidate's identity as embedded by a
// store-side join. It is a projection, not the candidate aggregate.
type CandidateRef struct {
	ID       kernel.CandidateID `json:"id"`
	FullName kernel.FullName    `json:"full_name"`
	Email    kernel.Email       `json:"email"`
	Phone    kernel.Phone       `json:"phone_number"`
}

// ResumeWithCandidate is a résumé row joined with its owning candidate.
// Candidate is nil when the reference does not resolve; such rows must
// never surface in ranked or listed output.
type ResumeWithCandidate struct {
	Resume
	Candidate *CandidateRef `json:"candidate,omitempty"`
}

// HasCandidate reports whether the candidate reference resolved
func (r *ResumeWithCandidate) HasCandidate() bool {
	return r.Candidate != nil && !r.Candidate.ID.IsEmpty()
}

// ResumeSummary is the trimmed résumé projection returned inside ranked
// matches and nested candidate listings
type ResumeSummary struct {
	ID       kernel.ResumeID       `json:"id"`
	Category kernel.ResumeCategory `json:"category"`
	PDFURL   *string               `json:"pdf_url,omitempty"`
}

// ToSummary projects the résumé for API responses
func (r *Resume) ToSummary() ResumeSummary {
	return ResumeSummary{
		ID:       r.ID,
		Category: r.Category,
		PDFURL:   r.PDFURL,
	}
}
