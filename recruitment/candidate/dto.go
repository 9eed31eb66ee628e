package candidate

import (
	"github.com/talentsift/cvanalyzer/pkg/kernel"
	"github.com/talentsift/cvanalyzer/recruitment/resume"
)

// ListCandidatesRequest - parameters for the candidate listing
type ListCandidatesRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
	Search     string                   `json:"search,omitempty"`
	Category   kernel.ResumeCategory    `json:"category,omitempty"`
}

// CandidateWithResumes - a candidate with their résumés nested, the unit
// the listing paginates over
type CandidateWithResumes struct {
	Candidate
	Resumes []resume.ResumeSummary `json:"resumes"`
}

// Response type alias for the paginated listing
type PaginatedCandidatesResponse = kernel.Paginated[CandidateWithResumes]
