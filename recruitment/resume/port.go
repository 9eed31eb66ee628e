package resume

import (
	"context"

	"github.com/talentsift/cvanalyzer/pkg/kernel"
)

// Repository is the read-only résumé surface of the record store
type Repository interface {
	// ListWithCandidates fetches up to limit résumés, each joined with its
	// owning candidate (nil when unresolvable). Rows beyond the limit are
	// silently excluded.
	ListWithCandidates(ctx context.Context, limit int) ([]ResumeWithCandidate, error)

	// ListByCategory fetches every résumé in the category joined with its
	// owning candidate, optionally filtered by a case-insensitive substring
	// match on the candidate's full name. The result is capped at
	// MaxScanRows, a documented scalability limit of the category listing.
	ListByCategory(ctx context.Context, category kernel.ResumeCategory, search string) ([]ResumeWithCandidate, error)

	// ListByCandidate returns all résumés owned by a candidate
	ListByCandidate(ctx context.Context, id kernel.CandidateID) ([]Resume, error)

	// Categories returns the distinct category labels present in the store
	Categories(ctx context.Context) ([]kernel.ResumeCategory, error)
}
