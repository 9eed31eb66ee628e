package candidate

import (
	"context"

	"github.com/talentsift/cvanalyzer/pkg/kernel"
)

// Repository is the read-only candidate surface of the record store
type Repository interface {
	// List returns one page of candidates with their résumés nested,
	// ordered by creation time descending. When search is non-empty only
	// candidates whose full name contains it (case-insensitive) are
	// returned, and the reported total counts all candidates matching
	// that filter, not just the page.
	List(ctx context.Context, search string, pagination kernel.PaginationOptions) (*kernel.Paginated[CandidateWithResumes], error)

	// GetByID retrieves a single candidate with résumés nested
	GetByID(ctx context.Context, id kernel.CandidateID) (*CandidateWithResumes, error)
}
