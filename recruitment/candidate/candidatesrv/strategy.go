package candidatesrv

import (
	"context"

	"github.com/talentsift/cvanalyzer/pkg/kernel"
	"github.com/talentsift/cvanalyzer/recruitment/candidate"
	"github.com/talentsift/cvanalyzer/recruitment/resume"
)

// CandidateQueryStrategy produces one page of unique candidates plus the
// total matching count for a listing request. The two implementations
// deliberately differ in ordering: the direct query orders by creation
// time descending, the category query keeps first-seen fetch order. That
// inconsistency is an inherited product behavior, kept visible here
// rather than buried in conditionals.
type CandidateQueryStrategy interface {
	FetchPage(ctx context.Context, req candidate.ListCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error)
}

// directCandidateQuery serves the unfiltered listing by querying the
// candidate relation directly. Filtering, ordering, pagination and the
// exact count all happen store-side.
type directCandidateQuery struct {
	repo candidate.Repository
}

func (q *directCandidateQuery) FetchPage(ctx context.Context, req candidate.ListCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error) {
	return q.repo.List(ctx, req.Search, req.Pagination)
}

// categoryFilteredDedupQuery serves the category-filtered listing. The
// unit of filtering (résumés) differs from the unit of pagination
// (unique candidates), so the whole filtered set is fetched — capped at
// resume.MaxScanRows — de-duplicated by candidate id in first-seen
// order, and sliced in memory. A candidate with several résumés in the
// category contributes one entry carrying only the first résumé
// encountered; the others are dropped.
type categoryFilteredDedupQuery struct {
	repo resume.Repository
}

func (q *categoryFilteredDedupQuery) FetchPage(ctx context.Context, req candidate.ListCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error) {
	rows, err := q.repo.ListByCategory(ctx, req.Category, req.Search)
	if err != nil {
		return nil, err
	}

	unique := dedupeByCandidate(rows)
	total := len(unique)

	// In-memory slice over the deduplicated list
	offset := req.Pagination.Offset()
	if offset > total {
		offset = total
	}
	end := offset + req.Pagination.PageSize
	if end > total {
		end = total
	}

	return kernel.NewPaginated(unique[offset:end], req.Pagination, total), nil
}

// dedupeByCandidate collapses résumé rows to one candidate entry each,
// preserving first-seen order. Rows without a resolvable candidate are
// excluded.
func dedupeByCandidate(rows []resume.ResumeWithCandidate) []candidate.CandidateWithResumes {
	seen := make(map[kernel.CandidateID]bool, len(rows))
	unique := make([]candidate.CandidateWithResumes, 0, len(rows))

	for i := range rows {
		row := &rows[i]
		if !row.HasCandidate() || seen[row.Candidate.ID] {
			continue
		}
		seen[row.Candidate.ID] = true

		unique = append(unique, candidate.CandidateWithResumes{
			Candidate: candidate.Candidate{
				ID:       row.Candidate.ID,
				FullName: row.Candidate.FullName,
				Email:    row.Candidate.Email,
				Phone:    row.Candidate.Phone,
			},
			Resumes: []resume.ResumeSummary{row.ToSummary()},
		})
	}

	return unique
}
