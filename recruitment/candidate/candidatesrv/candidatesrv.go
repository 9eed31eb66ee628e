package candidatesrv

import (
	"context"

	"github.com/talentsift/cvanalyzer/pkg/kernel"
	"github.com/talentsift/cvanalyzer/recruitment/candidate"
	"github.com/talentsift/cvanalyzer/recruitment/resume"
)

// CandidateService provides the candidate listing operations
type CandidateService struct {
	direct           CandidateQueryStrategy
	categoryFiltered CandidateQueryStrategy
	candidateRepo    candidate.Repository
	resumeRepo       resume.Repository
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(
	candidateRepo candidate.Repository,
	resumeRepo resume.Repository,
) *CandidateService {
	return &CandidateService{
		direct:           &directCandidateQuery{repo: candidateRepo},
		categoryFiltered: &categoryFilteredDedupQuery{repo: resumeRepo},
		candidateRepo:    candidateRepo,
		resumeRepo:       resumeRepo,
	}
}

// ListCandidates returns one page of unique candidates with nested
// résumés plus the total count consistent with the active filter. The
// query strategy is selected by the category parameter: the "all"
// sentinel (or an empty category) queries candidates directly, anything
// else queries résumés and de-duplicates to candidates.
func (s *CandidateService) ListCandidates(ctx context.Context, req candidate.ListCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error) {
	if req.Pagination.Page < 1 || req.Pagination.PageSize < 1 {
		return nil, candidate.ErrInvalidPagination().
			WithDetail("page", req.Pagination.Page).
			WithDetail("page_size", req.Pagination.PageSize)
	}

	return s.strategyFor(req.Category).FetchPage(ctx, req)
}

// GetCandidateByID retrieves a single candidate with résumés nested
func (s *CandidateService) GetCandidateByID(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateWithResumes, error) {
	return s.candidateRepo.GetByID(ctx, id)
}

// ListCategories returns the distinct résumé categories available for
// filtering the listing
func (s *CandidateService) ListCategories(ctx context.Context) ([]kernel.ResumeCategory, error) {
	return s.resumeRepo.Categories(ctx)
}

func (s *CandidateService) strategyFor(category kernel.ResumeCategory) CandidateQueryStrategy {
	if category.IsAll() {
		return s.direct
	}
	return s.categoryFiltered
}
