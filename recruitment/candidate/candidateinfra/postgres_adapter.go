package candidateinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/talentsift/cvanalyzer/pkg/kernel"
	"github.com/talentsift/cvanalyzer/recruitment/candidate"
	"github.com/talentsift/cvanalyzer/recruitment/resume"
)

type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) candidate.Repository {
	return &PostgresCandidateRepository{db: db}
}

// List returns one page of candidates ordered by creation time descending,
// with résumés nested. The total is the exact pre-pagination count of
// candidates matching the search filter.
func (r *PostgresCandidateRepository) List(ctx context.Context, search string, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.CandidateWithResumes], error) {
	whereSQL := ""
	args := []interface{}{}
	argCount := 1

	if search != "" {
		whereSQL = fmt.Sprintf(`WHERE full_name ILIKE $%d`, argCount)
		args = append(args, "%"+search+"%")
		argCount++
	}

	// Count total matching the filter
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM candidates %s`, whereSQL)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, candidate.ErrStoreQueryFailed(err)
	}

	// Fetch the page
	query := fmt.Sprintf(`
		SELECT id, full_name, email, phone_number, created_at
		FROM candidates
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereSQL, argCount, argCount+1)

	args = append(args, pagination.PageSize, pagination.Offset())

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, candidate.ErrStoreQueryFailed(err)
	}
	defer rows.Close()

	candidates := make([]candidate.CandidateWithResumes, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var c candidate.Candidate
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, candidate.ErrStoreQueryFailed(err)
		}
		candidates = append(candidates, candidate.CandidateWithResumes{
			Candidate: c,
			Resumes:   []resume.ResumeSummary{},
		})
		ids = append(ids, c.ID.String())
	}
	if err := rows.Err(); err != nil {
		return nil, candidate.ErrStoreQueryFailed(err)
	}

	if err := r.attachResumes(ctx, candidates, ids); err != nil {
		return nil, err
	}

	return kernel.NewPaginated(candidates, pagination, total), nil
}

// GetByID retrieves a single candidate with résumés nested
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateWithResumes, error) {
	query := `
		SELECT id, full_name, email, phone_number, created_at
		FROM candidates
		WHERE id = $1
	`

	var c candidate.Candidate
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}
	if err != nil {
		return nil, candidate.ErrStoreQueryFailed(err)
	}

	result := &candidate.CandidateWithResumes{
		Candidate: c,
		Resumes:   []resume.ResumeSummary{},
	}

	wrapped := []candidate.CandidateWithResumes{*result}
	if err := r.attachResumes(ctx, wrapped, []string{c.ID.String()}); err != nil {
		return nil, err
	}

	return &wrapped[0], nil
}

// attachResumes loads the résumés for the page's candidates in one query
// and nests them under their owners
func (r *PostgresCandidateRepository) attachResumes(ctx context.Context, candidates []candidate.CandidateWithResumes, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		SELECT id, candidate_id, category, pdf_url
		FROM resumes
		WHERE candidate_id = ANY($1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(ids))
	if err != nil {
		return candidate.ErrStoreQueryFailed(err)
	}
	defer rows.Close()

	byOwner := make(map[kernel.CandidateID][]resume.ResumeSummary, len(ids))
	for rows.Next() {
		var summary resume.ResumeSummary
		var ownerID kernel.CandidateID
		var pdfURL sql.NullString

		if err := rows.Scan(&summary.ID, &ownerID, &summary.Category, &pdfURL); err != nil {
			return candidate.ErrStoreQueryFailed(err)
		}
		if pdfURL.Valid {
			summary.PDFURL = &pdfURL.String
		}
		byOwner[ownerID] = append(byOwner[ownerID], summary)
	}
	if err := rows.Err(); err != nil {
		return candidate.ErrStoreQueryFailed(err)
	}

	for i := range candidates {
		if resumes, ok := byOwner[candidates[i].ID]; ok {
			candidates[i].Resumes = resumes
		}
	}

	return nil
}
