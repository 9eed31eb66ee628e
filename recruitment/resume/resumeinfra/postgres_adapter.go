package resumeinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/talentsift/cvanalyzer/pkg/kernel"
	"github.com/talentsift/cvanalyzer/recruitment/resume"
)

type PostgresResumeRepository struct {
	db *sqlx.DB
}

func NewPostgresResumeRepository(db *sqlx.DB) resume.Repository {
	return &PostgresResumeRepository{db: db}
}

// ListWithCandidates fetches up to limit résumés left-joined with their
// owning candidate. A résumé whose candidate row is missing comes back
// with a nil Candidate; filtering it out is the caller's contract.
func (r *PostgresResumeRepository) ListWithCandidates(ctx context.Context, limit int) ([]resume.ResumeWithCandidate, error) {
	query := `
		SELECT
			r.id, r.candidate_id, r.resume_text, r.category, r.pdf_url, r.created_at,
			c.id, c.full_name, c.email, c.phone_number
		FROM resumes r
		LEFT JOIN candidates c ON c.id = r.candidate_id
		ORDER BY r.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, resume.ErrStoreQueryFailed(err)
	}
	defer rows.Close()

	return scanJoinedRows(rows)
}

// ListByCategory fetches the full filtered result set for one category,
// capped at MaxScanRows. Pagination happens in memory upstream because
// the unit of pagination (unique candidates) differs from the unit of
// filtering (résumés).
func (r *PostgresResumeRepository) ListByCategory(ctx context.Context, category kernel.ResumeCategory, search string) ([]resume.ResumeWithCandidate, error) {
	query := `
		SELECT
			r.id, r.candidate_id, r.resume_text, r.category, r.pdf_url, r.created_at,
			c.id, c.full_name, c.email, c.phone_number
		FROM resumes r
		LEFT JOIN candidates c ON c.id = r.candidate_id
		WHERE r.category = $1
	`
	args := []interface{}{category}
	argCount := 2

	if search != "" {
		query += fmt.Sprintf(` AND c.full_name ILIKE $%d`, argCount)
		args = append(args, "%"+search+"%")
		argCount++
	}

	query += fmt.Sprintf(` ORDER BY r.created_at DESC LIMIT $%d`, argCount)
	args = append(args, resume.MaxScanRows)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, resume.ErrStoreQueryFailed(err)
	}
	defer rows.Close()

	return scanJoinedRows(rows)
}

// ListByCandidate returns all résumés owned by a candidate
func (r *PostgresResumeRepository) ListByCandidate(ctx context.Context, id kernel.CandidateID) ([]resume.Resume, error) {
	query := `
		SELECT id, candidate_id, resume_text, category, pdf_url, created_at
		FROM resumes
		WHERE candidate_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, id)
	if err != nil {
		return nil, resume.ErrStoreQueryFailed(err)
	}
	defer rows.Close()

	resumes := make([]resume.Resume, 0)
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, resume.ErrStoreQueryFailed(err)
		}
		resumes = append(resumes, *rec)
	}

	return resumes, rows.Err()
}

// Categories returns the distinct category labels present in the store
func (r *PostgresResumeRepository) Categories(ctx context.Context) ([]kernel.ResumeCategory, error) {
	query := `SELECT DISTINCT category FROM resumes ORDER BY category`

	var categories []kernel.ResumeCategory
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, resume.ErrStoreQueryFailed(err)
	}

	return categories, nil
}

// ============================================================================
// Row Scanning Helpers
// ============================================================================

func scanResume(rows *sqlx.Rows) (*resume.Resume, error) {
	var rec resume.Resume
	var text sql.NullString
	var pdfURL sql.NullString

	err := rows.Scan(
		&rec.ID,
		&rec.CandidateID,
		&text,
		&rec.Category,
		&pdfURL,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL resume_text reads as empty text
	if text.Valid {
		rec.Text = text.String
	}
	if pdfURL.Valid {
		rec.PDFURL = &pdfURL.String
	}

	return &rec, nil
}

func scanJoinedRows(rows *sqlx.Rows) ([]resume.ResumeWithCandidate, error) {
	results := make([]resume.ResumeWithCandidate, 0)

	for rows.Next() {
		var rec resume.ResumeWithCandidate
		var text sql.NullString
		var pdfURL sql.NullString
		var candID sql.NullString
		var candName sql.NullString
		var candEmail sql.NullString
		var candPhone sql.NullString

		err := rows.Scan(
			&rec.ID,
			&rec.CandidateID,
			&text,
			&rec.Category,
			&pdfURL,
			&rec.CreatedAt,
			&candID,
			&candName,
			&candEmail,
			&candPhone,
		)
		if err != nil {
			return nil, resume.ErrStoreQueryFailed(err)
		}

		if text.Valid {
			rec.Text = text.String
		}
		if pdfURL.Valid {
			rec.PDFURL = &pdfURL.String
		}

		// A NULL joined id means the candidate reference did not resolve
		if candID.Valid {
			rec.Candidate = &resume.CandidateRef{
				ID:       kernel.NewCandidateID(candID.String),
				FullName: kernel.FullName(candName.String),
				Email:    kernel.Email(candEmail.String),
				Phone:    kernel.Phone(candPhone.String),
			}
		}

		results = append(results, rec)
	}

	return results, rows.Err()
}
