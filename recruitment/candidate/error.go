package candidate

import (
	"net/http"

	"github.com/talentsift/cvanalyzer/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeInvalidPagination = ErrRegistry.Register("INVALID_PAGINATION", errx.TypeValidation, http.StatusBadRequest, "Invalid pagination parameters")
	CodeStoreQueryFailed  = ErrRegistry.Register("STORE_QUERY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to query candidate store")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrInvalidPagination() *errx.Error {
	return ErrRegistry.New(CodeInvalidPagination)
}

func ErrStoreQueryFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreQueryFailed, cause)
}
