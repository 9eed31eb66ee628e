package resume

import (
	"net/http"

	"github.com/talentsift/cvanalyzer/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

// Error codes
var (
	CodeStoreQueryFailed = ErrRegistry.Register("STORE_QUERY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to query resume store")
	CodeResumeNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
)

// Helper functions
func ErrStoreQueryFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreQueryFailed, cause)
}

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}
