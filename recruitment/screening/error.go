package screening

import (
	"net/http"

	"github.com/talentsift/cvanalyzer/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SCREENING")

// Error codes
var (
	CodeAnalysisFailed  = ErrRegistry.Register("ANALYSIS_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Resume analysis failed")
	CodeInvalidKeywords = ErrRegistry.Register("INVALID_KEYWORDS", errx.TypeValidation, http.StatusBadRequest, "Invalid keywords")
)

// Helper functions
func ErrAnalysisFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeAnalysisFailed, cause)
}

func ErrInvalidKeywords() *errx.Error {
	return ErrRegistry.New(CodeInvalidKeywords)
}
