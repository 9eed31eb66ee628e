package screening

import (
	"github.com/talentsift/cvanalyzer/recruitment/resume"
)

// Limit bounds for a ranked analysis
const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 5
)

// Match is one ranked résumé: its relevance score, the owning candidate
// and a trimmed résumé projection. Rank is 1-based and assigned after
// truncation to the requested limit.
type Match struct {
	Rank      int                  `json:"rank"`
	Score     int                  `json:"score"`
	Candidate resume.CandidateRef  `json:"candidate"`
	Resume    resume.ResumeSummary `json:"resume"`
}

// ClampLimit normalizes a requested result limit into [MinLimit, MaxLimit],
// substituting DefaultLimit when the caller passed nothing (zero)
func ClampLimit(limit int) int {
	if limit == 0 {
		return DefaultLimit
	}
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
