package screening

// AnalyzeRequest - DTO for a keyword analysis
type AnalyzeRequest struct {
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit,omitempty"`
}

// AnalyzeResponse - ranked matches for a keyword analysis
type AnalyzeResponse struct {
	Matches      []Match  `json:"matches"`
	TotalMatches int      `json:"total_matches"`
	Keywords     []string `json:"keywords"`
}
