package screeningsrv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/talentsift/cvanalyzer/pkg/errx"
	"github.com/talentsift/cvanalyzer/pkg/logx"
	"github.com/talentsift/cvanalyzer/recruitment/resume"
	"github.com/talentsift/cvanalyzer/recruitment/screening"
)

// CacheTTL is how long a finished analysis stays valid. The corpus only
// changes when the seeder runs, so staleness is a minor concern.
const CacheTTL = 5 * time.Minute

// Service ranks stored résumés against caller-supplied keywords
type Service struct {
	resumeRepo resume.Repository
	cache      screening.ResultCache
}

// NewService creates a new screening service. The cache may be nil, in
// which case every analysis hits the store.
func NewService(resumeRepo resume.Repository, cache screening.ResultCache) *Service {
	return &Service{
		resumeRepo: resumeRepo,
		cache:      cache,
	}
}

// Analyze scores every stored résumé against the keywords and returns
// the best matches, sorted by score descending with candidate id as the
// tie-break, truncated to limit (clamped to [1,100], default 5) and
// assigned 1-based ranks. An empty keyword list yields an empty result,
// not an error.
func (s *Service) Analyze(ctx context.Context, keywords []string, limit int) (*screening.AnalyzeResponse, error) {
	limit = screening.ClampLimit(limit)
	normalized := normalizeKeywords(keywords)

	if len(normalized) == 0 {
		return &screening.AnalyzeResponse{
			Matches:      []screening.Match{},
			TotalMatches: 0,
			Keywords:     normalized,
		}, nil
	}

	key := cacheKey(normalized, limit)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			logx.Warnf("Analysis cache read failed, falling through to store: %v", err)
		} else if cached != nil {
			logx.Debugf("Analysis cache hit for %d keywords", len(normalized))
			return cached, nil
		}
	}

	rows, err := s.resumeRepo.ListWithCandidates(ctx, resume.MaxScanRows)
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch resumes for analysis", errx.TypeInternal)
	}

	logx.Infof("Fetched %d resumes for analysis", len(rows))

	matches := scoreResumes(rows, normalized)

	// Deterministic ordering: score descending, candidate id ascending
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Candidate.ID < matches[j].Candidate.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	for i := range matches {
		matches[i].Rank = i + 1
	}

	response := &screening.AnalyzeResponse{
		Matches:      matches,
		TotalMatches: len(matches),
		Keywords:     normalized,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, response, CacheTTL); err != nil {
			logx.Warnf("Analysis cache write failed: %v", err)
		}
	}

	return response, nil
}

// scoreResumes computes each résumé's score as the sum of non-overlapping
// occurrences of every keyword in its lowercased text. Résumés scoring
// zero and résumés without a resolvable candidate are dropped.
func scoreResumes(rows []resume.ResumeWithCandidate, keywords []string) []screening.Match {
	matches := make([]screening.Match, 0)

	for i := range rows {
		row := &rows[i]
		text := strings.ToLower(row.Text) // NULL text was read as ""

		score := 0
		for _, keyword := range keywords {
			score += strings.Count(text, keyword)
		}

		if score == 0 || !row.HasCandidate() {
			continue
		}

		matches = append(matches, screening.Match{
			Score:     score,
			Candidate: *row.Candidate,
			Resume:    row.ToSummary(),
		})
	}

	return matches
}

// normalizeKeywords lowercases the keywords and drops blanks. Duplicates
// are kept: a keyword supplied twice counts twice, matching the scoring
// contract.
func normalizeKeywords(keywords []string) []string {
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		normalized = append(normalized, keyword)
	}
	return normalized
}

// cacheKey derives a stable key from the keyword multiset and limit
func cacheKey(keywords []string, limit int) string {
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.Strings(sorted)

	sum := sha256.Sum256([]byte(strings.Join(sorted, "\x1f")))
	return fmt.Sprintf("%s:%d", hex.EncodeToString(sum[:]), limit)
}
