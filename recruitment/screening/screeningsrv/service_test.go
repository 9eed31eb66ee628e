package screeningsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/cvanalyzer/pkg/kernel"
	"github.com/talentsift/cvanalyzer/recruitment/resume"
	"github.com/talentsift/cvanalyzer/recruitment/screening"
)

// fakeResumeRepo serves a fixed corpus
type fakeResumeRepo struct {
	rows []resume.ResumeWithCandidate
	err  error

	lastLimit int
}

func (f *fakeResumeRepo) ListWithCandidates(_ context.Context, limit int) ([]resume.ResumeWithCandidate, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func (f *fakeResumeRepo) ListByCategory(context.Context, kernel.ResumeCategory, string) ([]resume.ResumeWithCandidate, error) {
	return nil, errors.New("not used")
}

func (f *fakeResumeRepo) ListByCandidate(context.Context, kernel.CandidateID) ([]resume.Resume, error) {
	return nil, errors.New("not used")
}

func (f *fakeResumeRepo) Categories(context.Context) ([]kernel.ResumeCategory, error) {
	return nil, errors.New("not used")
}

// fakeCache records reads and writes
type fakeCache struct {
	stored map[string]*screening.AnalyzeResponse
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: make(map[string]*screening.AnalyzeResponse)}
}

func (f *fakeCache) Get(_ context.Context, key string) (*screening.AnalyzeResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, response *screening.AnalyzeResponse, _ time.Duration) error {
	f.sets++
	f.stored[key] = response
	return nil
}

func row(candidateID, name, text string) resume.ResumeWithCandidate {
	return resume.ResumeWithCandidate{
		Resume: resume.Resume{
			ID:          kernel.NewResumeID("resume-" + candidateID),
			CandidateID: kernel.NewCandidateID(candidateID),
			Text:        text,
			Category:    "ENGINEERING",
		},
		Candidate: &resume.CandidateRef{
			ID:       kernel.NewCandidateID(candidateID),
			FullName: kernel.FullName(name),
		},
	}
}

func TestAnalyzeCountsNonOverlappingOccurrences(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c1", "Ada Lovelace", "kkk"),
	}}
	svc := NewService(repo, nil)

	resp, err := svc.Analyze(context.Background(), []string{"k"}, 5)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, 3, resp.Matches[0].Score)
}

func TestAnalyzeIsCaseInsensitive(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c1", "Ada Lovelace", "Python developer with Python experience"),
	}}
	svc := NewService(repo, nil)

	resp, err := svc.Analyze(context.Background(), []string{"Python"}, 5)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, 2, resp.Matches[0].Score)
	assert.Equal(t, 1, resp.Matches[0].Rank)
}

func TestAnalyzeEmptyKeywordsReturnsEmpty(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c1", "Ada Lovelace", "anything at all"),
	}}
	svc := NewService(repo, nil)

	resp, err := svc.Analyze(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.Empty(t, resp.Matches)
	assert.Zero(t, resp.TotalMatches)
}

func TestAnalyzeDropsZeroScores(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c1", "Ada Lovelace", "go engineer"),
		row("c2", "Grace Hopper", "cobol compiler pioneer"),
	}}
	svc := NewService(repo, nil)

	resp, err := svc.Analyze(context.Background(), []string{"cobol"}, 5)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, kernel.NewCandidateID("c2"), resp.Matches[0].Candidate.ID)
}

func TestAnalyzeDropsUnresolvedCandidates(t *testing.T) {
	orphan := row("c1", "", "go go go")
	orphan.Candidate = nil

	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		orphan,
		row("c2", "Grace Hopper", "go developer"),
	}}
	svc := NewService(repo, nil)

	resp, err := svc.Analyze(context.Background(), []string{"go"}, 5)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, kernel.NewCandidateID("c2"), resp.Matches[0].Candidate.ID)
}

func TestAnalyzeNullTextScoresZero(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c1", "Ada Lovelace", ""), // NULL text reads as ""
	}}
	svc := NewService(repo, nil)

	resp, err := svc.Analyze(context.Background(), []string{"anything"}, 5)
	require.NoError(t, err)
	assert.Empty(t, resp.Matches)
}

func TestAnalyzeSortsByScoreThenCandidateID(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c3", "Carol", "java java"),
		row("c1", "Alice", "java java java"),
		row("c4", "Dave", "java java"),
		row("c2", "Bob", "java"),
	}}
	svc := NewService(repo, nil)

	resp, err := svc.Analyze(context.Background(), []string{"java"}, 10)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 4)

	var ids []string
	for _, m := range resp.Matches {
		ids = append(ids, m.Candidate.ID.String())
	}
	// Scores 3, 2, 2, 1 with equal scores ordered by candidate id
	assert.Equal(t, []string{"c1", "c3", "c4", "c2"}, ids)

	for i := 1; i < len(resp.Matches); i++ {
		assert.GreaterOrEqual(t, resp.Matches[i-1].Score, resp.Matches[i].Score)
	}
}

func TestAnalyzeMultipleKeywordsSumScores(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c1", "Ada", "python and go, more go"),
	}}
	svc := NewService(repo, nil)

	resp, err := svc.Analyze(context.Background(), []string{"python", "go"}, 5)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, 3, resp.Matches[0].Score)
}

func TestAnalyzeTruncatesAndRanks(t *testing.T) {
	rows := []resume.ResumeWithCandidate{
		row("c1", "A", "go go go go"),
		row("c2", "B", "go go go"),
		row("c3", "C", "go go"),
		row("c4", "D", "go"),
	}
	svc := NewService(&fakeResumeRepo{rows: rows}, nil)

	resp, err := svc.Analyze(context.Background(), []string{"go"}, 2)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, 2, resp.TotalMatches)
	assert.Equal(t, 1, resp.Matches[0].Rank)
	assert.Equal(t, 2, resp.Matches[1].Rank)
}

func TestAnalyzeDefaultsAndClampsLimit(t *testing.T) {
	rows := make([]resume.ResumeWithCandidate, 0, 10)
	for _, id := range []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9"} {
		rows = append(rows, row(id, "Candidate "+id, "go developer"))
	}
	svc := NewService(&fakeResumeRepo{rows: rows}, nil)

	// Zero limit falls back to the default of 5
	resp, err := svc.Analyze(context.Background(), []string{"go"}, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Matches, screening.DefaultLimit)

	// Oversized limits are clamped, not rejected
	resp, err = svc.Analyze(context.Background(), []string{"go"}, 5000)
	require.NoError(t, err)
	assert.Len(t, resp.Matches, 10)
}

func TestAnalyzeRequestsCappedFetch(t *testing.T) {
	repo := &fakeResumeRepo{}
	svc := NewService(repo, nil)

	_, err := svc.Analyze(context.Background(), []string{"go"}, 5)
	require.NoError(t, err)
	assert.Equal(t, resume.MaxScanRows, repo.lastLimit)
}

func TestAnalyzePropagatesStoreFailure(t *testing.T) {
	repo := &fakeResumeRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nil)

	_, err := svc.Analyze(context.Background(), []string{"go"}, 5)
	assert.Error(t, err)
}

func TestAnalyzeUsesCache(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c1", "Ada", "go developer"),
	}}
	cache := newFakeCache()
	svc := NewService(repo, cache)

	first, err := svc.Analyze(context.Background(), []string{"Go"}, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// Second identical query is served from the cache
	repo.err = errors.New("store must not be hit")
	second, err := svc.Analyze(context.Background(), []string{"go"}, 5)
	require.NoError(t, err)
	assert.Equal(t, first.Matches, second.Matches)
}

func TestAnalyzeCacheFailureFallsThrough(t *testing.T) {
	repo := &fakeResumeRepo{rows: []resume.ResumeWithCandidate{
		row("c1", "Ada", "go developer"),
	}}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	svc := NewService(repo, cache)

	resp, err := svc.Analyze(context.Background(), []string{"go"}, 5)
	require.NoError(t, err)
	assert.Len(t, resp.Matches, 1)
}
