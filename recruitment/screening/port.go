package screening

import (
	"context"
	"time"
)

// ResultCache stores finished analyses keyed by their normalized query.
// A cache is an optimization only: implementations report misses as
// (nil, nil) and callers must treat any cache error as a miss.
type ResultCache interface {
	// Get returns the cached response for key, or (nil, nil) on a miss
	Get(ctx context.Context, key string) (*AnalyzeResponse, error)

	// Set stores a response under key for ttl
	Set(ctx context.Context, key string, response *AnalyzeResponse, ttl time.Duration) error
}
