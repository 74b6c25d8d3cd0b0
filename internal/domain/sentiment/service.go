package sentiment

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// CacheKey builds the result-cache key for a request: case-folded
// topic plus the requested count. Two counts for the same topic are
// distinct entries because the batch composition differs.
func CacheKey(topic string, count int) string {
	return strings.ToLower(strings.TrimSpace(topic)) + ":" + strconv.Itoa(count)
}

// Service is the entry point the transport layer talks to.
type Service interface {
	// Analyze fetches recent posts for a topic, scores them and returns
	// the aggregated distribution. Count must be in [10,100].
	Analyze(ctx context.Context, topic string, count int) (*AnalysisResult, error)

	// RecentAnalyses returns at most limit most recently completed
	// analyses, newest first.
	RecentAnalyses(ctx context.Context, limit int) ([]Analysis, error)
}

// Searcher is the upstream collaborator contract. Implementations may
// signal ErrUpstreamAuth, ErrNoResults or *RateLimitError.
type Searcher interface {
	// Search fetches up to maxResults recent posts mentioning topic,
	// excluding reshares and replies, English only.
	Search(ctx context.Context, topic string, maxResults int) (*SearchResult, error)
}

// HistoryStore keeps a bounded, insertion-ordered record of completed
// analyses. Insertion and capacity eviction are atomic.
type HistoryStore interface {
	Add(a Analysis)
	Recent(limit int) []Analysis
}

// ResultCache is a short-TTL store of analysis results keyed by
// (topic, count).
type ResultCache interface {
	// Get returns the entry for key if it is still within the TTL.
	Get(key string) (*AnalysisResult, bool)

	// GetStale returns the entry for key regardless of TTL, along with
	// its age. Used to serve recent data when the upstream is down.
	GetStale(key string) (*AnalysisResult, time.Duration, bool)

	Put(key string, result *AnalysisResult)
}
