package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"tweetpulse/internal/domain/sentiment"
)

// Requested-count bounds for one analysis.
const (
	MinCount = 10
	MaxCount = 100
)

// DurableStore persists analyses and cache entries beyond process
// memory. Optional; the in-process stores stay authoritative.
type DurableStore interface {
	SaveAnalysis(ctx context.Context, a sentiment.Analysis) error
	SaveCacheEntry(ctx context.Context, key string, result *sentiment.AnalysisResult, timestampMillis int64) error
}

// ServiceConfig contains configuration for the analysis service.
type ServiceConfig struct {
	// MinRequestInterval is the self-imposed spacing between upstream
	// calls. A request arriving earlier waits out the remainder.
	MinRequestInterval time.Duration

	// FallbackEnabled turns the degraded mode on. When off, upstream
	// failures surface as errors instead.
	FallbackEnabled bool

	// FallbackOnRateLimit routes rate-limit responses to the fallback
	// generator instead of surfacing a wait-time error.
	FallbackOnRateLimit bool

	// EventsTopic is the NATS subject completed analyses are published
	// on when an event bus is configured.
	EventsTopic string
}

// Service runs the sentiment pipeline: validation, cache check,
// throttled upstream fetch, normalization, scoring, classification,
// aggregation, and the cache/history writes. Each request runs its
// stages sequentially; requests themselves run concurrently.
type Service struct {
	searcher sentiment.Searcher
	cache    sentiment.ResultCache
	history  sentiment.HistoryStore
	durable  DurableStore
	fallback *FallbackGenerator
	eventBus *nats.Conn
	config   ServiceConfig

	throttleMu  sync.Mutex
	lastRequest time.Time
}

// NewService creates a new analysis service. durable and eventBus may
// be nil when persistence and event publishing are not configured.
func NewService(
	searcher sentiment.Searcher,
	resultCache sentiment.ResultCache,
	history sentiment.HistoryStore,
	durable DurableStore,
	fallback *FallbackGenerator,
	eventBus *nats.Conn,
	config ServiceConfig,
) *Service {
	return &Service{
		searcher: searcher,
		cache:    resultCache,
		history:  history,
		durable:  durable,
		fallback: fallback,
		eventBus: eventBus,
		config:   config,
	}
}

// Analyze runs one full pipeline pass for topic. Counts outside
// [MinCount,MaxCount] are rejected, not clamped.
func (s *Service) Analyze(ctx context.Context, topic string, count int) (*sentiment.AnalysisResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("please enter a valid topic: %w", sentiment.ErrInvalidInput)
	}
	if count < MinCount || count > MaxCount {
		return nil, fmt.Errorf("tweet count must be between %d and %d: %w", MinCount, MaxCount, sentiment.ErrInvalidInput)
	}

	key := sentiment.CacheKey(topic, count)
	if cached, ok := s.cache.Get(key); ok {
		return cachedCopy(cached), nil
	}

	s.throttle()

	search, err := s.searcher.Search(ctx, topic, count)
	if err != nil {
		return s.handleUpstreamError(topic, count, key, err)
	}

	posts := s.process(search)

	result, err := Aggregate(posts)
	if err != nil {
		// Items came back but nothing survived normalization.
		return s.degrade(topic, count, key, err)
	}

	s.commit(ctx, topic, key, result)
	return result, nil
}

// RecentAnalyses returns at most limit most recently completed
// analyses, newest first. A non-positive limit defaults to 10.
func (s *Service) RecentAnalyses(ctx context.Context, limit int) ([]sentiment.Analysis, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.history.Recent(limit), nil
}

// throttle enforces the minimum spacing between upstream calls. The
// wait never exceeds the configured interval.
func (s *Service) throttle() {
	s.throttleMu.Lock()
	defer s.throttleMu.Unlock()

	if wait := s.config.MinRequestInterval - time.Since(s.lastRequest); wait > 0 {
		time.Sleep(wait)
	}
	s.lastRequest = time.Now()
}

// process runs upstream items through normalization, scoring and
// classification. Items that fail the length filter are dropped
// silently; survivor order matches upstream response order.
func (s *Service) process(search *sentiment.SearchResult) []sentiment.Post {
	var posts []sentiment.Post
	for _, item := range search.Items {
		if item.Lang != "" && item.Lang != "en" {
			continue
		}

		normalized := Normalize(item.Text)
		if !Analyzable(normalized) {
			continue
		}

		score := Score(normalized)

		author, ok := search.Authors[item.AuthorID]
		if !ok {
			author = sentiment.Author{ID: item.AuthorID, Name: "Unknown User", Username: "unknown"}
		}

		posts = append(posts, sentiment.Post{
			Text:           item.Text,
			Sentiment:      Classify(score),
			Score:          NormalizeScore(score),
			Metrics:        item.Metrics,
			CreatedAt:      item.CreatedAt,
			AuthorID:       item.AuthorID,
			AuthorName:     author.Name,
			AuthorUsername: author.Username,
		})
	}
	return posts
}

// handleUpstreamError decides between surfacing an upstream failure
// and degrading to cached or synthesized data.
func (s *Service) handleUpstreamError(topic string, count int, key string, err error) (*sentiment.AnalysisResult, error) {
	var rateErr *sentiment.RateLimitError
	if errors.As(err, &rateErr) && !s.config.FallbackOnRateLimit {
		return nil, rateErr
	}
	return s.degrade(topic, count, key, err)
}

// degrade serves a stale cache entry if one exists, otherwise a
// synthesized result. Degraded completions are successes, not errors,
// and are never written back to the cache or history.
func (s *Service) degrade(topic string, count int, key string, cause error) (*sentiment.AnalysisResult, error) {
	if !s.config.FallbackEnabled {
		return nil, cause
	}

	log.Printf("Degraded mode for topic %q: %v", topic, cause)

	if stale, age, ok := s.cache.GetStale(key); ok {
		served := cachedCopy(stale)
		served.CacheAgeMinutes = int(age / time.Minute)
		return served, nil
	}

	return s.fallback.Generate(topic, count), nil
}

// cachedCopy returns a served view of a cache entry. The posts slice is
// copied so callers mutating the response cannot poison later hits.
func cachedCopy(cached *sentiment.AnalysisResult) *sentiment.AnalysisResult {
	served := *cached
	served.Tweets = append([]sentiment.Post(nil), cached.Tweets...)
	served.Cached = true
	return &served
}

// commit records a successful real result: cache write, history
// append, optional durable write and completion event.
func (s *Service) commit(ctx context.Context, topic, key string, result *sentiment.AnalysisResult) {
	s.cache.Put(key, result)

	record := sentiment.Analysis{
		ID:        newAnalysisID(),
		Topic:     topic,
		Timestamp: time.Now(),
		Sentiment: result.Dominant(),
		Positive:  result.Positive,
		Negative:  result.Negative,
		Neutral:   result.Neutral,
		Tweets:    result.Tweets,
	}
	s.history.Add(record)

	if s.durable != nil {
		if err := s.durable.SaveAnalysis(ctx, record); err != nil {
			log.Printf("Failed to persist analysis: %v", err)
		}
		if err := s.durable.SaveCacheEntry(ctx, key, result, record.Timestamp.UnixMilli()); err != nil {
			log.Printf("Failed to persist cache entry: %v", err)
		}
	}

	s.publishCompleted(record)
}

// publishCompleted emits the analysis on the event bus for websocket
// subscribers. Best effort; a publish failure never fails the request.
func (s *Service) publishCompleted(record sentiment.Analysis) {
	if s.eventBus == nil || s.config.EventsTopic == "" {
		return
	}

	payload, err := json.Marshal(record)
	if err != nil {
		log.Printf("Failed to marshal analysis event: %v", err)
		return
	}
	if err := s.eventBus.Publish(s.config.EventsTopic, payload); err != nil {
		log.Printf("Failed to publish analysis event: %v", err)
	}
}

// newAnalysisID returns a time-derived ID with a short random suffix
// so same-millisecond completions stay unique.
func newAnalysisID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
