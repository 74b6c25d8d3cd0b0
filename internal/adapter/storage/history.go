package storage

import (
	"sync"

	"tweetpulse/internal/domain/sentiment"
)

// HistoryStore keeps a bounded, insertion-ordered record of completed
// analyses, newest first. Records are only inserted and evicted, never
// updated. Constructed once at process start and injected into the
// service so tests get isolated instances.
type HistoryStore struct {
	mu       sync.RWMutex
	analyses []sentiment.Analysis
	capacity int
}

// NewHistoryStore creates a history store holding at most capacity
// records.
func NewHistoryStore(capacity int) *HistoryStore {
	return &HistoryStore{capacity: capacity}
}

// Add prepends a record, evicting the oldest if the store is full.
// Insertion and eviction happen under one lock so the store never
// exceeds capacity under concurrent inserts.
func (s *HistoryStore) Add(a sentiment.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analyses = append([]sentiment.Analysis{a}, s.analyses...)
	if len(s.analyses) > s.capacity {
		s.analyses = s.analyses[:s.capacity]
	}
}

// Recent returns at most limit records, newest first.
func (s *HistoryStore) Recent(limit int) []sentiment.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.analyses) {
		limit = len(s.analyses)
	}

	out := make([]sentiment.Analysis, limit)
	copy(out, s.analyses[:limit])
	return out
}
