package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"tweetpulse/internal/domain/sentiment"
)

// AnalysisStore is the optional Postgres adapter for analyses and
// cached results. The in-process stores remain authoritative; this
// exists so a deployment can keep recent analyses across restarts.
type AnalysisStore struct {
	db *pgxpool.Pool
}

// NewAnalysisStore creates a new analysis store.
func NewAnalysisStore(db *pgxpool.Pool) *AnalysisStore {
	return &AnalysisStore{db: db}
}

// SaveAnalysis persists a completed analysis.
func (s *AnalysisStore) SaveAnalysis(ctx context.Context, a sentiment.Analysis) error {
	query := `
		INSERT INTO analyses (
			id, topic, sentiment, positive, negative, neutral, tweets, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (id) DO NOTHING
	`

	tweetsJSON, err := json.Marshal(a.Tweets)
	if err != nil {
		return fmt.Errorf("error marshaling tweets: %w", err)
	}

	_, err = s.db.Exec(
		ctx,
		query,
		a.ID,
		a.Topic,
		string(a.Sentiment),
		a.Positive,
		a.Negative,
		a.Neutral,
		tweetsJSON,
		a.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// RecentAnalyses returns the most recently completed analyses, newest
// first.
func (s *AnalysisStore) RecentAnalyses(ctx context.Context, limit int) ([]sentiment.Analysis, error) {
	query := `
		SELECT id, topic, sentiment, positive, negative, neutral, tweets, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var analyses []sentiment.Analysis
	for rows.Next() {
		var a sentiment.Analysis
		var label string
		var tweetsJSON []byte

		if err := rows.Scan(
			&a.ID,
			&a.Topic,
			&label,
			&a.Positive,
			&a.Negative,
			&a.Neutral,
			&tweetsJSON,
			&a.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("error scanning analysis: %w", err)
		}

		a.Sentiment = sentiment.Label(label)
		if err := json.Unmarshal(tweetsJSON, &a.Tweets); err != nil {
			return nil, fmt.Errorf("error unmarshaling tweets: %w", err)
		}

		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}

	return analyses, nil
}

// SaveCacheEntry upserts a cached result under its request key. The
// timestamp is stored in epoch milliseconds.
func (s *AnalysisStore) SaveCacheEntry(ctx context.Context, key string, result *sentiment.AnalysisResult, timestampMillis int64) error {
	query := `
		INSERT INTO analysis_cache (key, payload, timestamp_ms)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET payload = $2, timestamp_ms = $3
	`

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error marshaling result: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, key, payload, timestampMillis); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetCacheEntry reads a cached result and its write timestamp (epoch
// milliseconds). Returns false when the key is absent.
func (s *AnalysisStore) GetCacheEntry(ctx context.Context, key string) (*sentiment.AnalysisResult, int64, bool, error) {
	query := `SELECT payload, timestamp_ms FROM analysis_cache WHERE key = $1`

	var payload []byte
	var timestampMillis int64

	err := s.db.QueryRow(ctx, query, key).Scan(&payload, &timestampMillis)
	if err == pgx.ErrNoRows {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("error querying cache entry: %w", err)
	}

	var result sentiment.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, 0, false, fmt.Errorf("error unmarshaling result: %w", err)
	}

	return &result, timestampMillis, true, nil
}
