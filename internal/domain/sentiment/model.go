package sentiment

import (
	"time"
)

// Label is a sentiment category assigned to a post or an analysis.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Metrics holds the engagement counters attached to a post.
type Metrics struct {
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	LikeCount    int `json:"like_count"`
	QuoteCount   int `json:"quote_count"`
}

// Post is a single analyzed post. Score is the display score normalized
// to [0,1]; Sentiment is derived from the raw lexicon score before
// normalization. Posts are never mutated after creation.
type Post struct {
	Text           string    `json:"text"`
	Sentiment      Label     `json:"sentiment"`
	Score          float64   `json:"score"`
	Metrics        Metrics   `json:"metrics"`
	CreatedAt      time.Time `json:"createdAt"`
	AuthorID       string    `json:"authorId"`
	AuthorName     string    `json:"authorName"`
	AuthorUsername string    `json:"authorUsername"`
}

// AnalysisResult is the outcome of one pipeline run. Positive, Negative
// and Neutral are percentages that always sum to exactly 100. Tweets
// preserves upstream order after filtering.
type AnalysisResult struct {
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
	Tweets   []Post `json:"tweets"`

	// Cached and CacheAgeMinutes are set only when the result was served
	// from the cache instead of a fresh upstream fetch.
	Cached          bool `json:"cached,omitempty"`
	CacheAgeMinutes int  `json:"cacheAge,omitempty"`

	// Fallback marks a synthesized result produced while the upstream
	// API was unavailable. The shape is identical to a real result.
	Fallback bool `json:"fallback,omitempty"`
}

// Dominant returns the label with the strict plurality among the three
// percentages. Neutral wins all ties.
func (r *AnalysisResult) Dominant() Label {
	switch {
	case r.Positive > r.Negative && r.Positive > r.Neutral:
		return LabelPositive
	case r.Negative > r.Positive && r.Negative > r.Neutral:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Analysis is a completed analysis as recorded in history.
type Analysis struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
	Sentiment Label     `json:"sentiment"`
	Positive  int       `json:"positive"`
	Negative  int       `json:"negative"`
	Neutral   int       `json:"neutral"`
	Tweets    []Post    `json:"tweets"`
}

// RawPost is an item as returned by the upstream search API, before
// normalization and scoring.
type RawPost struct {
	ID        string
	Text      string
	Lang      string
	CreatedAt time.Time
	Metrics   Metrics
	AuthorID  string
}

// Author is an entry in the upstream author side-table.
type Author struct {
	ID       string
	Name     string
	Username string
}

// SearchResult is the upstream response: items in response order plus
// the author records needed to resolve them.
type SearchResult struct {
	Items   []RawPost
	Authors map[string]Author
}
