package analysis

import (
	"math"

	"tweetpulse/internal/domain/sentiment"
)

// Aggregate counts the labels of a classified batch and converts them
// to percentage shares. Positive and negative are rounded
// independently; neutral is derived as the remainder, which is what
// guarantees the three always sum to exactly 100. An empty batch
// returns ErrNoAnalyzableContent so the caller can decide between
// fallback and error.
func Aggregate(posts []sentiment.Post) (*sentiment.AnalysisResult, error) {
	if len(posts) == 0 {
		return nil, sentiment.ErrNoAnalyzableContent
	}

	var positiveCount, negativeCount int
	for _, p := range posts {
		switch p.Sentiment {
		case sentiment.LabelPositive:
			positiveCount++
		case sentiment.LabelNegative:
			negativeCount++
		}
	}

	total := float64(len(posts))
	positive := int(math.Round(float64(positiveCount) / total * 100))
	negative := int(math.Round(float64(negativeCount) / total * 100))

	// Both shares rounding up at .5 can push the remainder below zero
	// when no post is neutral. The overshoot comes out of the larger
	// share so every value stays in [0,100].
	neutral := 100 - positive - negative
	if neutral < 0 {
		if positive >= negative {
			positive += neutral
		} else {
			negative += neutral
		}
		neutral = 0
	}

	return &sentiment.AnalysisResult{
		Positive: positive,
		Negative: negative,
		Neutral:  neutral,
		Tweets:   posts,
	}, nil
}
