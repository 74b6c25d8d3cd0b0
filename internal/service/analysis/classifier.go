package analysis

import (
	"tweetpulse/internal/domain/sentiment"
)

// Classification thresholds. The dead zone around zero absorbs lexicon
// noise from short, mixed-valence text.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Assumed lexicon score range used for display normalization.
const (
	scoreRangeMin = -5.0
	scoreRangeMax = 5.0
)

// Classify maps a signed lexicon score to a sentiment label. Scores of
// exactly ±0.1 fall inside the dead zone and classify as neutral.
func Classify(score float64) sentiment.Label {
	switch {
	case score > positiveThreshold:
		return sentiment.LabelPositive
	case score < negativeThreshold:
		return sentiment.LabelNegative
	default:
		return sentiment.LabelNeutral
	}
}

// NormalizeScore maps a signed score linearly from [-5,5] to [0,1] for
// display. The lexicon range is not a hard bound, so the result is
// clamped to keep the [0,1] invariant for outliers.
func NormalizeScore(score float64) float64 {
	normalized := (score - scoreRangeMin) / (scoreRangeMax - scoreRangeMin)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}
