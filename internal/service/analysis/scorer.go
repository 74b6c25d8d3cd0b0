package analysis

import (
	"strings"

	"github.com/reiver/go-porterstemmer"
)

// Score computes the signed lexicon score of normalized text: the text
// is lower-cased, split on whitespace runs, each token is stemmed, and
// the matching polarity weights are averaged over all tokens. Unknown
// tokens contribute zero weight but still count toward the mean, so
// scores stay within the lexicon's [-5,5] weight range for any input.
// Deterministic: the same text always produces the same score.
func Score(text string) float64 {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	for _, token := range tokens {
		token = strings.Trim(token, ".,!?;:'\"()")
		if token == "" {
			continue
		}
		if weight, ok := lexicon[porterstemmer.StemString(token)]; ok {
			sum += weight
		}
	}
	return sum / float64(len(tokens))
}
