package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDeterministic(t *testing.T) {
	text := "I love this product, great experience overall"
	assert.Equal(t, Score(text), Score(text))
}

func TestScorePolarity(t *testing.T) {
	assert.Greater(t, Score("I love this product, great experience overall"), 0.0)
	assert.Less(t, Score("I hate the awful delays, bad experience"), 0.0)
	assert.Equal(t, 0.0, Score("the committee meets on tuesday to review the schedule"))
}

func TestScoreUnknownTokensContributeZero(t *testing.T) {
	// Same lexicon hits, more unknown tokens: the mean shrinks but the
	// sign is unchanged.
	short := Score("love it")
	long := Score("love it although the delivery window was quite ordinary")
	assert.Greater(t, short, long)
	assert.Greater(t, long, 0.0)
}

func TestScoreStemmingCollapsesInflections(t *testing.T) {
	// loved/loves/loving all reduce to the same root as love.
	base := Score("love")
	assert.Equal(t, base, Score("loved"))
	assert.Equal(t, base, Score("loves"))
	assert.Equal(t, base, Score("loving"))
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, Score("GREAT stuff"), Score("great stuff"))
}

func TestScoreEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Score(""))
	assert.Equal(t, 0.0, Score("   "))
}

func TestScoreWithinLexiconRange(t *testing.T) {
	// The mean over tokens cannot leave the weight range.
	texts := []string{
		"outstanding superb thrilled wonderful amazing",
		"terrible horrible awful hate worst",
		"I love this product, great experience overall",
	}
	for _, text := range texts {
		score := Score(text)
		assert.GreaterOrEqual(t, score, -5.0)
		assert.LessOrEqual(t, score, 5.0)
	}
}
