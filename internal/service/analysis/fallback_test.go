package analysis

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetpulse/internal/domain/sentiment"
)

func TestFallbackGenerateDistributionBounds(t *testing.T) {
	gen := NewFallbackGenerator(rand.New(rand.NewSource(1)))

	for i := 0; i < 50; i++ {
		result := gen.Generate("golang", 10)

		assert.GreaterOrEqual(t, result.Positive, 30)
		assert.LessOrEqual(t, result.Positive, 60)
		assert.GreaterOrEqual(t, result.Negative, 10)
		assert.LessOrEqual(t, result.Negative, 30)
		assert.GreaterOrEqual(t, result.Neutral, 0)
		assert.Equal(t, 100, result.Positive+result.Negative+result.Neutral)
	}
}

func TestFallbackGeneratePosts(t *testing.T) {
	gen := NewFallbackGenerator(rand.New(rand.NewSource(42)))

	result := gen.Generate("electric cars", 25)

	require.Len(t, result.Tweets, 25)
	assert.True(t, result.Fallback)
	assert.False(t, result.Cached)

	for _, post := range result.Tweets {
		assert.Contains(t, post.Text, "electric cars")
		assert.NotEmpty(t, post.AuthorID)
		assert.NotEmpty(t, post.AuthorUsername)
		assert.Equal(t, post.AuthorName, post.AuthorUsername)

		// Display scores stay inside the band for their label.
		switch post.Sentiment {
		case sentiment.LabelPositive:
			assert.GreaterOrEqual(t, post.Score, 0.7)
			assert.LessOrEqual(t, post.Score, 1.0)
		case sentiment.LabelNegative:
			assert.GreaterOrEqual(t, post.Score, 0.0)
			assert.LessOrEqual(t, post.Score, 0.3)
		case sentiment.LabelNeutral:
			assert.GreaterOrEqual(t, post.Score, 0.3)
			assert.LessOrEqual(t, post.Score, 0.7)
		default:
			t.Fatalf("unexpected label %q", post.Sentiment)
		}
	}
}

func TestFallbackGenerateTimestamps(t *testing.T) {
	gen := NewFallbackGenerator(rand.New(rand.NewSource(7)))

	now := time.Now()
	result := gen.Generate("weather", 10)

	for _, post := range result.Tweets {
		assert.False(t, post.CreatedAt.After(now.Add(time.Second)))
		assert.True(t, post.CreatedAt.After(now.Add(-7*24*time.Hour-time.Second)))
	}
}

func TestFallbackGenerateTemplateMatchesLabel(t *testing.T) {
	gen := NewFallbackGenerator(rand.New(rand.NewSource(3)))

	result := gen.Generate("coffee", 40)

	for _, post := range result.Tweets {
		var bank []string
		switch post.Sentiment {
		case sentiment.LabelPositive:
			bank = positiveTemplates
		case sentiment.LabelNegative:
			bank = negativeTemplates
		default:
			bank = neutralTemplates
		}

		matched := false
		for _, tpl := range bank {
			prefix := tpl[:strings.Index(tpl, "%s")]
			if strings.HasPrefix(post.Text, prefix) && strings.Contains(post.Text, "coffee") {
				matched = true
				break
			}
		}
		assert.True(t, matched, "text %q does not match any %s template", post.Text, post.Sentiment)
	}
}
