package analysis

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"tweetpulse/internal/domain/sentiment"
)

// Template banks for synthesized post text, parameterized by topic.
var (
	positiveTemplates = []string{
		"I'm really impressed with %s! It's exceeded all my expectations.",
		"%s is absolutely amazing! Can't recommend it enough.",
		"Just had a great experience with %s. So happy!",
		"%s is a game-changer. Love what they're doing.",
		"The latest developments in %s are incredible. #excited",
	}

	neutralTemplates = []string{
		"%s seems okay. Not great, not terrible.",
		"I've been using %s for a while. It's alright.",
		"Not sure what to think about %s yet. Need more time.",
		"%s has some interesting features, but also some drawbacks.",
		"Anyone else have thoughts on %s? I'm on the fence.",
	}

	negativeTemplates = []string{
		"%s is disappointing. Expected much better.",
		"I'm frustrated with %s. So many issues to fix.",
		"Avoid %s if you can. Not worth the trouble.",
		"%s has really gone downhill lately. Sad to see.",
		"Can't believe how bad my experience with %s was. #avoid",
	}

	fallbackAuthors = []string{
		"techtrends", "dailyobserver", "marketwatcher", "trendspotter",
		"newsroundup", "opinionfeed", "citydesk", "weekendreader",
	}
)

// FallbackGenerator synthesizes analysis results when the upstream API
// is unavailable. The output carries the same schema as a real result;
// only the Fallback flag distinguishes it. The random source is
// injected so tests can pin the draws.
type FallbackGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallbackGenerator creates a generator backed by the given random
// source. Passing nil seeds one from the current time.
func NewFallbackGenerator(rng *rand.Rand) *FallbackGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FallbackGenerator{rng: rng}
}

// Generate produces a synthetic result for topic with exactly count
// posts. The distribution is drawn as positive in [30,60] and negative
// in [10,30], with neutral derived as the remainder so the shares sum
// to 100 like a real aggregation.
func (g *FallbackGenerator) Generate(topic string, count int) *sentiment.AnalysisResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	positive := 30 + g.rng.Intn(31)
	negative := 10 + g.rng.Intn(21)
	neutral := 100 - positive - negative

	posts := make([]sentiment.Post, 0, count)
	for i := 0; i < count; i++ {
		label, score := g.drawLabel(positive, negative)
		author := fallbackAuthors[g.rng.Intn(len(fallbackAuthors))]

		posts = append(posts, sentiment.Post{
			Text:      g.fillTemplate(label, topic),
			Sentiment: label,
			Score:     score,
			Metrics: sentiment.Metrics{
				RetweetCount: g.rng.Intn(200),
				ReplyCount:   g.rng.Intn(100),
				LikeCount:    g.rng.Intn(2000),
				QuoteCount:   g.rng.Intn(50),
			},
			CreatedAt:      g.recentTimestamp(),
			AuthorID:       fmt.Sprintf("%d", 100000+g.rng.Intn(900000)),
			AuthorName:     author,
			AuthorUsername: author,
		})
	}

	return &sentiment.AnalysisResult{
		Positive: positive,
		Negative: negative,
		Neutral:  neutral,
		Tweets:   posts,
		Fallback: true,
	}
}

// drawLabel picks a label by a uniform draw against the cumulative
// distribution and a display score inside that label's band.
func (g *FallbackGenerator) drawLabel(positive, negative int) (sentiment.Label, float64) {
	draw := g.rng.Float64() * 100
	switch {
	case draw < float64(positive):
		return sentiment.LabelPositive, 0.7 + g.rng.Float64()*0.3
	case draw < float64(positive+negative):
		return sentiment.LabelNegative, g.rng.Float64() * 0.3
	default:
		return sentiment.LabelNeutral, 0.3 + g.rng.Float64()*0.4
	}
}

func (g *FallbackGenerator) fillTemplate(label sentiment.Label, topic string) string {
	var templates []string
	switch label {
	case sentiment.LabelPositive:
		templates = positiveTemplates
	case sentiment.LabelNegative:
		templates = negativeTemplates
	default:
		templates = neutralTemplates
	}
	return fmt.Sprintf(templates[g.rng.Intn(len(templates))], topic)
}

// recentTimestamp returns a random time within the past 7 days.
func (g *FallbackGenerator) recentTimestamp() time.Time {
	offset := time.Duration(g.rng.Int63n(int64(7 * 24 * time.Hour)))
	return time.Now().Add(-offset)
}
