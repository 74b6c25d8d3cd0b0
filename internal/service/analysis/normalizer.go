package analysis

import (
	"regexp"
	"strings"
)

// MinTextLength is the minimum length of normalized text worth scoring.
// Shorter residues give unreliable lexicon scores and are excluded.
const MinTextLength = 10

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	hashtagPattern = regexp.MustCompile(`#\w+`)
)

// Normalize strips URLs, mentions and hashtags from raw post text and
// trims surrounding whitespace. It always returns a string; the caller
// decides whether the residue is long enough to analyze.
func Normalize(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = hashtagPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Analyzable reports whether normalized text is long enough to score.
func Analyzable(normalized string) bool {
	return len(normalized) >= MinTextLength
}
