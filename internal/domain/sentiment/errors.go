package sentiment

import (
	"errors"
	"fmt"
	"time"
)

// Common errors surfaced by the analysis pipeline.
var (
	// ErrInvalidInput means the topic or count failed validation. It is
	// surfaced to the caller immediately and never cached.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamAuth means the upstream credentials are missing or were
	// rejected. Triggers the fallback path.
	ErrUpstreamAuth = errors.New("upstream authentication failed")

	// ErrNoResults means the upstream search returned no usable items.
	// Triggers the fallback path.
	ErrNoResults = errors.New("no results from upstream")

	// ErrNoAnalyzableContent means items were returned but none survived
	// normalization. Triggers the fallback path.
	ErrNoAnalyzableContent = errors.New("no analyzable content")
)

// RateLimitError is returned when the upstream API rejects a call with a
// rate-limit response. ResetAt is zero when the upstream did not report
// a reset time.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	wait := e.WaitMinutes()
	if wait <= 0 {
		return "twitter API rate limit reached, please try again later"
	}
	return fmt.Sprintf("twitter API rate limit reached, please try again in %d minute(s)", wait)
}

// WaitMinutes returns the whole minutes, rounded up, until the limit
// resets. Returns 0 when no reset time is known or it has passed.
func (e *RateLimitError) WaitMinutes() int {
	if e.ResetAt.IsZero() {
		return 0
	}
	wait := time.Until(e.ResetAt)
	if wait <= 0 {
		return 0
	}
	return int((wait + time.Minute - 1) / time.Minute)
}
