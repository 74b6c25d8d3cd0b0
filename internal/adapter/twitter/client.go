package twitter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
	twitter "github.com/g8rswimmer/go-twitter/v2"

	"tweetpulse/internal/domain/sentiment"
)

const apiHost = "https://api.twitter.com"

// Credentials holds the OAuth1 user-context credentials for the
// Twitter v2 API.
type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// Valid reports whether all four credentials are present.
func (c Credentials) Valid() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// transportAuthorizer satisfies the twitter.Authorizer interface. The
// request is already signed by the oauth1 transport, so nothing is
// added here.
type transportAuthorizer struct{}

func (transportAuthorizer) Add(req *http.Request) {}

// Client is the upstream search collaborator built on the Twitter v2
// recent-search endpoint.
type Client struct {
	creds Credentials
	api   *twitter.Client
}

// NewClient creates a search client. With missing credentials the
// client still constructs, but Search reports ErrUpstreamAuth so the
// pipeline can route to its fallback.
func NewClient(creds Credentials) *Client {
	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	return &Client{
		creds: creds,
		api: &twitter.Client{
			Authorizer: transportAuthorizer{},
			Client:     config.Client(oauth1.NoContext, token),
			Host:       apiHost,
		},
	}
}

// buildQuery constructs the search query for a topic: hashtags pass
// through as-is, plain topics are wrapped in parentheses; both exclude
// retweets and replies and restrict to English.
func buildQuery(topic string) string {
	if len(topic) > 0 && topic[0] == '#' {
		return fmt.Sprintf("%s -is:retweet -is:reply lang:en", topic)
	}
	return fmt.Sprintf("(%s) -is:retweet -is:reply lang:en", topic)
}

// Search fetches up to maxResults recent posts mentioning topic along
// with the author side-table. Auth failures, rate limits and empty
// responses map onto the domain error taxonomy.
func (c *Client) Search(ctx context.Context, topic string, maxResults int) (*sentiment.SearchResult, error) {
	if !c.creds.Valid() {
		return nil, fmt.Errorf("twitter credentials not configured: %w", sentiment.ErrUpstreamAuth)
	}

	if maxResults > 100 {
		maxResults = 100
	}

	opts := twitter.TweetRecentSearchOpts{
		MaxResults: maxResults,
		TweetFields: []twitter.TweetField{
			twitter.TweetFieldCreatedAt,
			twitter.TweetFieldPublicMetrics,
			twitter.TweetFieldLanguage,
			twitter.TweetFieldAuthorID,
		},
		UserFields: []twitter.UserField{
			twitter.UserFieldUserName,
			twitter.UserFieldName,
		},
		Expansions: []twitter.Expansion{
			twitter.ExpansionAuthorID,
		},
	}

	rsp, err := c.api.TweetRecentSearch(ctx, buildQuery(topic), opts)
	if err != nil {
		return nil, mapError(err)
	}

	if rsp.Raw == nil || len(rsp.Raw.Tweets) == 0 {
		return nil, sentiment.ErrNoResults
	}

	authors := make(map[string]sentiment.Author)
	if rsp.Raw.Includes != nil {
		for _, u := range rsp.Raw.Includes.Users {
			if u == nil {
				continue
			}
			authors[u.ID] = sentiment.Author{
				ID:       u.ID,
				Name:     u.Name,
				Username: u.UserName,
			}
		}
	}

	items := make([]sentiment.RawPost, 0, len(rsp.Raw.Tweets))
	for _, t := range rsp.Raw.Tweets {
		if t == nil {
			continue
		}

		item := sentiment.RawPost{
			ID:        t.ID,
			Text:      t.Text,
			Lang:      t.Language,
			CreatedAt: parseCreatedAt(t.CreatedAt),
			AuthorID:  t.AuthorID,
		}
		if t.PublicMetrics != nil {
			item.Metrics = sentiment.Metrics{
				RetweetCount: t.PublicMetrics.Retweets,
				ReplyCount:   t.PublicMetrics.Replies,
				LikeCount:    t.PublicMetrics.Likes,
				QuoteCount:   t.PublicMetrics.Quotes,
			}
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, sentiment.ErrNoResults
	}

	return &sentiment.SearchResult{Items: items, Authors: authors}, nil
}

// parseCreatedAt parses the upstream RFC3339 timestamp. A malformed
// value falls back to the current time rather than a zero time, which
// downstream consumers would render as year 1.
func parseCreatedAt(value string) time.Time {
	createdAt, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Printf("Failed to parse tweet timestamp %q: %v", value, err)
		return time.Now()
	}
	return createdAt
}

// mapError converts Twitter API errors into the domain taxonomy.
func mapError(err error) error {
	var errRsp *twitter.ErrorResponse
	if errors.As(err, &errRsp) {
		switch errRsp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("twitter API status %d: %w", errRsp.StatusCode, sentiment.ErrUpstreamAuth)
		case http.StatusTooManyRequests:
			rateErr := &sentiment.RateLimitError{}
			if errRsp.RateLimit != nil {
				rateErr.ResetAt = errRsp.RateLimit.Reset.Time()
			}
			return rateErr
		}
	}
	return fmt.Errorf("twitter search: %w", err)
}
