package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"
	"golang.org/x/time/rate"
)

// Client fetches listings from Reddit's public JSON endpoints. No OAuth:
// the public endpoints only demand a real User-Agent header.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	timeWindow string
}

// NewClient requires a userAgent string: Reddit classifies default or empty
// user agents as abusive and fails the request.
func NewClient(baseURL, userAgent, timeWindow string) (*Client, error) {
	if userAgent == "" {
		return nil, fmt.Errorf("a non-empty user agent is required for public Reddit access")
	}
	if timeWindow == "" {
		timeWindow = "year"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		// Public JSON Limit: 1 req / 2 seconds (Stricter)
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  userAgent,
		timeWindow: timeWindow,
	}, nil
}

// FetchTopPosts returns the raw post objects of the top listing for one
// subreddit over the configured time window. A leading "r/" on the subreddit
// name is accepted and stripped.
func (c *Client) FetchTopPosts(ctx context.Context, subreddit string, limit int) ([]domain.RawPost, error) {
	sub := strings.TrimPrefix(subreddit, "r/")
	url := fmt.Sprintf("%s/r/%s/top.json?limit=%d&t=%s", c.baseURL, sub, limit, c.timeWindow)

	var listing domain.Listing
	if err := c.getJSON(ctx, url, &listing); err != nil {
		return nil, err
	}
	return listing.Posts(), nil
}

// FetchPopularSubreddits returns the popular-subreddit directory entries.
func (c *Client) FetchPopularSubreddits(ctx context.Context, limit int) ([]domain.Subreddit, error) {
	url := fmt.Sprintf("%s/subreddits/popular.json?limit=%d", c.baseURL, limit)

	var listing struct {
		Data struct {
			Children []struct {
				Data struct {
					Name        string `json:"display_name_prefixed"`
					Subscribers int    `json:"subscribers"`
					Title       string `json:"title"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, url, &listing); err != nil {
		return nil, err
	}

	subs := make([]domain.Subreddit, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		subs = append(subs, domain.Subreddit{
			Name:        child.Data.Name,
			Subscribers: child.Data.Subscribers,
			Title:       child.Data.Title,
		})
	}
	return subs, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.NewAppError(domain.ErrNetwork, "rate limiter interrupted", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.NewAppError(domain.ErrNetwork, "building request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewAppError(domain.ErrNetwork, "reddit request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewAppError(domain.ErrNetwork,
			fmt.Sprintf("reddit public access status: %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewAppError(domain.ErrSchema, "unexpected listing shape", err)
	}
	return nil
}
