package domain

import (
	"context"
	"encoding/json"
)

// RawPost is the untyped `data` object of one listing child. The transformer
// reads a fixed subset of its fields; anything else the API sends is ignored.
type RawPost map[string]json.RawMessage

// Listing mirrors Reddit's JSON envelope: { data: { children: [ { data: {...} } ] } }
type Listing struct {
	Data struct {
		Children []struct {
			Data RawPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Posts unwraps the listing children into their inner data objects.
func (l *Listing) Posts() []RawPost {
	posts := make([]RawPost, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		posts = append(posts, child.Data)
	}
	return posts
}

// PostRow is the flat, typed shape loaded into the posts table.
type PostRow struct {
	ID            string  `json:"id"`
	Score         int     `json:"score"`
	Ups           int     `json:"ups"`
	Downs         int     `json:"downs"`
	UpvoteRatio   float64 `json:"upvote_ratio"`
	NumComments   int     `json:"num_comments"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Permalink     string  `json:"permalink"`
	SubredditName string  `json:"subreddit_name_prefixed"`
	URL           string  `json:"url"`
	CreatedUTC    int64   `json:"created_utc"`
}

// Subreddit is one entry of the popular-subreddit directory.
type Subreddit struct {
	Name        string `json:"name"`
	Subscribers int    `json:"subscribers"`
	Title       string `json:"title"`
}

// Fetcher defines the interface for data fetching.
type Fetcher interface {
	FetchTopPosts(ctx context.Context, subreddit string, limit int) ([]RawPost, error)
	FetchPopularSubreddits(ctx context.Context, limit int) ([]Subreddit, error)
}
