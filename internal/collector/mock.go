package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"
)

// MockClient implements domain.Fetcher but returns fake data
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) FetchTopPosts(ctx context.Context, sub string, limit int) ([]domain.RawPost, error) {
	sub = strings.TrimPrefix(sub, "r/")
	var posts []domain.RawPost
	for i := 0; i < limit; i++ {
		row := domain.PostRow{
			ID:            fmt.Sprintf("mock_%s_%d", sub, i),
			Score:         rand.Intn(500),
			Ups:           rand.Intn(500),
			Downs:         0,
			UpvoteRatio:   0.9,
			NumComments:   rand.Intn(50),
			Title:         fmt.Sprintf("[%s] Simulated Top Post #%d", sub, i),
			Author:        "simulated_user",
			Permalink:     fmt.Sprintf("/r/%s/comments/mock_%d", sub, i),
			SubredditName: "r/" + sub,
			URL:           "http://localhost/mock-url",
			CreatedUTC:    time.Now().Unix(),
		}
		posts = append(posts, RawFromRow(row))
	}
	return posts, nil
}

func (mc *MockClient) FetchPopularSubreddits(ctx context.Context, limit int) ([]domain.Subreddit, error) {
	var subs []domain.Subreddit
	for i := 0; i < limit; i++ {
		subs = append(subs, domain.Subreddit{
			Name:        fmt.Sprintf("r/mock%d", i),
			Subscribers: rand.Intn(1_000_000),
			Title:       fmt.Sprintf("Mock Subreddit %d", i),
		})
	}
	return subs, nil
}

// RawFromRow rebuilds the untyped API shape from a typed row. Shared with tests.
func RawFromRow(row domain.PostRow) domain.RawPost {
	data, _ := json.Marshal(row)
	var raw domain.RawPost
	_ = json.Unmarshal(data, &raw)
	return raw
}
