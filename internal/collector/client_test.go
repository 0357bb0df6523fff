package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingBody = `{
	"data": {
		"children": [
			{"data": {"id": "p1", "score": 10, "title": "first"}},
			{"data": {"id": "p2", "score": 5, "title": "second"}}
		]
	}
}`

func TestFetchTopPostsNormalizesSubreddit(t *testing.T) {
	var gotPath, gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(listingBody))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "test-agent/1.0", "year")
	require.NoError(t, err)

	posts, err := client.FetchTopPosts(context.Background(), "r/Test", 100)
	require.NoError(t, err)

	assert.Equal(t, "/r/Test/top.json", gotPath)
	assert.Equal(t, "limit=100&t=year", gotQuery)
	assert.Equal(t, "test-agent/1.0", gotUA)

	require.Len(t, posts, 2)
	assert.JSONEq(t, `"p1"`, string(posts[0]["id"]))
	assert.JSONEq(t, `"p2"`, string(posts[1]["id"]))
}

func TestFetchTopPostsWithoutPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(listingBody))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "test-agent/1.0", "year")
	require.NoError(t, err)

	_, err = client.FetchTopPosts(context.Background(), "Test", 100)
	require.NoError(t, err)
	assert.Equal(t, "/r/Test/top.json", gotPath)
}

func TestNewClientRequiresUserAgent(t *testing.T) {
	_, err := NewClient("https://www.reddit.com", "", "year")
	assert.Error(t, err)
}

func TestFetchTopPostsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "test-agent/1.0", "year")
	require.NoError(t, err)

	_, err = client.FetchTopPosts(context.Background(), "Test", 100)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrNetwork))
}

func TestFetchTopPostsBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "test-agent/1.0", "year")
	require.NoError(t, err)

	_, err = client.FetchTopPosts(context.Background(), "Test", 100)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrSchema))
}

func TestFetchPopularSubreddits(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"data": {"children": [
				{"data": {"display_name_prefixed": "r/golang", "subscribers": 250000, "title": "Go"}},
				{"data": {"display_name_prefixed": "r/India", "subscribers": 1000000, "title": "India"}}
			]}
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "test-agent/1.0", "year")
	require.NoError(t, err)

	subs, err := client.FetchPopularSubreddits(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, "/subreddits/popular.json", gotPath)
	require.Len(t, subs, 2)
	assert.Equal(t, domain.Subreddit{Name: "r/golang", Subscribers: 250000, Title: "Go"}, subs[0])
}

func TestMockClientSatisfiesFetcher(t *testing.T) {
	var _ domain.Fetcher = NewMockClient()

	posts, err := NewMockClient().FetchTopPosts(context.Background(), "Test", 3)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}
