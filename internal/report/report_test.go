package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows() []storage.ReportRow {
	// top-by-score order: scores [20, 10, 5]
	return []storage.ReportRow{
		{Title: "high score", Author: "a1", URL: "https://example.com/1", Score: 20, Ups: 10, NumComments: 3, SubredditName: "r/Test", Date: "2023-11-14 22:13:20"},
		{Title: "mid score", Author: "a2", URL: "https://example.com/2", Score: 10, Ups: 5, NumComments: 9, SubredditName: "r/Test", Date: "2023-11-14 22:13:20"},
		{Title: "low score", Author: "a3", URL: "https://example.com/3", Score: 5, Ups: 20, NumComments: 1, SubredditName: "r/Test", Date: "2023-11-14 22:13:20"},
	}
}

func TestRankByUpsPutsHighestLast(t *testing.T) {
	view := rankBy(testRows(), func(r storage.ReportRow) int { return r.Ups })

	// sorted descending then reversed: the highest-ups post sits at the end of
	// the slice, which the chart draws topmost
	require.Len(t, view, 3)
	assert.Equal(t, 5, view[0].Ups)
	assert.Equal(t, 10, view[1].Ups)
	assert.Equal(t, 20, view[2].Ups)
}

func TestRankByCommentsPutsHighestLast(t *testing.T) {
	view := rankBy(testRows(), func(r storage.ReportRow) int { return r.NumComments })

	require.Len(t, view, 3)
	assert.Equal(t, 1, view[0].NumComments)
	assert.Equal(t, 3, view[1].NumComments)
	assert.Equal(t, 9, view[2].NumComments)
}

func TestRankByDoesNotMutateInput(t *testing.T) {
	rows := testRows()
	rankBy(rows, func(r storage.ReportRow) int { return r.Ups })
	assert.Equal(t, testRows(), rows)
}

func TestGenerateWritesTwoPanelReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactive_report.html")
	gen := &Generator{OutPath: path}

	require.NoError(t, gen.Generate(testRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "Top 10 Reddit Posts for r/Test")
	assert.Contains(t, html, "Most Upvoted Posts")
	assert.Contains(t, html, "Most Commented Posts")
	assert.Contains(t, html, "No. of Upvotes")
	assert.Contains(t, html, "No. of Comments")
	assert.Contains(t, html, "Post Title")
	assert.Contains(t, html, "https://example.com/1")
	assert.Contains(t, html, "back-button")
	assert.Contains(t, html, `href="/"`)
}

func TestGenerateEmptyTableFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactive_report.html")
	gen := &Generator{OutPath: path}

	require.NoError(t, gen.Generate(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "Top 10 Reddit Posts for Reddit")
	assert.Contains(t, html, "Most Upvoted Posts")
	assert.Contains(t, html, "Most Commented Posts")
}

func TestGenerateOverwritesPreviousReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactive_report.html")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	gen := &Generator{OutPath: path}
	require.NoError(t, gen.Generate(testRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}
