package transform

import (
	"encoding/json"
	"fmt"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"
)

// Transform projects raw posts into typed rows, one per post, in input order.
// A missing required field on any post aborts the whole batch with a
// SCHEMA_MISMATCH error; nothing from a bad batch may reach the store.
func Transform(rawPosts []domain.RawPost) ([]domain.PostRow, error) {
	rows := make([]domain.PostRow, 0, len(rawPosts))
	for i, raw := range rawPosts {
		row, err := toRow(raw)
		if err != nil {
			return nil, domain.NewAppError(domain.ErrSchema,
				fmt.Sprintf("post %d", i), err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toRow(raw domain.RawPost) (domain.PostRow, error) {
	var row domain.PostRow
	var err error

	if row.ID, err = field[string](raw, "id"); err != nil {
		return row, err
	}
	if row.Score, err = field[int](raw, "score"); err != nil {
		return row, err
	}
	if row.Ups, err = field[int](raw, "ups"); err != nil {
		return row, err
	}
	if row.Downs, err = field[int](raw, "downs"); err != nil {
		return row, err
	}
	if row.UpvoteRatio, err = field[float64](raw, "upvote_ratio"); err != nil {
		return row, err
	}
	if row.NumComments, err = field[int](raw, "num_comments"); err != nil {
		return row, err
	}
	if row.Title, err = field[string](raw, "title"); err != nil {
		return row, err
	}
	if row.Author, err = field[string](raw, "author"); err != nil {
		return row, err
	}
	if row.Permalink, err = field[string](raw, "permalink"); err != nil {
		return row, err
	}
	if row.SubredditName, err = field[string](raw, "subreddit_name_prefixed"); err != nil {
		return row, err
	}
	if row.URL, err = field[string](raw, "url"); err != nil {
		return row, err
	}

	// created_utc arrives as a float epoch; stored truncated to whole seconds.
	created, err := field[float64](raw, "created_utc")
	if err != nil {
		return row, err
	}
	row.CreatedUTC = int64(created)

	return row, nil
}

func field[T any](raw domain.RawPost, name string) (T, error) {
	var v T
	msg, ok := raw[name]
	if !ok {
		return v, fmt.Errorf("missing required field %q", name)
	}
	if err := json.Unmarshal(msg, &v); err != nil {
		return v, fmt.Errorf("field %q: %w", name, err)
	}
	return v, nil
}
