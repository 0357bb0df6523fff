package storage

import (
	"context"
	"database/sql"
	"strings"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

// Store is an explicit handle on the local SQLite database. Callers open one
// per pipeline or report run and close it when the run finishes.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrPersistence, "opening database", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, domain.NewAppError(domain.ErrPersistence, "opening database", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const createPostsTable = `
CREATE TABLE posts (
	id                      TEXT,
	score                   INTEGER,
	ups                     INTEGER,
	downs                   INTEGER,
	upvote_ratio            REAL,
	num_comments            INTEGER,
	title                   TEXT,
	author                  TEXT,
	permalink               TEXT,
	subreddit_name_prefixed TEXT,
	url                     TEXT,
	created_utc             INTEGER
)`

const insertPost = `
INSERT INTO posts (id, score, ups, downs, upvote_ratio, num_comments, title,
	author, permalink, subreddit_name_prefixed, url, created_utc)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Replace swaps the full contents of the posts table for the given rows.
// Drop, create and insert run in one transaction, so a failed load rolls back
// and readers never see a half-written table.
func (s *Store) Replace(ctx context.Context, rows []domain.PostRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewAppError(domain.ErrPersistence, "starting replace", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS posts`); err != nil {
		return domain.NewAppError(domain.ErrPersistence, "dropping posts table", err)
	}
	if _, err := tx.ExecContext(ctx, createPostsTable); err != nil {
		return domain.NewAppError(domain.ErrPersistence, "creating posts table", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertPost)
	if err != nil {
		return domain.NewAppError(domain.ErrPersistence, "preparing insert", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.ExecContext(ctx, r.ID, r.Score, r.Ups, r.Downs, r.UpvoteRatio,
			r.NumComments, r.Title, r.Author, r.Permalink, r.SubredditName, r.URL, r.CreatedUTC)
		if err != nil {
			return domain.NewAppError(domain.ErrPersistence, "inserting post "+r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewAppError(domain.ErrPersistence, "committing replace", err)
	}
	return nil
}

// Posts returns every stored row. Used by tests and ad-hoc inspection.
func (s *Store) Posts(ctx context.Context) ([]domain.PostRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, score, ups, downs, upvote_ratio, num_comments, title,
		       author, permalink, subreddit_name_prefixed, url, created_utc
		FROM posts`)
	if err != nil {
		if isMissingTable(err) {
			return nil, domain.NewAppError(domain.ErrEmptyResult, "posts table does not exist", err)
		}
		return nil, domain.NewAppError(domain.ErrPersistence, "querying posts", err)
	}
	defer rows.Close()

	var out []domain.PostRow
	for rows.Next() {
		var r domain.PostRow
		err := rows.Scan(&r.ID, &r.Score, &r.Ups, &r.Downs, &r.UpvoteRatio, &r.NumComments,
			&r.Title, &r.Author, &r.Permalink, &r.SubredditName, &r.URL, &r.CreatedUTC)
		if err != nil {
			return nil, domain.NewAppError(domain.ErrPersistence, "scanning post", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewAppError(domain.ErrPersistence, "reading posts", err)
	}
	return out, nil
}

// ReportRow is the projection the reporter renders: title already truncated,
// creation time already formatted as a UTC date-time string.
type ReportRow struct {
	Title         string
	Author        string
	URL           string
	Score         int
	NumComments   int
	Ups           int
	SubredditName string
	Date          string
}

// TopPostsByScore returns the highest-scored rows, at most limit of them.
// A database without a posts table surfaces EMPTY_RESULT, which the reporter
// treats the same as an empty table.
func (s *Store) TopPostsByScore(ctx context.Context, limit int) ([]ReportRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
		  SUBSTR(title, 1, 50) AS title,
		  author,
		  url,
		  score,
		  num_comments,
		  ups,
		  subreddit_name_prefixed,
		  datetime(created_utc, 'unixepoch') AS date
		FROM posts
		ORDER BY score DESC
		LIMIT ?`, limit)
	if err != nil {
		if isMissingTable(err) {
			return nil, domain.NewAppError(domain.ErrEmptyResult, "posts table does not exist", err)
		}
		return nil, domain.NewAppError(domain.ErrPersistence, "querying top posts", err)
	}
	defer rows.Close()

	var out []ReportRow
	for rows.Next() {
		var r ReportRow
		err := rows.Scan(&r.Title, &r.Author, &r.URL, &r.Score, &r.NumComments,
			&r.Ups, &r.SubredditName, &r.Date)
		if err != nil {
			return nil, domain.NewAppError(domain.ErrPersistence, "scanning top post", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewAppError(domain.ErrPersistence, "reading top posts", err)
	}
	return out, nil
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
