package storage

import (
	"encoding/json"
	"os"
)

// FileCache is a single-value JSON cache on disk. The subreddit directory is
// refreshed wholesale each cycle, so one key (the file) is all it needs.
type FileCache struct {
	Path string
}

// Put replaces the cached value.
func (c *FileCache) Put(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path, data, 0644)
}

// Get loads the cached value into v. ok is false when nothing is cached yet.
func (c *FileCache) Get(v any) (ok bool, err error) {
	data, err := os.ReadFile(c.Path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}
