package credstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements Store with one JSON file per key inside a directory.
// Entries survive process restarts, making it the closest Go analog of a
// browser origin's localStorage. Writes go through a temp file and rename
// so a crash never leaves a half-written entry behind.
type FileStore struct {
	settings

	dir string
	mu  sync.Mutex
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed. Directory creation is the only failure surfaced to
// the caller; everything after construction is best-effort.
func NewFileStore(dir string, opts ...Option) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}

	return &FileStore{
		settings: newSettings(opts),
		dir:      dir,
	}, nil
}

func (fs *FileStore) Put(ctx context.Context, key string, value any, opts ...PutOption) {
	env, err := fs.seal(value, opts)
	if err != nil {
		fs.fail(ctx, "put", key, err)
		return
	}

	data, err := json.Marshal(env)
	if err != nil {
		fs.fail(ctx, "put", key, err)
		return
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	path := fs.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		fs.fail(ctx, "put", key, err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // Best effort cleanup
		fs.fail(ctx, "put", key, err)
	}
}

func (fs *FileStore) Get(ctx context.Context, key string, dest any) bool {
	fs.mu.Lock()
	data, err := os.ReadFile(fs.path(key))
	fs.mu.Unlock()
	if err != nil {
		if !os.IsNotExist(err) {
			fs.fail(ctx, "get", key, err)
		}
		return false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		fs.fail(ctx, "get", key, err)
		return false
	}

	if env.expired(fs.clock()) {
		fs.Remove(ctx, key)
		return false
	}

	if err := json.Unmarshal(env.Value, dest); err != nil {
		fs.fail(ctx, "get", key, err)
		return false
	}
	return true
}

func (fs *FileStore) Remove(ctx context.Context, key string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		fs.fail(ctx, "remove", key, err)
	}
}

func (fs *FileStore) Keys(ctx context.Context) []string {
	fs.mu.Lock()
	entries, err := os.ReadDir(fs.dir)
	fs.mu.Unlock()
	if err != nil {
		fs.fail(ctx, "keys", "", err)
		return nil
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".tmp" {
			continue
		}
		key, err := url.PathUnescape(name)
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// path maps a logical key to a file name. Keys are escaped so arbitrary
// key strings cannot traverse outside the store directory.
func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, url.PathEscape(key))
}
