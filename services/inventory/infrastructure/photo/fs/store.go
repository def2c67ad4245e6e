// Package photofs implements repositories.PhotoStore on the local filesystem.
// Assets live as flat files under a root directory, named by store-generated
// uuid keys, so key uniqueness never depends on the storage backend.
package photofs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/inventoryd/services/inventory/domain"
)

const tmpPrefix = ".tmp-"

// Store is a filesystem-backed photo asset store.
type Store struct {
	root string
}

// New returns a Store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("photofs: dir must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("photofs: create root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Save streams r to a temp file and renames it into place under a fresh
// uuid key. The rename makes the asset visible atomically; a failed write
// never leaves a readable partial asset.
func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	key := uuid.NewString()

	tmp, err := os.CreateTemp(s.root, tmpPrefix+"*")
	if err != nil {
		return "", fmt.Errorf("photofs: create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("photofs: write asset: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("photofs: sync asset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("photofs: close asset: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.root, key)); err != nil {
		return "", fmt.Errorf("photofs: place asset: %w", err)
	}
	return key, nil
}

// Read opens the asset for streaming. A missing file (including one deleted
// out-of-band) maps to ErrPhotoNotFound.
func (s *Store) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: asset %s", itemdomain.ErrPhotoNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("photofs: open asset: %w", err)
	}
	return f, nil
}

// Delete removes the asset. Absence is not an error: delete is idempotent.
func (s *Store) Delete(ctx context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("photofs: delete asset: %w", err)
	}
	return nil
}

// Keys lists the keys of all stored assets, skipping in-flight temp files.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("photofs: list assets: %w", err)
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), tmpPrefix) {
			continue
		}
		keys = append(keys, e.Name())
	}
	return keys, nil
}

// Ping reports whether the asset directory is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.root); err != nil {
		return fmt.Errorf("photofs: ping: %w", err)
	}
	return nil
}

// pathFor rejects keys that could escape the root. Keys are store-generated
// uuids, so anything with a separator or dot segment is hostile input.
func (s *Store) pathFor(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("photofs: empty key")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("photofs: invalid key %q", key)
	}
	return filepath.Join(s.root, key), nil
}
