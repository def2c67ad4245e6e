// Package snapshot implements repositories.ItemRepository on top of a single
// JSON file holding the whole collection. Every mutation rewrites the file
// atomically (temp file + rename); a mutex serializes all read-modify-persist
// sequences so concurrent mutations see a serializable order of snapshots.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/ghuser/inventoryd/pkg/logger"
	itemdomain "github.com/ghuser/inventoryd/services/inventory/domain"
	"github.com/ghuser/inventoryd/services/inventory/domain/models"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
)

// record is the on-disk representation of one item.
type record struct {
	ID          string    `json:"id"`
	Name        string    `json:"inventory_name"`
	Description string    `json:"description"`
	PhotoKey    string    `json:"photo_reference,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Repository is a whole-file snapshot store for the inventory collection.
type Repository struct {
	mu    sync.Mutex
	path  string
	items []*models.Item // insertion order
	log   logger.Logger
	now   func() time.Time
}

// NewRepository loads the collection from path. A missing file yields an
// empty collection. An unparsable file also yields an empty collection, with
// the parse error logged at Warn.
func NewRepository(path string, log logger.Logger) (*Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot: path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: create data dir: %w", err)
	}

	r := &Repository{path: path, log: log, now: func() time.Time { return time.Now().UTC() }}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return r, nil
	case err != nil:
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}

	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		log.Warn("snapshot file unparsable, starting with empty collection",
			"path", path, "error", err)
		return r, nil
	}
	r.items = make([]*models.Item, 0, len(recs))
	for _, rec := range recs {
		r.items = append(r.items, &models.Item{
			ID:          rec.ID,
			Name:        models.ItemName(rec.Name),
			Description: rec.Description,
			PhotoKey:    rec.PhotoKey,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})
	}
	return r, nil
}

// Create assigns the next id and appends a record with no photo reference.
func (r *Repository) Create(ctx context.Context, name, description string) (*models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	item := &models.Item{
		ID:          r.nextIDLocked(),
		Name:        itemName,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items = append(r.items, item)
	if err := r.persistLocked(); err != nil {
		r.items = r.items[:len(r.items)-1]
		return nil, err
	}
	return item.Clone(), nil
}

// Get returns the item with the given id, or ErrItemNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, _, err := r.findLocked(id)
	if err != nil {
		return nil, err
	}
	return item.Clone(), nil
}

// List returns all items in insertion order.
func (r *Repository) List(ctx context.Context) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item.Clone())
	}
	return out, nil
}

// Update applies only the fields set in patch. An empty patch is a no-op
// returning the unmodified item; no snapshot is written for it.
func (r *Repository) Update(ctx context.Context, id string, patch repositories.UpdatePatch) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, _, err := r.findLocked(id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return item.Clone(), nil
	}

	prev := *item
	if patch.Name != nil {
		itemName, err := models.NewItemName(*patch.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
		}
		item.Name = itemName
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	item.UpdatedAt = r.now()

	if err := r.persistLocked(); err != nil {
		*item = prev
		return nil, err
	}
	return item.Clone(), nil
}

// Delete removes the item and returns the removed record.
func (r *Repository) Delete(ctx context.Context, id string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, idx, err := r.findLocked(id)
	if err != nil {
		return nil, err
	}
	removed := item.Clone()
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	if err := r.persistLocked(); err != nil {
		// reinsert at the original position so memory matches the file
		r.items = append(r.items[:idx], append([]*models.Item{item}, r.items[idx:]...)...)
		return nil, err
	}
	return removed, nil
}

// SetPhotoKey overwrites the item's photo asset reference.
func (r *Repository) SetPhotoKey(ctx context.Context, id, key string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, _, err := r.findLocked(id)
	if err != nil {
		return nil, err
	}
	prev := *item
	item.PhotoKey = key
	item.UpdatedAt = r.now()
	if err := r.persistLocked(); err != nil {
		*item = prev
		return nil, err
	}
	return item.Clone(), nil
}

// Ping reports whether the snapshot's directory is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if _, err := os.Stat(filepath.Dir(r.path)); err != nil {
		return fmt.Errorf("snapshot: ping: %w", err)
	}
	return nil
}

// nextIDLocked implements max(present numeric ids)+1, "1" when the collection
// is empty. Deleting the record holding the max id makes that id reusable;
// that behavior is preserved deliberately for compatibility.
func (r *Repository) nextIDLocked() string {
	maxID := 0
	for _, item := range r.items {
		n, err := strconv.Atoi(item.ID)
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}

func (r *Repository) findLocked(id string) (*models.Item, int, error) {
	for i, item := range r.items {
		if item.ID == id {
			return item, i, nil
		}
	}
	return nil, -1, itemdomain.ErrItemNotFound
}

// persistLocked serializes the whole collection and atomically replaces the
// snapshot file. Readers of the file see either the previous or the new
// content, never a partial write.
func (r *Repository) persistLocked() error {
	start := time.Now()

	recs := make([]record, 0, len(r.items))
	for _, item := range r.items {
		recs = append(recs, record{
			ID:          item.ID,
			Name:        item.Name.String(),
			Description: item.Description,
			PhotoKey:    item.PhotoKey,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		})
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: marshal: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("snapshot: create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("snapshot: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("snapshot: sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("snapshot: replace %s: %w", r.path, err)
	}

	persistDuration.Observe(time.Since(start).Seconds())
	return nil
}
