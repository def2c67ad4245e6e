package repositories

import (
	"context"

	"github.com/ghuser/inventoryd/services/inventory/domain/models"
)

// UpdatePatch carries the fields of a partial update. Nil means "leave the
// field untouched"; this is a patch, not a full replace.
type UpdatePatch struct {
	Name        *string
	Description *string
}

// Empty reports whether the patch modifies nothing.
func (p UpdatePatch) Empty() bool {
	return p.Name == nil && p.Description == nil
}

// ItemRepository is the persistence interface for the inventory collection.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations must persist the whole collection as one atomic snapshot
// after every mutating call and serialize read-modify-persist sequences so
// concurrent mutations cannot produce a torn or lost write.
type ItemRepository interface {
	// Create validates the name, assigns the next id and appends a record
	// with no photo reference. Returns ErrInvalidItemName on a blank name.
	Create(ctx context.Context, name, description string) (*models.Item, error)

	// Get returns the item with the given id, or ErrItemNotFound.
	Get(ctx context.Context, id string) (*models.Item, error)

	// List returns all items in insertion order.
	List(ctx context.Context) ([]*models.Item, error)

	// Update applies only the fields set in patch and returns the updated
	// item. An empty patch is a no-op returning the unmodified item.
	Update(ctx context.Context, id string, patch UpdatePatch) (*models.Item, error)

	// Delete removes the item and returns the removed record so the caller
	// can cascade photo asset cleanup.
	Delete(ctx context.Context, id string) (*models.Item, error)

	// SetPhotoKey overwrites the item's photo asset reference.
	SetPhotoKey(ctx context.Context, id, key string) (*models.Item, error)
}
