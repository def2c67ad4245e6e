package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for the inventory bounded context.
const (
	TopicItemRegistered = "inventory.item.registered"
	TopicItemUpdated    = "inventory.item.updated"
	TopicItemDeleted    = "inventory.item.deleted"
	TopicPhotoReplaced  = "inventory.photo.replaced"

	// TopicPhotoCleanup is the deferred-cleanup queue: a message per photo
	// asset that is no longer referenced and should be deleted from storage.
	// Cleanup failures are observed via logs only and never fail the
	// operation that orphaned the asset.
	TopicPhotoCleanup = "inventory.photo.cleanup"
)

// ItemRegisteredEvent is published after a new item is persisted.
type ItemRegisteredEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	HasPhoto   bool      `json:"has_photo"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent is published after an item's fields are patched.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an item is removed from the collection.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PhotoReplacedEvent is published after an item's photo reference changes.
type PhotoReplacedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	PhotoKey   string    `json:"photo_key"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PhotoCleanupRequested asks the cleanup subscriber to delete an orphaned
// photo asset from storage.
type PhotoCleanupRequested struct {
	EventID    uuid.UUID `json:"event_id"`
	PhotoKey   string    `json:"photo_key"`
	ItemID     string    `json:"item_id"` // owning item at the time the asset was orphaned
	Reason     string    `json:"reason"`  // e.g. "item_deleted", "photo_replaced"
	OccurredAt time.Time `json:"occurred_at"`
}
