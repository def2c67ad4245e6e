package models

import "time"

// Item is the core aggregate for this bounded context. IDs are numeric
// strings assigned by the repository (max of present ids + 1, "1" when the
// collection is empty). PhotoKey is the opaque storage key of the attached
// photo asset; empty means no photo has ever been uploaded.
type Item struct {
	ID          string
	Name        ItemName
	Description string
	PhotoKey    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPhoto reports whether the item currently references a photo asset.
func (i *Item) HasPhoto() bool {
	return i.PhotoKey != ""
}

// Clone returns a copy of the item so callers can't mutate store state.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}
