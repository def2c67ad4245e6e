package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested inventory item does not exist.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrPhotoNotFound indicates the item has no photo, or the referenced
	// asset is missing from storage.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrInvalidItemName indicates the inventory name violates domain constraints.
	ErrInvalidItemName = errors.New("invalid inventory name")

	// ErrMissingPhoto indicates a photo operation was called without a payload.
	ErrMissingPhoto = errors.New("photo payload required")
)
