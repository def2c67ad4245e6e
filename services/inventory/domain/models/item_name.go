package models

import (
	"fmt"
	"strings"
)

// ItemName is a value object representing a valid inventory name.
// Encapsulates validation rules: non-blank after trimming, at most 255 bytes.
type ItemName string

const maxItemNameLength = 255

// NewItemName constructs a valid ItemName or returns an error if constraints
// are violated. The original string is preserved; only blankness is judged on
// the trimmed form.
func NewItemName(s string) (ItemName, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("inventory name must not be blank")
	}
	if len(s) > maxItemNameLength {
		return "", fmt.Errorf("inventory name must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
