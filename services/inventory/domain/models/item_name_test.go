package models

import (
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "Widget", false},
		{"name with inner spaces", "Spare Widget Parts", false},
		{"unicode name", "Schraubenzieher №3", false},
		{"padded name kept as-is", "  Widget  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"tabs and newlines", "\t\n ", true},
		{"at max length", strings.Repeat("a", 255), false},
		{"over max length", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewItemName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewItemName(%q): expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewItemName(%q): %v", tt.input, err)
			}
			if got.String() != tt.input {
				t.Errorf("value altered: got %q, want %q", got.String(), tt.input)
			}
		})
	}
}
