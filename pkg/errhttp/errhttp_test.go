package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	itemdomain "github.com/ghuser/inventoryd/services/inventory/domain"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"item not found", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"photo not found", itemdomain.ErrPhotoNotFound, http.StatusNotFound},
		{"invalid name", itemdomain.ErrInvalidItemName, http.StatusUnprocessableEntity},
		{"missing photo", itemdomain.ErrMissingPhoto, http.StatusUnprocessableEntity},
		{"wrapped sentinel", fmt.Errorf("lookup %q: %w", "7", itemdomain.ErrItemNotFound), http.StatusNotFound},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err, false)

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected non-empty error message")
			}
		})
	}
}

func TestWriteError_ProductionHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("open /var/lib/secret: permission denied"), true)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "/var/lib/secret") {
		t.Errorf("internal path leaked to client: %s", rec.Body.String())
	}
}

func TestWriteError_ProductionKeepsClientErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, itemdomain.ErrInvalidItemName, true)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want 422", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !strings.Contains(body["error"], itemdomain.ErrInvalidItemName.Error()) {
		t.Errorf("4xx message replaced in production: %q", body["error"])
	}
}
