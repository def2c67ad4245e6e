package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// GetPhotoHandler handles GET /inventories/{id}/photo requests.
type GetPhotoHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewGetPhotoHandler returns a GetPhotoHandler backed by the given services.
func NewGetPhotoHandler(svc *appsvcs.Services, isProduction bool) *GetPhotoHandler {
	return &GetPhotoHandler{svc: svc, isProduction: isProduction}
}

// Execute streams the item's photo. The content type is sniffed from the
// leading bytes since assets are stored without metadata.
//
//	@Summary		Get item photo
//	@Tags			inventories
//	@Produce		image/*
//	@Param			id	path	string	true	"Item id"
//	@Success		200	{file}	binary
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventories/{id}/photo [get]
func (h *GetPhotoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rc, err := h.svc.Inventory.Photo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}
	defer rc.Close() //nolint:errcheck

	head := make([]byte, 512)
	n, err := io.ReadFull(rc, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}
	head = head[:n]

	w.Header().Set("Content-Type", http.DetectContentType(head))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(head); err != nil {
		return
	}
	_, _ = io.Copy(w, rc)
}
