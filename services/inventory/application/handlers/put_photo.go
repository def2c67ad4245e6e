package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
	itemdomain "github.com/ghuser/inventoryd/services/inventory/domain"
)

// PutPhotoHandler handles PUT /inventories/{id}/photo requests.
type PutPhotoHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPutPhotoHandler returns a PutPhotoHandler backed by the given services.
func NewPutPhotoHandler(svc *appsvcs.Services, isProduction bool) *PutPhotoHandler {
	return &PutPhotoHandler{svc: svc, isProduction: isProduction}
}

// Execute replaces the item's photo. A missing payload is a validation
// failure (422), distinct from an unknown item id (404).
//
//	@Summary		Replace item photo
//	@Tags			inventories
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Item id"
//	@Param			photo	formData	file	true	"New photo"
//	@Success		200	{object}	services.ItemView
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/inventories/{id}/photo [put]
func (h *PutPhotoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		errhttp.WriteError(w, itemdomain.ErrMissingPhoto, h.isProduction)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid photo upload")
		return
	}
	defer file.Close() //nolint:errcheck

	view, err := h.svc.Inventory.ReplacePhoto(r.Context(), chi.URLParam(r, "id"), file)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}
