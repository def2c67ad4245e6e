package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

const maxMultipartMemory = 10 << 20 // 10 MB, matches the router's body limit

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"inventory item not found"`
} // @name ErrorResponse

// PostInventoryHandler handles POST /inventories requests.
type PostInventoryHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPostInventoryHandler returns a PostInventoryHandler backed by the given services.
func NewPostInventoryHandler(svc *appsvcs.Services, isProduction bool) *PostInventoryHandler {
	return &PostInventoryHandler{svc: svc, isProduction: isProduction}
}

// Execute registers a new inventory item.
//
//	@Summary		Register inventory item
//	@Description	Registers a new item with a name, optional description and optional photo
//	@Tags			inventories
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			inventory_name	formData	string	true	"Item name (non-blank)"
//	@Param			description		formData	string	false	"Item description"
//	@Param			photo			formData	file	false	"Photo to attach"
//	@Success		201	{object}	services.ItemView
//	@Failure		400	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/inventories [post]
func (h *PostInventoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var photo io.Reader
	file, _, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close() //nolint:errcheck
		photo = file
	case errors.Is(err, http.ErrMissingFile):
		// photo is optional on registration
	default:
		httpx.JSONError(w, http.StatusBadRequest, "invalid photo upload")
		return
	}

	view, err := h.svc.Inventory.Register(
		r.Context(),
		r.FormValue("inventory_name"),
		r.FormValue("description"),
		photo,
	)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusCreated, view)
}
