package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventoryd/pkg/validator"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
)

// UpdateInventoryRequest is the request body for PATCH /inventories/{id}.
// Omitted fields are left untouched: this is a partial patch, not a replace.
type UpdateInventoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=255" example:"Widget"`
	Description *string `json:"description" validate:"omitempty,max=4096" example:"A very useful widget"`
} // @name UpdateInventoryRequest

// PatchInventoryHandler handles PATCH /inventories/{id} requests.
type PatchInventoryHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPatchInventoryHandler returns a PatchInventoryHandler backed by the given services.
func NewPatchInventoryHandler(svc *appsvcs.Services, isProduction bool) *PatchInventoryHandler {
	return &PatchInventoryHandler{svc: svc, isProduction: isProduction}
}

// Execute applies a partial update to an inventory item.
//
//	@Summary		Update inventory item
//	@Description	Applies only the supplied fields; an empty body is a no-op
//	@Tags			inventories
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Item id"
//	@Param			request	body		UpdateInventoryRequest	true	"Fields to update"
//	@Success		200		{object}	services.ItemView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventories/{id} [patch]
func (h *PatchInventoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateInventoryRequest](w, r)
	if !ok {
		return
	}

	view, err := h.svc.Inventory.Update(r.Context(), chi.URLParam(r, "id"), repositories.UpdatePatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}
