package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// DeleteInventoryHandler handles DELETE /inventories/{id} requests.
type DeleteInventoryHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewDeleteInventoryHandler returns a DeleteInventoryHandler backed by the given services.
func NewDeleteInventoryHandler(svc *appsvcs.Services, isProduction bool) *DeleteInventoryHandler {
	return &DeleteInventoryHandler{svc: svc, isProduction: isProduction}
}

// Execute deletes an inventory item and its photo asset.
//
//	@Summary		Delete inventory item
//	@Description	Removes the item; its photo asset is cleaned up best-effort
//	@Tags			inventories
//	@Param			id	path	string	true	"Item id"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventories/{id} [delete]
func (h *DeleteInventoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Inventory.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
