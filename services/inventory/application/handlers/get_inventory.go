package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// GetInventoryHandler handles GET /inventories/{id} requests.
type GetInventoryHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewGetInventoryHandler returns a GetInventoryHandler backed by the given services.
func NewGetInventoryHandler(svc *appsvcs.Services, isProduction bool) *GetInventoryHandler {
	return &GetInventoryHandler{svc: svc, isProduction: isProduction}
}

// Execute fetches one inventory item.
//
//	@Summary		Get inventory item
//	@Tags			inventories
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	services.ItemView
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventories/{id} [get]
func (h *GetInventoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Inventory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}
