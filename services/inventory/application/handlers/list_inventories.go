package handlers

import (
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// ListInventoriesHandler handles GET /inventories requests.
type ListInventoriesHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewListInventoriesHandler returns a ListInventoriesHandler backed by the given services.
func NewListInventoriesHandler(svc *appsvcs.Services, isProduction bool) *ListInventoriesHandler {
	return &ListInventoriesHandler{svc: svc, isProduction: isProduction}
}

// Execute lists all inventory items in insertion order.
//
//	@Summary		List inventory items
//	@Tags			inventories
//	@Produce		json
//	@Success		200	{array}		services.ItemView
//	@Failure		500	{object}	ErrorResponse
//	@Router			/inventories [get]
func (h *ListInventoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Inventory.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}
	httpx.JSON(w, http.StatusOK, views)
}
