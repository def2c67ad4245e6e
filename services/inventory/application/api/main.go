package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventoryd/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, svcs *appsvcs.Services, isProduction bool) {
	r.Route("/inventories", func(r chi.Router) {
		r.Post("/", handlers.NewPostInventoryHandler(svcs, isProduction).Execute)
		r.Get("/", handlers.NewListInventoriesHandler(svcs, isProduction).Execute)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetInventoryHandler(svcs, isProduction).Execute)
			r.Patch("/", handlers.NewPatchInventoryHandler(svcs, isProduction).Execute)
			r.Delete("/", handlers.NewDeleteInventoryHandler(svcs, isProduction).Execute)
			r.Get("/photo", handlers.NewGetPhotoHandler(svcs, isProduction).Execute)
			r.Put("/photo", handlers.NewPutPhotoHandler(svcs, isProduction).Execute)
		})
	})
}
