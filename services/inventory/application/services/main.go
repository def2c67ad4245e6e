package services

import (
	"fmt"

	"github.com/ghuser/inventoryd/pkg/app"
	"github.com/ghuser/inventoryd/pkg/cache"
	photofs "github.com/ghuser/inventoryd/services/inventory/infrastructure/photo/fs"
	"github.com/ghuser/inventoryd/services/inventory/infrastructure/persistence/snapshot"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations. Items
// and Photos are exposed so the process entrypoint can register health checks.
type Services struct {
	Inventory *InventoryService
	Items     *snapshot.Repository
	Photos    *photofs.Store
}

// New wires the inventory application services with infrastructure from the
// Application container: the JSON snapshot repository, the filesystem photo
// store, and (when redis is configured) the item view cache.
func New(a *app.Application) (*Services, error) {
	repo, err := snapshot.NewRepository(a.Config.SnapshotPath, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("init item store: %w", err)
	}
	photos, err := photofs.New(a.Config.PhotoDir)
	if err != nil {
		return nil, fmt.Errorf("init photo store: %w", err)
	}

	var itemCache *cache.ItemCache
	if a.Redis != nil {
		itemCache = cache.NewItemCache(a.Redis)
	}

	return &Services{
		Inventory: NewInventoryService(repo, photos, itemCache, a.EventBus, a.Config.PublicBaseURL, a.Logger),
		Items:     repo,
		Photos:    photos,
	}, nil
}
