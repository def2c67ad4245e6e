package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/inventoryd/pkg/cache"
	"github.com/ghuser/inventoryd/pkg/events"
	"github.com/ghuser/inventoryd/pkg/logger"
	itemdomain "github.com/ghuser/inventoryd/services/inventory/domain"
	domainevents "github.com/ghuser/inventoryd/services/inventory/domain/events"
	"github.com/ghuser/inventoryd/services/inventory/domain/models"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
)

// ItemView is the externally-facing projection of an item record. PhotoURL
// is derived from the item id on every read and never persisted.
type ItemView struct {
	ID          string  `json:"id"          example:"1"`
	Name        string  `json:"inventory_name" example:"Widget"`
	Description string  `json:"description" example:"A very useful widget"`
	PhotoURL    *string `json:"photo_url"   example:"http://localhost:8080/api/inventories/1/photo"`
} // @name ItemView

// InventoryService composes the record repository and the photo asset store,
// and owns the consistency rules between them: a record's photo asset is
// deleted (best-effort, via the cleanup queue) whenever the record is deleted
// or the photo replaced, so no orphaned asset remains at rest.
//
// Reads are served from the redis cache when available; every mutation
// invalidates the cached entry. Cache failures never affect correctness.
type InventoryService struct {
	repo    repositories.ItemRepository
	photos  repositories.PhotoStore
	cache   *pkgcache.ItemCache
	bus     *events.EventBus
	baseURL string
	log     logger.Logger
}

// NewInventoryService wires the service. cache and bus may be nil (tests,
// cmd/sweep); with a nil bus, orphaned assets are deleted inline instead of
// through the cleanup queue.
func NewInventoryService(
	repo repositories.ItemRepository,
	photos repositories.PhotoStore,
	itemCache *pkgcache.ItemCache,
	bus *events.EventBus,
	baseURL string,
	log logger.Logger,
) *InventoryService {
	return &InventoryService{
		repo:    repo,
		photos:  photos,
		cache:   itemCache,
		bus:     bus,
		baseURL: baseURL,
		log:     log,
	}
}

// Register validates the name, stores the optional photo, and creates the
// record. The name is validated before any bytes touch the asset store, so
// a validation failure can never leave an orphaned asset behind.
func (s *InventoryService) Register(ctx context.Context, name, description string, photo io.Reader) (*ItemView, error) {
	if _, err := models.NewItemName(name); err != nil {
		opsTotal.WithLabelValues("register", outcomeInvalid).Inc()
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	key := ""
	if photo != nil {
		k, err := s.photos.Save(ctx, photo)
		if err != nil {
			opsTotal.WithLabelValues("register", outcomeError).Inc()
			return nil, fmt.Errorf("save photo: %w", err)
		}
		key = k
	}

	item, err := s.repo.Create(ctx, name, description)
	if err != nil {
		s.discardAsset(ctx, key, "", "register_failed")
		opsTotal.WithLabelValues("register", outcome(err)).Inc()
		return nil, err
	}

	if key != "" {
		item, err = s.repo.SetPhotoKey(ctx, item.ID, key)
		if err != nil {
			s.discardAsset(ctx, key, item.ID, "register_failed")
			opsTotal.WithLabelValues("register", outcomeError).Inc()
			return nil, fmt.Errorf("attach photo: %w", err)
		}
	}

	s.publish(ctx, domainevents.TopicItemRegistered, domainevents.ItemRegisteredEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		HasPhoto:   item.HasPhoto(),
		OccurredAt: time.Now().UTC(),
	})
	opsTotal.WithLabelValues("register", outcomeOK).Inc()
	return s.view(item), nil
}

// Get retrieves an item view using a read-through cache pattern:
//  1. Check redis first.
//  2. On cache miss (or cache error), read the repository.
//  3. Asynchronously warm the cache with the repository result.
func (s *InventoryService) Get(ctx context.Context, id string) (*ItemView, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			opsTotal.WithLabelValues("get", outcomeOK).Inc()
			return s.view(&models.Item{
				ID:          cached.ID,
				Name:        models.ItemName(cached.Name),
				Description: cached.Description,
				PhotoKey:    cached.PhotoKey,
			}), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed, falling through", "error", err)
		}
	}

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		opsTotal.WithLabelValues("get", outcome(err)).Inc()
		return nil, err
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedItem{
				ID:          item.ID,
				Name:        item.Name.String(),
				Description: item.Description,
				PhotoKey:    item.PhotoKey,
			})
		}()
	}

	opsTotal.WithLabelValues("get", outcomeOK).Inc()
	return s.view(item), nil
}

// List returns views for all items in insertion order.
func (s *InventoryService) List(ctx context.Context) ([]*ItemView, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		opsTotal.WithLabelValues("list", outcomeError).Inc()
		return nil, fmt.Errorf("list items: %w", err)
	}
	views := make([]*ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, s.view(item))
	}
	opsTotal.WithLabelValues("list", outcomeOK).Inc()
	return views, nil
}

// Update applies a partial patch to the item's name and/or description.
func (s *InventoryService) Update(ctx context.Context, id string, patch repositories.UpdatePatch) (*ItemView, error) {
	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		opsTotal.WithLabelValues("update", outcome(err)).Inc()
		return nil, err
	}
	s.invalidateCache(ctx, id)
	s.publish(ctx, domainevents.TopicItemUpdated, domainevents.ItemUpdatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		OccurredAt: time.Now().UTC(),
	})
	opsTotal.WithLabelValues("update", outcomeOK).Inc()
	return s.view(item), nil
}

// Delete removes the item and cascades photo asset cleanup. Asset deletion
// is best-effort: the record removal has already been persisted, so a failed
// file delete is logged and never surfaced to the caller.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		opsTotal.WithLabelValues("delete", outcome(err)).Inc()
		return err
	}
	s.invalidateCache(ctx, id)
	if removed.HasPhoto() {
		s.discardAsset(ctx, removed.PhotoKey, removed.ID, "item_deleted")
	}
	s.publish(ctx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     removed.ID,
		OccurredAt: time.Now().UTC(),
	})
	opsTotal.WithLabelValues("delete", outcomeOK).Inc()
	return nil
}

// ReplacePhoto stores a new photo asset for the item and updates the
// reference. The previous asset (if any) is discarded first, best-effort;
// if the new save then fails, the item is left without a readable photo
// until the next PUT.
func (s *InventoryService) ReplacePhoto(ctx context.Context, id string, photo io.Reader) (*ItemView, error) {
	if photo == nil {
		opsTotal.WithLabelValues("replace_photo", outcomeInvalid).Inc()
		return nil, itemdomain.ErrMissingPhoto
	}

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		opsTotal.WithLabelValues("replace_photo", outcome(err)).Inc()
		return nil, err
	}
	if item.HasPhoto() {
		s.discardAsset(ctx, item.PhotoKey, item.ID, "photo_replaced")
	}

	key, err := s.photos.Save(ctx, photo)
	if err != nil {
		opsTotal.WithLabelValues("replace_photo", outcomeError).Inc()
		return nil, fmt.Errorf("save photo: %w", err)
	}
	item, err = s.repo.SetPhotoKey(ctx, id, key)
	if err != nil {
		s.discardAsset(ctx, key, id, "replace_failed")
		opsTotal.WithLabelValues("replace_photo", outcome(err)).Inc()
		return nil, err
	}

	s.invalidateCache(ctx, id)
	s.publish(ctx, domainevents.TopicPhotoReplaced, domainevents.PhotoReplacedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		PhotoKey:   key,
		OccurredAt: time.Now().UTC(),
	})
	opsTotal.WithLabelValues("replace_photo", outcomeOK).Inc()
	return s.view(item), nil
}

// Photo opens the item's photo for streaming. Returns ErrItemNotFound for an
// unknown id and ErrPhotoNotFound when the item has no photo or the
// referenced asset is missing from storage.
func (s *InventoryService) Photo(ctx context.Context, id string) (io.ReadCloser, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		opsTotal.WithLabelValues("get_photo", outcome(err)).Inc()
		return nil, err
	}
	if !item.HasPhoto() {
		opsTotal.WithLabelValues("get_photo", outcomeNotFound).Inc()
		return nil, fmt.Errorf("%w: item %s has no photo", itemdomain.ErrPhotoNotFound, id)
	}
	rc, err := s.photos.Read(ctx, item.PhotoKey)
	if err != nil {
		opsTotal.WithLabelValues("get_photo", outcome(err)).Inc()
		return nil, err
	}
	opsTotal.WithLabelValues("get_photo", outcomeOK).Inc()
	return rc, nil
}

// SweepOrphans deletes photo assets that no record references. Run at
// startup and from cmd/sweep to restore the no-orphans-at-rest invariant
// after crashes between an asset write and its snapshot persist.
func (s *InventoryService) SweepOrphans(ctx context.Context) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep: list items: %w", err)
	}
	referenced := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.HasPhoto() {
			referenced[item.PhotoKey] = struct{}{}
		}
	}

	keys, err := s.photos.Keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep: list assets: %w", err)
	}

	removed := 0
	for _, key := range keys {
		if _, ok := referenced[key]; ok {
			continue
		}
		if err := s.photos.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "sweep: failed to delete orphaned asset", "key", key, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// CleanupHandler returns the subscriber for the photo cleanup topic. Each
// message names one orphaned asset; deletion is idempotent, so redelivery
// after a retry is harmless.
func (s *InventoryService) CleanupHandler() func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var req domainevents.PhotoCleanupRequested
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			// Malformed payloads are dropped, not retried.
			s.log.ErrorContext(ctx, "cleanup: malformed payload", "error", err)
			return nil
		}
		if err := s.photos.Delete(ctx, req.PhotoKey); err != nil {
			return fmt.Errorf("cleanup: delete asset %s: %w", req.PhotoKey, err)
		}
		s.log.InfoContext(ctx, "cleanup: orphaned asset deleted",
			"key", req.PhotoKey, "item_id", req.ItemID, "reason", req.Reason)
		return nil
	}
}

// PhotoURL derives the public photo URL for an item id.
func (s *InventoryService) PhotoURL(id string) string {
	return fmt.Sprintf("%s/api/inventories/%s/photo", s.baseURL, id)
}

// discardAsset queues an orphaned asset for deletion via the cleanup topic;
// with no bus it deletes inline. Failures are logged and swallowed: the
// primary operation has already been persisted.
func (s *InventoryService) discardAsset(ctx context.Context, key, itemID, reason string) {
	if key == "" {
		return
	}
	if s.bus == nil {
		if err := s.photos.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "failed to delete orphaned asset", "key", key, "error", err)
		}
		return
	}
	payload, err := json.Marshal(domainevents.PhotoCleanupRequested{
		EventID:    uuid.New(),
		PhotoKey:   key,
		ItemID:     itemID,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to marshal cleanup request", "key", key, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.bus.Publish(ctx, domainevents.TopicPhotoCleanup, msg); err != nil {
		// Queue unavailable: fall back to an inline best-effort delete.
		s.log.WarnContext(ctx, "cleanup publish failed, deleting inline", "key", key, "error", err)
		if err := s.photos.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "failed to delete orphaned asset", "key", key, "error", err)
		}
	}
}

func (s *InventoryService) invalidateCache(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "item cache invalidation failed", "item_id", id, "error", err)
	}
}

func (s *InventoryService) publish(ctx context.Context, topic string, event any) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to marshal event", "topic", topic, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.WarnContext(ctx, "failed to publish event", "topic", topic, "error", err)
	}
}

func (s *InventoryService) view(item *models.Item) *ItemView {
	v := &ItemView{
		ID:          item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
	}
	if item.HasPhoto() {
		url := s.PhotoURL(item.ID)
		v.PhotoURL = &url
	}
	return v
}
