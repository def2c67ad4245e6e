package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ghuser/inventoryd/pkg/config"
	"github.com/ghuser/inventoryd/pkg/logger"
	itemdomain "github.com/ghuser/inventoryd/services/inventory/domain"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
)

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventories.json")
	repo, err := NewRepository(path, testLogger())
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	return repo, path
}

func strPtr(s string) *string { return &s }

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		item, err := repo.Create(ctx, fmt.Sprintf("item %d", i), "")
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if want := fmt.Sprintf("%d", i); item.ID != want {
			t.Errorf("id: got %q, want %q", item.ID, want)
		}
	}
}

func TestCreate_EmptyCollectionYieldsIDOne(t *testing.T) {
	repo, _ := newTestRepo(t)
	item, err := repo.Create(context.Background(), "first", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID != "1" {
		t.Errorf("id: got %q, want %q", item.ID, "1")
	}
}

func TestCreate_BlankNameRejected(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t\n"} {
		t.Run(fmt.Sprintf("name=%q", name), func(t *testing.T) {
			_, err := repo.Create(ctx, name, "desc")
			if !errors.Is(err, itemdomain.ErrInvalidItemName) {
				t.Fatalf("expected ErrInvalidItemName, got %v", err)
			}
		})
	}

	// no record was created as a side effect
	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no snapshot file after rejected creates, stat err = %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	if _, err := repo.Get(context.Background(), "42"); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	names := []string{"zebra", "apple", "mango"}
	for _, n := range names {
		if _, err := repo.Create(ctx, n, ""); err != nil {
			t.Fatalf("create %q: %v", n, err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != len(names) {
		t.Fatalf("expected %d items, got %d", len(names), len(items))
	}
	for i, n := range names {
		if items[i].Name.String() != n {
			t.Errorf("position %d: got %q, want %q", i, items[i].Name, n)
		}
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	item, err := repo.Create(ctx, "Widget", "original")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("description only leaves name unchanged", func(t *testing.T) {
		got, err := repo.Update(ctx, item.ID, repositories.UpdatePatch{Description: strPtr("x")})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Name.String() != "Widget" {
			t.Errorf("name changed: %q", got.Name)
		}
		if got.Description != "x" {
			t.Errorf("description: got %q, want %q", got.Description, "x")
		}
	})

	t.Run("name only leaves description unchanged", func(t *testing.T) {
		got, err := repo.Update(ctx, item.ID, repositories.UpdatePatch{Name: strPtr("Gizmo")})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Name.String() != "Gizmo" {
			t.Errorf("name: got %q, want %q", got.Name, "Gizmo")
		}
		if got.Description != "x" {
			t.Errorf("description changed: %q", got.Description)
		}
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		got, err := repo.Update(ctx, item.ID, repositories.UpdatePatch{})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Name.String() != "Gizmo" || got.Description != "x" {
			t.Errorf("no-op patch changed record: %+v", got)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		if _, err := repo.Update(ctx, item.ID, repositories.UpdatePatch{Name: strPtr("  ")}); !errors.Is(err, itemdomain.ErrInvalidItemName) {
			t.Fatalf("expected ErrInvalidItemName, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := repo.Update(ctx, "999", repositories.UpdatePatch{Description: strPtr("y")}); !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	item, err := repo.Create(ctx, "Widget", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.SetPhotoKey(ctx, item.ID, "asset-key"); err != nil {
		t.Fatalf("set photo key: %v", err)
	}

	removed, err := repo.Delete(ctx, item.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.PhotoKey != "asset-key" {
		t.Errorf("removed record missing photo key: %+v", removed)
	}

	if _, err := repo.Get(ctx, item.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}

	// idempotence: second delete reports not found, collection unchanged
	if _, err := repo.Delete(ctx, item.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on double delete, got %v", err)
	}
}

func TestDelete_MaxIDBecomesReusable(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "a", ""); err != nil {
		t.Fatal(err)
	}
	b, err := repo.Create(ctx, "b", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatal(err)
	}

	// max(present ids)+1 after removing "2" is "2" again
	c, err := repo.Create(ctx, "c", "")
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != "2" {
		t.Errorf("id after deleting max: got %q, want %q", c.ID, "2")
	}
}

func TestPersistence_SurvivesReload(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Widget", "desc")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.SetPhotoKey(ctx, created.ID, "key-1"); err != nil {
		t.Fatalf("set photo key: %v", err)
	}

	reloaded, err := NewRepository(path, testLogger())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	item, err := reloaded.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if item.Name.String() != "Widget" || item.Description != "desc" || item.PhotoKey != "key-1" {
		t.Errorf("reloaded record mismatch: %+v", item)
	}
}

func TestLoad_MissingFileYieldsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d", len(items))
	}
}

func TestLoad_CorruptFileYieldsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventories.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	repo, err := NewRepository(path, testLogger())
	if err != nil {
		t.Fatalf("NewRepository on corrupt file: %v", err)
	}
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection from corrupt file, got %d", len(items))
	}

	// and the store is usable: the next create starts over at "1"
	item, err := repo.Create(context.Background(), "fresh", "")
	if err != nil {
		t.Fatalf("create after corrupt load: %v", err)
	}
	if item.ID != "1" {
		t.Errorf("id: got %q, want %q", item.ID, "1")
	}
}

func TestConcurrentCreates_UniqueIDs(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item, err := repo.Create(ctx, fmt.Sprintf("item %d", i), "")
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- item.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %q", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d unique ids, got %d", n, len(seen))
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Widget", "")
	if err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Description = "mutated by caller"

	again, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.Description != "" {
		t.Errorf("caller mutation leaked into store: %q", again.Description)
	}
}
