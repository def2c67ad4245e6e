// Command sweep deletes photo assets that no inventory record references.
// It runs against the same snapshot file and photo directory as the API
// process; run it while the API is stopped, or accept that assets written
// during the sweep may be reported as orphans.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/inventoryd/pkg/app"
	"github.com/ghuser/inventoryd/pkg/config"
	"github.com/ghuser/inventoryd/pkg/logger"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	// No redis and no bus: the sweeper reads the snapshot directly and
	// deletes inline.
	svcs, err := appsvcs.New(&app.Application{Config: cfg, Logger: log})
	if err != nil {
		log.Error("failed to initialize inventory services", "error", err)
		os.Exit(1)
	}

	removed, err := svcs.Inventory.SweepOrphans(ctx)
	if err != nil {
		log.Error("orphan sweep failed", "error", err)
		os.Exit(1)
	}
	log.Info("orphan sweep complete", "removed", removed,
		"snapshot", cfg.SnapshotPath, "photos", cfg.PhotoDir)
}
