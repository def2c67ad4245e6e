package app

import (
	"github.com/ghuser/inventoryd/pkg/cache"
	"github.com/ghuser/inventoryd/pkg/config"
	"github.com/ghuser/inventoryd/pkg/events"
	"github.com/ghuser/inventoryd/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's New call during process initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "registering item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to persist", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil in processes that run without redis (cmd/sweep)
}
