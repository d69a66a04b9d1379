package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/skulabel/pkg/cache"
	"github.com/ghuser/skulabel/pkg/config"
	"github.com/ghuser/skulabel/pkg/events"
	"github.com/ghuser/skulabel/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route functions during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "label composed", "sku", sku)
//	app.Logger.ErrorContext(ctx, "failed to render barcode", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient // nil in tests; services skip the image cache then
	SessionStore sessions.Store     // Redis-backed in production, CookieStore in tests
	Printer      Printer            // nil when PRINT_ENABLED is false
}
