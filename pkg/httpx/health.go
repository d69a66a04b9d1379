package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (RedisClient, EventBus and the PDF printer all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
// Printer is optional; a nil Printer reports "disabled" and never degrades status.
type HealthChecks struct {
	Redis    HealthChecker
	EventBus HealthChecker
	Printer  HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
	Printer  string `json:"printer"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   "ok",
			Redis:    "ok",
			EventBus: "ok",
			Printer:  "disabled",
		}

		if err := checks.Redis.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Redis = "unreachable"
		}
		if err := checks.EventBus.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.EventBus = "unreachable"
		}
		if checks.Printer != nil {
			resp.Printer = "ok"
			if err := checks.Printer.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Printer = "unreachable"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
