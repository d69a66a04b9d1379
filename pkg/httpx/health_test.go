package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/skulabel/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func probe(t *testing.T, checks httpx.HealthChecks) (int, map[string]string) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr.Code, resp
}

func TestHealthHandler(t *testing.T) {
	down := errors.New("down")

	tests := []struct {
		name       string
		checks     httpx.HealthChecks
		wantStatus int
		want       map[string]string
	}{
		{
			name:       "all healthy, printing disabled",
			checks:     httpx.HealthChecks{Redis: &stubChecker{}, EventBus: &stubChecker{}},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "ok", "redis": "ok", "event_bus": "ok", "printer": "disabled"},
		},
		{
			name:       "all healthy, printing enabled",
			checks:     httpx.HealthChecks{Redis: &stubChecker{}, EventBus: &stubChecker{}, Printer: &stubChecker{}},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "ok", "printer": "ok"},
		},
		{
			name:       "redis down",
			checks:     httpx.HealthChecks{Redis: &stubChecker{err: down}, EventBus: &stubChecker{}},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "degraded", "redis": "unreachable", "event_bus": "ok"},
		},
		{
			name:       "event bus down",
			checks:     httpx.HealthChecks{Redis: &stubChecker{}, EventBus: &stubChecker{err: down}},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "degraded", "event_bus": "unreachable"},
		},
		{
			name:       "printer down",
			checks:     httpx.HealthChecks{Redis: &stubChecker{}, EventBus: &stubChecker{}, Printer: &stubChecker{err: down}},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "degraded", "printer": "unreachable", "redis": "ok"},
		},
		{
			name:       "all down",
			checks:     httpx.HealthChecks{Redis: &stubChecker{err: down}, EventBus: &stubChecker{err: down}, Printer: &stubChecker{err: down}},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"redis": "unreachable", "event_bus": "unreachable", "printer": "unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := probe(t, tt.checks)
			if code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, code)
			}
			for k, v := range tt.want {
				if resp[k] != v {
					t.Errorf("%s: got %q, want %q", k, resp[k], v)
				}
			}
		})
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Redis:    &stubChecker{},
		EventBus: &stubChecker{},
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
