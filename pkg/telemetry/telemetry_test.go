package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/ghuser/skulabel/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "skulabel",
		ServiceVersion: "test",
		Environment:    "testing",
		OtelEndpoint:   "", // disabled
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown")
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_MetricsHandlerServesPrometheusFormat(t *testing.T) {
	_, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Header().Get("Content-Type")
	if !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
}

func TestSetup_InstallsPropagator(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	fields := otel.GetTextMapPropagator().Fields()
	if !slices.Contains(fields, "traceparent") {
		t.Errorf("expected traceparent in propagator fields, got %v", fields)
	}
}

func TestHasScheme(t *testing.T) {
	tests := map[string]bool{
		"localhost:4318":              false,
		"http://collector:4318":       true,
		"https://otlp.example.com/v1": true,
		"collector":                   false,
	}
	for in, want := range tests {
		if got := hasScheme(in); got != want {
			t.Errorf("hasScheme(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEndpointOptions(t *testing.T) {
	if n := len(traceEndpointOptions("localhost:4318")); n != 2 {
		t.Errorf("host:port should add insecure option, got %d options", n)
	}
	if n := len(traceEndpointOptions("https://otlp.example.com")); n != 1 {
		t.Errorf("URL should be a single option, got %d", n)
	}
	if n := len(metricEndpointOptions("localhost:4318")); n != 2 {
		t.Errorf("host:port should add insecure option, got %d options", n)
	}
}

func TestHTTPMiddleware_PassesThrough(t *testing.T) {
	h := HTTPMiddleware("skulabel")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/label", http.NoBody))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rr.Code)
	}
}

func TestCaptureError_NoSentry(t *testing.T) {
	// Must not panic without an initialised client.
	CaptureError(context.Background(), errors.New("printer crashed"))
	CaptureError(context.Background(), nil)
}
