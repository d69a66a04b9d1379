package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/skulabel/pkg/httpx"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// TestSecurityHeaders verifies unrolled/secure sets the expected headers.
func TestSecurityHeaders(t *testing.T) {
	h := httpx.SecureHeaders(false)(http.HandlerFunc(okHandler))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": httpx.ContentSecurityPolicy,
	}
	for header, expected := range checks {
		if got := rr.Header().Get(header); got != expected {
			t.Errorf("%s: got %q, want %q", header, got, expected)
		}
	}
	// HSTS is only set over HTTPS; on plain HTTP unrolled/secure omits it.
}

// TestContentSecurityPolicy_AllowsPrintSheet verifies inline styles and
// data: images used by the print sheet are permitted.
func TestContentSecurityPolicy_AllowsPrintSheet(t *testing.T) {
	for _, want := range []string{"img-src 'self' data:", "style-src 'self' 'unsafe-inline'"} {
		if !strings.Contains(httpx.ContentSecurityPolicy, want) {
			t.Errorf("CSP missing %q", want)
		}
	}
}

// TestCORSMiddleware_Preflight verifies allowed origins and methods.
func TestCORSMiddleware_Preflight(t *testing.T) {
	h := httpx.CORSMiddleware("https://labels.example.com")(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodOptions, "/api/label", http.NoBody)
	req.Header.Set("Origin", "https://labels.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://labels.example.com" {
		t.Errorf("Allow-Origin: got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials: got %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/label", http.NoBody)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Allow-Origin for foreign origin: %q", got)
	}
}

// TestNewRouter_AppliesStack verifies a route mounted on NewRouter passes
// through the injected middlewares.
func TestNewRouter_AppliesStack(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := httpx.NewRouter(httpx.ServerConfig{ServiceName: "skulabel", IsDevelopment: true, CORSAllowedOrigins: "*"},
		mark("logger"), mark("recovery"), mark("sentry"), mark("otel"))
	r.Get("/ping", okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	want := []string{"recovery", "sentry", "otel", "logger"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("middleware order: got %v, want %v", order, want)
	}
	if rr.Header().Get("Content-Security-Policy") == "" {
		t.Error("expected security headers on routed response")
	}
}

func TestNewRouter_JSONNotFoundAndMethodNotAllowed(t *testing.T) {
	noop := func(next http.Handler) http.Handler { return next }
	r := httpx.NewRouter(httpx.ServerConfig{IsDevelopment: true, CORSAllowedOrigins: "*"}, noop, noop, noop, noop)
	r.Get("/ping", okHandler)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/missing", http.StatusNotFound},
		{http.MethodPost, "/ping", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, http.NoBody))
		if rr.Code != tt.want {
			t.Errorf("%s %s: got %d, want %d", tt.method, tt.path, rr.Code, tt.want)
		}
		if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("%s %s: content type %q", tt.method, tt.path, ct)
		}
	}
}

// TestRequestBodyLimit_WithinLimit verifies requests under the cap pass through.
func TestRequestBodyLimit_WithinLimit(t *testing.T) {
	const limit = 100

	var gotBody []byte
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+1)
		n, _ := r.Body.Read(buf)
		gotBody = buf[:n]
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("a", 50))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(gotBody) != 50 {
		t.Fatalf("expected 50 bytes read, got %d", len(gotBody))
	}
}

// TestRequestBodyLimit_ExceedsLimit verifies that reading beyond the cap returns an error.
func TestRequestBodyLimit_ExceedsLimit(t *testing.T) {
	const limit int64 = 10

	var readErr error
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+5)
		_, readErr = r.Body.Read(buf)
		if readErr != nil {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("x", int(limit)+1))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
}
