package mid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskvault/taskvault/bridge/scaffolding/mid"
	"github.com/taskvault/taskvault/infrastructure/web"
)

func newCORSHandler(t *testing.T, mw web.Middleware) *web.WebHandler {
	t.Helper()

	handler := web.NewWebHandlerDefault(web.WithGlobalMiddleware(mw))

	ok := func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse(map[string]string{"status": "ok"})
	}
	handler.Handle(http.MethodGet, "/ping", ok)
	handler.Handle(http.MethodOptions, "/ping", ok)

	return handler
}

func TestCORSOrigins(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		reqOrigin   string
		wantAllowed string
	}{
		{
			name:        "wildcard",
			origins:     []string{"*"},
			reqOrigin:   "https://app.example.com",
			wantAllowed: "*",
		},
		{
			name:        "matching origin echoed",
			origins:     []string{"https://app.example.com"},
			reqOrigin:   "https://app.example.com",
			wantAllowed: "https://app.example.com",
		},
		{
			name:        "unlisted origin not allowed",
			origins:     []string{"https://app.example.com"},
			reqOrigin:   "https://evil.example.com",
			wantAllowed: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newCORSHandler(t, mid.CORS(tt.origins...))

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.reqOrigin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Errorf("expected allow origin %q, got %q", tt.wantAllowed, got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
				t.Error("expected allow methods header to be set")
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := newCORSHandler(t, mid.CORS("*"))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow origin %q, got %q", "*", got)
	}

	// Preflight short-circuits before the route handler.
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty preflight body, got %q", rec.Body.String())
	}
}

func TestCORSFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envValue    string
		reqOrigin   string
		wantAllowed string
	}{
		{
			name:        "configured origin",
			envValue:    "https://app.example.com",
			reqOrigin:   "https://app.example.com",
			wantAllowed: "https://app.example.com",
		},
		{
			name:        "defaults to wildcard",
			envValue:    "",
			reqOrigin:   "https://app.example.com",
			wantAllowed: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MIDTEST_CORS_ORIGINS", tt.envValue)

			mw, err := mid.CORSFromEnv("MIDTEST")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			handler := newCORSHandler(t, mw)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.reqOrigin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Errorf("expected allow origin %q, got %q", tt.wantAllowed, got)
			}
		})
	}
}
