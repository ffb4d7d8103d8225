// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"bookingsite/internal/backend"
	"bookingsite/internal/engine"
	"bookingsite/internal/handlers"
	"bookingsite/internal/middleware"
	"bookingsite/internal/models"
	"bookingsite/internal/session"
)

type stubSource struct{}

func (stubSource) FetchSite(_ context.Context, slug string) (*backend.SiteBundle, error) {
	co, err := stubSource{}.Company(context.Background(), slug)
	if err != nil {
		return nil, err
	}
	return &backend.SiteBundle{Company: co}, nil
}

func (stubSource) Company(_ context.Context, slug string) (*models.Company, error) {
	if slug != "lotus" {
		return nil, backend.ErrNotFound
	}
	return &models.Company{ID: 1, Slug: "lotus", Name: "Lotus Studio"}, nil
}

type stubPrefs struct{}

func (stubPrefs) Get(_ context.Context, id uuid.UUID) (*models.UIPreferences, error) {
	return models.DefaultUIPreferences(id), nil
}
func (stubPrefs) Upsert(context.Context, *models.UIPreferences) error { return nil }
func (stubPrefs) Delete(context.Context, uuid.UUID) error             { return nil }

type stubSessions struct{}

func (stubSessions) Ensure(context.Context, http.ResponseWriter, *http.Request) (*session.Data, error) {
	return &session.Data{VisitorID: uuid.New()}, nil
}

func (stubSessions) Destroy(context.Context, http.ResponseWriter, *http.Request) error { return nil }

func testRouter(t *testing.T, withPrefs bool, rl *middleware.RateLimiter) http.Handler {
	t.Helper()
	eng, err := engine.New("")
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	d := Deps{
		Public:      handlers.NewPublic(eng, stubSource{}, nil),
		RateLimiter: rl,
	}
	if withPrefs {
		d.Preferences = handlers.NewPreferences(stubPrefs{}, stubSessions{})
	}
	return New(d)
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestRoutes(t *testing.T) {
	h := testRouter(t, true, nil)

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/sites/lotus", http.StatusOK},
		{"/sites/lotus/theme.css", http.StatusOK},
		{"/sites/unknown", http.StatusNotFound},
		{"/sites/Not%20A%20Slug", http.StatusNotFound},
		{"/api/theme/industries", http.StatusOK},
		{"/api/theme/preview?primary=%23123456", http.StatusOK},
		{"/api/theme/preview?primary=nope", http.StatusBadRequest},
		{"/api/preferences", http.StatusOK},
		{"/api/preferences/theme.css", http.StatusOK},
		{"/admin", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if rec := get(h, tt.path); rec.Code != tt.want {
				t.Errorf("GET %s: got %d, want %d", tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestSecureHeadersApplied(t *testing.T) {
	rec := get(testRouter(t, false, nil), "/sites/lotus")
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("site responses should carry a CSP")
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := testRouter(t, false, nil)
	get(h, "/sites/lotus")

	rec := get(h, "/metrics")
	if !strings.Contains(rec.Body.String(), "bookingsite_http_requests_total") {
		t.Error("metrics exposition should include request counters")
	}
}

func TestPreferencesNotMountedWithoutStore(t *testing.T) {
	if rec := get(testRouter(t, false, nil), "/api/preferences"); rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", rec.Code)
	}
}

func TestPreferencesRequireCSRF(t *testing.T) {
	h := testRouter(t, true, nil)

	first := get(h, "/api/preferences")
	var csrf *http.Cookie
	for _, c := range first.Result().Cookies() {
		if c.Name == middleware.CSRFCookieName {
			csrf = c
		}
	}
	if csrf == nil {
		t.Fatal("GET should issue a CSRF cookie")
	}
	if got := first.Header().Get(middleware.CSRFHeaderName); got != csrf.Value {
		t.Errorf("GET %s header = %q, want cookie token %q", middleware.CSRFHeaderName, got, csrf.Value)
	}

	put := func(token string) int {
		req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(`{"accent_color":"#fff"}`))
		req.AddCookie(csrf)
		if token != "" {
			req.Header.Set(middleware.CSRFHeaderName, token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := put(""); code != http.StatusForbidden {
		t.Errorf("PUT without token: got %d, want 403", code)
	}
	if code := put(csrf.Value); code != http.StatusOK {
		t.Errorf("PUT with token: got %d, want 200", code)
	}
}

func TestRateLimitApplied(t *testing.T) {
	rl := middleware.NewRateLimiter(0.1, 1, time.Minute)
	defer rl.Stop()
	h := testRouter(t, false, rl)

	if rec := get(h, "/api/theme/industries"); rec.Code != http.StatusOK {
		t.Fatalf("first request: got %d", rec.Code)
	}
	if rec := get(h, "/api/theme/industries"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want 429", rec.Code)
	}
	// Operational endpoints are not limited.
	if rec := get(h, "/health"); rec.Code != http.StatusOK {
		t.Errorf("health: got %d, want 200", rec.Code)
	}
}
