// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// company site server. It organizes routes into site, theme API and
// preference groups with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookingsite/internal/handlers"
	"bookingsite/internal/middleware"
)

// Deps carries the handler groups and shared middleware the router wires.
type Deps struct {
	Public *handlers.Public

	// Preferences is nil when PostgreSQL or Valkey is not configured; the
	// preference routes are then not mounted.
	Preferences *handlers.Preferences

	// RateLimiter is optional; when set it guards site and API routes.
	RateLimiter *middleware.RateLimiter

	// SecureCookies marks the CSRF cookie Secure.
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecureHeaders)

	// Operational endpoints: no rate limit, no CSRF.
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Middleware)
		}

		// Public company sites.
		r.Get("/sites/{slug}", d.Public.Site)
		r.Get("/sites/{slug}/theme.css", d.Public.SiteCSS)

		r.Route("/api", func(r chi.Router) {
			r.Get("/theme/preview", d.Public.ThemePreview)
			r.Get("/theme/industries", d.Public.Industries)

			if d.Preferences != nil {
				r.Route("/preferences", func(r chi.Router) {
					r.Use(middleware.NewCSRF(d.SecureCookies))
					r.Get("/", d.Preferences.Get)
					r.Put("/", d.Preferences.Put)
					r.Delete("/", d.Preferences.Reset)
					r.Get("/theme.css", d.Preferences.CSS)
				})
			}
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
