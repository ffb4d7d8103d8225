// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics declares the Prometheus collectors shared by the site
// renderer, the backend client, and the HTTP middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by route pattern, method and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingsite_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// HTTPDuration tracks request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookingsite_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// SiteRenders counts company page renders by outcome
	// (ok, not_found, backend_error, render_error).
	SiteRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingsite_site_renders_total",
		Help: "Company site renders by outcome",
	}, []string{"result"})

	// SectionsRendered counts rendered sections by kind.
	SectionsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingsite_sections_rendered_total",
		Help: "Rendered website sections by kind",
	}, []string{"kind"})

	// SectionsSkipped counts sections dropped from a page by reason
	// (unknown_type, render_error).
	SectionsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingsite_sections_skipped_total",
		Help: "Website sections skipped during render by reason",
	}, []string{"reason"})

	// SectionsFallback counts pages rendered with the built-in section list.
	SectionsFallback = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookingsite_sections_fallback_total",
		Help: "Pages rendered with default sections because the backend list failed or was empty",
	})

	// ThemeInputRejected counts company color/font values replaced by defaults.
	ThemeInputRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingsite_theme_input_rejected_total",
		Help: "Company theme values replaced by defaults by field",
	}, []string{"field"})

	// BackendRequests counts calls to the booking backend by endpoint and status class.
	BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingsite_backend_requests_total",
		Help: "Backend API requests by endpoint and status class",
	}, []string{"endpoint", "status"})

	// BackendDuration tracks backend call latency by endpoint.
	BackendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookingsite_backend_request_duration_seconds",
		Help:    "Backend API request duration in seconds",
		Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"endpoint"})

	// PageCacheLookups counts site cache lookups by result (hit, miss, error).
	PageCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookingsite_page_cache_lookups_total",
		Help: "Rendered page cache lookups by result",
	}, []string{"result"})

	// RateLimited counts requests rejected by the per-IP limiter.
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookingsite_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	})
)
