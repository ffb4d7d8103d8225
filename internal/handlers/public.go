// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bookingsite/internal/backend"
	"bookingsite/internal/cache"
	"bookingsite/internal/engine"
	"bookingsite/internal/metrics"
	"bookingsite/internal/models"
	"bookingsite/internal/slug"
	"bookingsite/internal/theme"
)

// SiteSource loads company data from the booking backend.
type SiteSource interface {
	FetchSite(ctx context.Context, slug string) (*backend.SiteBundle, error)
	Company(ctx context.Context, slug string) (*models.Company, error)
}

// PageCache stores rendered site artifacts between requests.
type PageCache interface {
	Get(ctx context.Context, slug string, a cache.Artifact) ([]byte, bool)
	Set(ctx context.Context, slug string, a cache.Artifact, body []byte)
}

// Public groups handlers for the public company sites and the theme API.
// It checks the L2 Valkey page cache before fetching from the backend and
// rendering, and stores rendered results on miss.
type Public struct {
	engine    *engine.Engine
	source    SiteSource
	pageCache PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil when
// Valkey is not configured.
func NewPublic(eng *engine.Engine, source SiteSource, pageCache PageCache) *Public {
	return &Public{
		engine:    eng,
		source:    source,
		pageCache: pageCache,
	}
}

// Site renders a company's public page.
func (p *Public) Site(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")
	if !slug.Valid(slugParam) {
		http.NotFound(w, r)
		return
	}

	if cached, ok := p.cacheGet(ctx, slugParam, cache.ArtifactPage); ok {
		writeHTML(w, cached)
		return
	}

	bundle, err := p.source.FetchSite(ctx, slugParam)
	if err != nil {
		p.backendError(w, r, slugParam, err)
		return
	}

	rendered, err := p.engine.RenderSite(ctx, bundle, engine.Options{})
	if err != nil {
		slog.ErrorContext(ctx, "render site failed", "slug", slugParam, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Pages built from the default section list are not cached, so the
	// company's own layout shows up as soon as the backend recovers.
	if !bundle.SectionsFallback {
		p.cacheSet(ctx, slugParam, cache.ArtifactPage, rendered)
	}
	writeHTML(w, rendered)
}

// SiteCSS serves the company's CSS variable block as a stylesheet.
func (p *Public) SiteCSS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")
	if !slug.Valid(slugParam) {
		http.NotFound(w, r)
		return
	}

	if cached, ok := p.cacheGet(ctx, slugParam, cache.ArtifactCSS); ok {
		writeCSS(w, cached)
		return
	}

	co, err := p.source.Company(ctx, slugParam)
	if err != nil {
		p.backendError(w, r, slugParam, err)
		return
	}

	css := []byte(p.engine.RenderCSS(co))
	p.cacheSet(ctx, slugParam, cache.ArtifactCSS, css)
	writeCSS(w, css)
}

// ThemePreview renders the CSS block for colors given in the query string.
// Unlike page rendering it does not fall back: any invalid value is a 400.
// Omitted values use the default palette.
func (p *Public) ThemePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	def := theme.DefaultColors()

	cfg := theme.ColorConfig{
		Primary:     queryOr(q.Get("primary"), def.Primary),
		Secondary:   queryOr(q.Get("secondary"), def.Secondary),
		Background:  queryOr(q.Get("background"), def.Background),
		HeadingFont: queryOr(q.Get("heading_font"), def.HeadingFont),
		BodyFont:    queryOr(q.Get("body_font"), def.BodyFont),
	}

	industry := strings.TrimSpace(q.Get("industry"))
	if industry != "" && !theme.Has(industry) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "unknown industry",
			Field: "industry",
		})
		return
	}

	css, err := p.engine.PreviewCSS(cfg, industry)
	if err != nil {
		var fe *theme.FieldError
		if errors.As(err, &fe) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fe.Error(), Field: fe.Field})
			return
		}
		slog.ErrorContext(r.Context(), "theme preview failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeCSS(w, []byte(css))
}

// Industries lists every registered industry theme.
func (p *Public) Industries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, theme.Themes())
}

// backendError maps a failed backend fetch to 404 or 502.
func (p *Public) backendError(w http.ResponseWriter, r *http.Request, slugParam string, err error) {
	if errors.Is(err, backend.ErrNotFound) {
		metrics.SiteRenders.WithLabelValues("not_found").Inc()
		http.NotFound(w, r)
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	slog.ErrorContext(r.Context(), "backend fetch failed", "slug", slugParam, "error", err)
	metrics.SiteRenders.WithLabelValues("backend_error").Inc()
	http.Error(w, "Bad Gateway", http.StatusBadGateway)
}

func (p *Public) cacheGet(ctx context.Context, slugParam string, a cache.Artifact) ([]byte, bool) {
	if p.pageCache == nil {
		return nil, false
	}
	return p.pageCache.Get(ctx, slugParam, a)
}

func (p *Public) cacheSet(ctx context.Context, slugParam string, a cache.Artifact, body []byte) {
	if p.pageCache == nil {
		return
	}
	p.pageCache.Set(ctx, slugParam, a, body)
}

func queryOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}
