// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export publishes a rendered company site as static files to
// object storage.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"bookingsite/internal/backend"
	"bookingsite/internal/engine"
)

// Uploader stores public objects. *storage.Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, key, contentType, cacheControl string, body []byte) error
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
}

// SiteFetcher loads a company site bundle. *backend.Client satisfies it.
type SiteFetcher interface {
	FetchSite(ctx context.Context, slug string) (*backend.SiteBundle, error)
}

// cacheControl is applied to every exported object.
const cacheControl = "public, max-age=300"

// Result lists the public URLs of the uploaded files.
type Result struct {
	PageURL string
	CSSURL  string
}

// Exporter renders a site and uploads index.html and theme.css under
// sites/<slug>/.
type Exporter struct {
	fetcher  SiteFetcher
	engine   *engine.Engine
	uploader Uploader
}

// New creates an Exporter.
func New(fetcher SiteFetcher, eng *engine.Engine, uploader Uploader) *Exporter {
	return &Exporter{fetcher: fetcher, engine: eng, uploader: uploader}
}

// Keys returns the object keys used for a slug's page and CSS.
func Keys(slug string) (page, css string) {
	prefix := "sites/" + slug + "/"
	return prefix + "index.html", prefix + "theme.css"
}

// Export fetches, renders and uploads one company site.
func (e *Exporter) Export(ctx context.Context, slug string) (*Result, error) {
	bundle, err := e.fetcher.FetchSite(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", slug, err)
	}

	page, err := e.engine.RenderSite(ctx, bundle, engine.Options{})
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", slug, err)
	}
	css := e.engine.RenderCSS(bundle.Company)

	pageKey, cssKey := Keys(slug)
	if err := e.uploader.Upload(ctx, pageKey, "text/html; charset=utf-8", cacheControl, page); err != nil {
		return nil, fmt.Errorf("export %s: %w", slug, err)
	}
	if err := e.uploader.Upload(ctx, cssKey, "text/css; charset=utf-8", cacheControl, []byte(css)); err != nil {
		return nil, fmt.Errorf("export %s: %w", slug, err)
	}

	res := &Result{PageURL: e.uploader.FileURL(pageKey), CSSURL: e.uploader.FileURL(cssKey)}
	slog.InfoContext(ctx, "site exported",
		"slug", slug,
		"page_url", res.PageURL,
		"sections_fallback", bundle.SectionsFallback,
	)
	return res, nil
}

// Remove deletes a previously exported site. Missing objects are not an
// error.
func (e *Exporter) Remove(ctx context.Context, slug string) error {
	pageKey, cssKey := Keys(slug)
	for _, key := range []string{pageKey, cssKey} {
		if err := e.uploader.Delete(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", slug, err)
		}
	}
	slog.InfoContext(ctx, "exported site removed", "slug", slug)
	return nil
}
