// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package backend

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"bookingsite/internal/metrics"
	"bookingsite/internal/models"
	"bookingsite/internal/sections"
)

// SiteBundle is everything needed to render one company site.
type SiteBundle struct {
	Company    *models.Company
	Categories []models.ServiceCategory
	Services   []models.Service
	Sections   []models.WebsiteSection

	// SectionsFallback is set when Sections holds the built-in default list
	// because the backend list failed or was empty.
	SectionsFallback bool
}

// FetchSite loads the company, catalog and sections in parallel.
//
// Only the company request is fatal: its error is returned as is, so callers
// can check errors.Is(err, ErrNotFound). A failed or empty sections list is
// replaced by sections.DefaultSections, and a failed catalog request leaves
// that part of the catalog empty.
func (c *Client) FetchSite(ctx context.Context, slug string) (*SiteBundle, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		company    *models.Company
		categories []models.ServiceCategory
		services   []models.Service
		list       []models.WebsiteSection
		listErr    error
	)

	g.Go(func() error {
		co, err := c.Company(gctx, slug)
		if err != nil {
			return fmt.Errorf("fetch company %q: %w", slug, err)
		}
		company = co
		return nil
	})
	g.Go(func() error {
		cats, err := c.Categories(gctx, slug)
		if err != nil {
			slog.WarnContext(ctx, "categories unavailable, rendering without them", "slug", slug, "error", err)
			return nil
		}
		categories = cats
		return nil
	})
	g.Go(func() error {
		svcs, err := c.Services(gctx, slug)
		if err != nil {
			slog.WarnContext(ctx, "services unavailable, rendering without them", "slug", slug, "error", err)
			return nil
		}
		services = svcs
		return nil
	})
	g.Go(func() error {
		list, listErr = c.Sections(gctx, slug)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := &SiteBundle{
		Company:    company,
		Categories: categories,
		Services:   services,
		Sections:   list,
	}
	// An empty list means the company has not configured its page yet; it
	// gets the default page just like a failed fetch.
	if listErr != nil || len(list) == 0 {
		if listErr != nil {
			slog.WarnContext(ctx, "website sections unavailable, using defaults", "slug", slug, "error", listErr)
		}
		b.Sections = sections.DefaultSections(company.ID)
		b.SectionsFallback = true
		metrics.SectionsFallback.Inc()
	}
	return b, nil
}
