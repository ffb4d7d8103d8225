// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine composes public company pages. It resolves the company's
// colors and industry theme into a CSS variable block, renders the visible
// website sections, and wraps both in the embedded page layout.
package engine

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"bookingsite/internal/backend"
	"bookingsite/internal/metrics"
	"bookingsite/internal/models"
	"bookingsite/internal/sections"
	"bookingsite/internal/theme"
)

//go:embed templates/layout.html
var layoutFS embed.FS

// PageData holds all variables available to the layout template.
type PageData struct {
	Title       string
	Description string
	CSS         template.CSS
	FontsURL    string
	LogoURL     string
	Theme       theme.IndustryTheme
	Company     *models.Company
	BookingURL  string
	Sections    template.HTML
	Year        int
}

// Options tune a single render.
type Options struct {
	// BookingURL overrides the booking link derived from the company slug.
	BookingURL string
}

// Engine renders company sites. It is safe for concurrent use.
type Engine struct {
	layout      *template.Template
	sections    *sections.Renderer
	bookingBase string
}

// New parses the embedded layout and section templates. bookingBaseURL is
// the public booking app root; the company slug is appended to it.
func New(bookingBaseURL string) (*Engine, error) {
	layout, err := template.ParseFS(layoutFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout template: %w", err)
	}

	renderer, err := sections.NewRenderer()
	if err != nil {
		return nil, err
	}

	return &Engine{
		layout:      layout,
		sections:    renderer,
		bookingBase: strings.TrimRight(bookingBaseURL, "/"),
	}, nil
}

// BookingURL returns the booking link for a company, or "" when no booking
// base URL is configured.
func (e *Engine) BookingURL(slug string) string {
	if e.bookingBase == "" || slug == "" {
		return ""
	}
	return e.bookingBase + "/" + url.PathEscape(slug)
}

// RenderSite renders the full HTML page for a fetched site bundle.
func (e *Engine) RenderSite(ctx context.Context, b *backend.SiteBundle, opts Options) ([]byte, error) {
	if b == nil || b.Company == nil {
		return nil, errors.New("render site: missing company")
	}
	co := b.Company

	colors := e.colorsFor(ctx, co)
	th := theme.GetTheme(co.Industry)

	bookingURL := opts.BookingURL
	if bookingURL == "" {
		bookingURL = e.BookingURL(co.Slug)
	}

	body := e.sections.RenderHTML(ctx, b.Sections, sections.Context{
		Company:    co,
		Categories: b.Categories,
		Services:   b.Services,
		Theme:      th,
		BookingURL: bookingURL,
	})

	data := PageData{
		Title:       co.Name,
		Description: co.Description,
		CSS:         template.CSS(theme.BuildCSS(colors, th)),
		FontsURL:    FontsURL(colors.HeadingFont, colors.BodyFont),
		LogoURL:     co.LogoURL,
		Theme:       th,
		Company:     co,
		BookingURL:  bookingURL,
		Sections:    body,
		Year:        time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := e.layout.ExecuteTemplate(&buf, "layout", data); err != nil {
		metrics.SiteRenders.WithLabelValues("render_error").Inc()
		return nil, fmt.Errorf("execute layout: %w", err)
	}
	metrics.SiteRenders.WithLabelValues("ok").Inc()
	return buf.Bytes(), nil
}

// RenderCSS returns the company's CSS variable block. Invalid colors and
// fonts are replaced by defaults and logged.
func (e *Engine) RenderCSS(co *models.Company) string {
	if co == nil {
		return theme.BuildCSS(theme.DefaultColors(), theme.GetTheme(theme.DefaultIndustry))
	}
	return theme.BuildCSS(e.colorsFor(context.Background(), co), theme.GetTheme(co.Industry))
}

// PreviewCSS builds the CSS block for ad-hoc input without any fallback:
// the first invalid field is returned as a *theme.FieldError.
func (e *Engine) PreviewCSS(cfg theme.ColorConfig, industry string) (string, error) {
	if err := theme.Validate(cfg); err != nil {
		return "", err
	}
	cfg, _ = theme.ResolveColors(cfg)
	return theme.BuildCSS(cfg, theme.GetTheme(industry)), nil
}

// ColorsFromCompany maps the company's branding fields to a ColorConfig.
func ColorsFromCompany(co *models.Company) theme.ColorConfig {
	return theme.ColorConfig{
		Primary:     co.PrimaryColor,
		Secondary:   co.SecondaryColor,
		Background:  co.BackgroundColor,
		HeadingFont: co.HeadingFont,
		BodyFont:    co.BodyFont,
	}
}

// colorsFor resolves the company's colors, logging each replaced value.
func (e *Engine) colorsFor(ctx context.Context, co *models.Company) theme.ColorConfig {
	colors, problems := theme.ResolveColors(ColorsFromCompany(co))
	for _, p := range problems {
		field := "unknown"
		var fe *theme.FieldError
		if errors.As(p, &fe) {
			field = fe.Field
		}
		slog.WarnContext(ctx, "company theme value replaced by default",
			"company", co.Slug,
			"field", field,
			"error", p,
		)
		metrics.ThemeInputRejected.WithLabelValues(field).Inc()
	}
	return colors
}

// FontsURL builds the Google Fonts stylesheet URL for the given families,
// skipping duplicates and names that fail validation.
func FontsURL(families ...string) string {
	seen := make(map[string]bool, len(families))
	var parts []string
	for _, f := range families {
		if !theme.ValidFontName(f) || seen[f] {
			continue
		}
		seen[f] = true
		parts = append(parts, "family="+strings.ReplaceAll(f, " ", "+")+":wght@400;500;600;700")
	}
	if len(parts) == 0 {
		return ""
	}
	return "https://fonts.googleapis.com/css2?" + strings.Join(parts, "&") + "&display=swap"
}
