// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"runtime/debug"
	"strings"

	"bookingsite/internal/markdown"
	"bookingsite/internal/metrics"
	"bookingsite/internal/models"
	"bookingsite/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

// Context is the shared per-page data. Each kind's view takes only the
// fields it needs from it.
type Context struct {
	Company    *models.Company
	Categories []models.ServiceCategory
	Services   []models.Service
	Theme      theme.IndustryTheme
	BookingURL string
}

// Block is one rendered section.
type Block struct {
	ID   int64
	Kind Kind
	HTML template.HTML
}

// Renderer renders resolved sections with the embedded per-kind templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded section templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("sections").Funcs(template.FuncMap{
		"lower": strings.ToLower,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse section templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render filters the list to visible sections, orders it, and renders each
// recognized section. Unknown kinds and sections that fail to render are
// logged and skipped; they never affect their siblings.
func (r *Renderer) Render(ctx context.Context, list []models.WebsiteSection, rc Context) []Block {
	site := Site{Company: rc.Company, BookingURL: rc.BookingURL}

	var blocks []Block
	for _, s := range Visible(list) {
		kind := ParseKind(s.SectionType)
		if !kind.Known() {
			slog.WarnContext(ctx, "unknown section type skipped",
				"section_id", s.ID,
				"section_type", s.SectionType,
			)
			metrics.SectionsSkipped.WithLabelValues("unknown_type").Inc()
			continue
		}

		html, err := r.renderOne(Resolve(s, kind, site), rc)
		if err != nil {
			slog.WarnContext(ctx, "section render failed, skipped",
				"section_id", s.ID,
				"section_type", s.SectionType,
				"error", err,
			)
			metrics.SectionsSkipped.WithLabelValues("render_error").Inc()
			continue
		}

		metrics.SectionsRendered.WithLabelValues(string(kind)).Inc()
		blocks = append(blocks, Block{ID: s.ID, Kind: kind, HTML: html})
	}
	return blocks
}

// RenderHTML renders the sections and concatenates the blocks.
func (r *Renderer) RenderHTML(ctx context.Context, list []models.WebsiteSection, rc Context) template.HTML {
	var b strings.Builder
	for _, blk := range r.Render(ctx, list, rc) {
		b.WriteString(string(blk.HTML))
		b.WriteString("\n")
	}
	return template.HTML(b.String())
}

// renderOne builds the view for a resolved section and executes the
// matching template. A panic inside a view builder or template is turned
// into an error for this section only.
func (r *Renderer) renderOne(res Resolved, rc Context) (out template.HTML, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic rendering %s section: %v\n%s", res.Kind, rec, debug.Stack())
		}
	}()

	name, data, err := viewFor(res, rc)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// viewFor dispatches on the content type. Every Content implementation has
// exactly one case; placeholders share one template.
func viewFor(res Resolved, rc Context) (string, any, error) {
	base := baseView{
		ID:          res.Section.ID,
		Kind:        res.Kind,
		CardStyle:   rc.Theme.CardStyle,
		ButtonStyle: rc.Theme.ButtonStyle,
		BookingURL:  rc.BookingURL,
	}

	switch c := res.Content.(type) {
	case HeroContent:
		return "hero", heroView{baseView: base, Content: c, HeroStyle: rc.Theme.HeroStyle}, nil
	case ServicesContent:
		return "services", servicesView{
			baseView: base,
			Content:  c,
			Groups:   groupServices(c, rc.Categories, rc.Services, currencyOf(rc.Company)),
		}, nil
	case ContactContent:
		v := contactView{baseView: base, Content: c}
		if c.ShowQRCode && rc.BookingURL != "" {
			qr, err := qrDataURI(rc.BookingURL)
			if err != nil {
				slog.Warn("booking qr code failed", "error", err)
			} else {
				v.QRCode = qr
			}
		}
		return "contact", v, nil
	case MapContent:
		return "map", mapView{baseView: base, Content: c, EmbedURL: mapEmbedURL(c), SearchURL: mapSearchURL(c.Address)}, nil
	case FAQContent:
		return "faq", faqView{baseView: base, Content: c}, nil
	case PricingContent:
		return "pricing", pricingView{baseView: base, Content: c}, nil
	case BenefitsContent:
		return "benefits", benefitsView{baseView: base, Content: c}, nil
	case CTAContent:
		return "cta", ctaView{baseView: base, Content: c}, nil
	case CustomTextContent:
		body, err := markdown.ToSafeHTML(c.Body)
		if err != nil {
			return "", nil, fmt.Errorf("custom text markdown: %w", err)
		}
		return "custom_text", customTextView{baseView: base, Title: c.Title, Body: template.HTML(body)}, nil
	case PlaceholderContent:
		return "placeholder", placeholderView{baseView: base, Title: c.Title}, nil
	default:
		return "", nil, fmt.Errorf("no view for content %T", res.Content)
	}
}

func currencyOf(c *models.Company) string {
	if c == nil {
		return ""
	}
	return c.Currency
}
