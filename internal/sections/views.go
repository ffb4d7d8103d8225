// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"cmp"
	"encoding/base64"
	"fmt"
	"html/template"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"bookingsite/internal/models"
	"bookingsite/internal/theme"
)

// baseView carries the fields every section template uses.
type baseView struct {
	ID          int64
	Kind        Kind
	CardStyle   theme.CardStyle
	ButtonStyle theme.ButtonStyle
	BookingURL  string
}

type heroView struct {
	baseView
	Content   HeroContent
	HeroStyle theme.HeroStyle
}

type serviceItem struct {
	Name        string
	Description string
	Price       string
	Duration    string
}

type serviceGroup struct {
	Name     string
	Services []serviceItem
}

type servicesView struct {
	baseView
	Content ServicesContent
	Groups  []serviceGroup
}

type contactView struct {
	baseView
	Content ContactContent
	QRCode  template.URL
}

type mapView struct {
	baseView
	Content   MapContent
	EmbedURL  string
	SearchURL string
}

type faqView struct {
	baseView
	Content FAQContent
}

type pricingView struct {
	baseView
	Content PricingContent
}

type benefitsView struct {
	baseView
	Content BenefitsContent
}

type ctaView struct {
	baseView
	Content CTAContent
}

type customTextView struct {
	baseView
	Title string
	Body  template.HTML
}

type placeholderView struct {
	baseView
	Title string
}

// otherCategory collects services without a (known) category.
const otherCategory = "Other"

// groupServices groups active services by category in category order.
// Categories listed in c.CategoryIDs restrict the output; c.Limit caps the
// total number of services shown.
func groupServices(c ServicesContent, categories []models.ServiceCategory, services []models.Service, currency string) []serviceGroup {
	cats := slices.Clone(categories)
	slices.SortStableFunc(cats, func(a, b models.ServiceCategory) int {
		return cmp.Compare(a.Order, b.Order)
	})

	allowed := func(id int64) bool {
		return len(c.CategoryIDs) == 0 || slices.Contains(c.CategoryIDs, id)
	}

	byCategory := make(map[int64][]models.Service)
	var other []models.Service
	known := make(map[int64]bool, len(cats))
	for _, cat := range cats {
		known[cat.ID] = true
	}
	for _, s := range services {
		if !s.IsActive {
			continue
		}
		if s.CategoryID != nil && known[*s.CategoryID] {
			byCategory[*s.CategoryID] = append(byCategory[*s.CategoryID], s)
			continue
		}
		other = append(other, s)
	}

	remaining := c.Limit
	take := func(list []models.Service) []serviceItem {
		var items []serviceItem
		for _, s := range list {
			if c.Limit > 0 {
				if remaining == 0 {
					break
				}
				remaining--
			}
			item := serviceItem{Name: s.Name, Description: s.Description}
			if c.ShowPrices {
				item.Price = formatPrice(s.Price, s.PriceTo, currency)
			}
			if c.ShowDuration {
				item.Duration = formatDuration(s.DurationMinutes)
			}
			items = append(items, item)
		}
		return items
	}

	var groups []serviceGroup
	for _, cat := range cats {
		if !allowed(cat.ID) {
			continue
		}
		if items := take(byCategory[cat.ID]); len(items) > 0 {
			groups = append(groups, serviceGroup{Name: cat.Name, Services: items})
		}
	}
	if len(c.CategoryIDs) == 0 {
		if items := take(other); len(items) > 0 {
			groups = append(groups, serviceGroup{Name: otherCategory, Services: items})
		}
	}
	return groups
}

// formatPrice renders "1500", "1500.50" or "1500 – 2500", followed by the
// currency when one is set. A zero price renders as empty.
func formatPrice(from float64, to *float64, currency string) string {
	if from <= 0 && (to == nil || *to <= 0) {
		return ""
	}
	s := formatAmount(from)
	if to != nil && *to > from {
		s += " – " + formatAmount(*to)
	}
	if currency = strings.TrimSpace(currency); currency != "" {
		s += " " + currency
	}
	return s
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatDuration renders minutes as "45 min", "1 h" or "1 h 30 min".
func formatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d h", h)
	default:
		return fmt.Sprintf("%d h %d min", h, m)
	}
}

// qrDataURI encodes the booking URL as a PNG QR code data URI.
func qrDataURI(target string) (template.URL, error) {
	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}

// mapEmbedURL builds an OpenStreetMap embed URL around the coordinates.
// Returns "" when the section has no coordinates.
func mapEmbedURL(c MapContent) string {
	if c.Latitude == nil || c.Longitude == nil {
		return ""
	}
	lat, lon := *c.Latitude, *c.Longitude
	d := 180 / math.Pow(2, float64(c.Zoom))

	q := url.Values{}
	q.Set("bbox", fmt.Sprintf("%.6f,%.6f,%.6f,%.6f", lon-d, lat-d, lon+d, lat+d))
	q.Set("layer", "mapnik")
	q.Set("marker", fmt.Sprintf("%.6f,%.6f", lat, lon))
	return "https://www.openstreetmap.org/export/embed.html?" + q.Encode()
}

// mapSearchURL links to an OpenStreetMap search for the address.
func mapSearchURL(address string) string {
	if strings.TrimSpace(address) == "" {
		return ""
	}
	return "https://www.openstreetmap.org/search?query=" + url.QueryEscape(address)
}
