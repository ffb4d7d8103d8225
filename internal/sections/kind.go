// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sections turns a company's website section list into rendered
// HTML blocks. Section types form a closed set of kinds; each kind has one
// content schema, one defaults step, and one template.
package sections

import (
	"cmp"
	"slices"
	"strings"

	"bookingsite/internal/models"
)

// Kind is a recognized section type. KindUnknown stands for every value the
// backend may send that this renderer does not know.
type Kind string

const (
	KindHero         Kind = "hero"
	KindServices     Kind = "services"
	KindContact      Kind = "contact"
	KindMap          Kind = "map"
	KindAbout        Kind = "about"
	KindTeam         Kind = "team"
	KindBenefits     Kind = "benefits"
	KindGallery      Kind = "gallery"
	KindTestimonials Kind = "testimonials"
	KindFAQ          Kind = "faq"
	KindCTA          Kind = "cta"
	KindPricing      Kind = "pricing"
	KindSchedule     Kind = "schedule"
	KindCustomText   Kind = "custom_text"

	KindUnknown Kind = ""
)

// allKinds is the closed set, in the order the admin editor lists them.
var allKinds = []Kind{
	KindHero, KindServices, KindContact, KindMap, KindAbout, KindTeam,
	KindBenefits, KindGallery, KindTestimonials, KindFAQ, KindCTA,
	KindPricing, KindSchedule, KindCustomText,
}

// placeholderKinds are recognized but rendered as a generic "coming soon" block.
var placeholderKinds = map[Kind]bool{
	KindAbout:        true,
	KindTeam:         true,
	KindGallery:      true,
	KindTestimonials: true,
	KindSchedule:     true,
}

// ParseKind maps a backend section_type onto a Kind. Matching is exact
// after trimming and lowercasing; anything else is KindUnknown.
func ParseKind(s string) Kind {
	if k := Kind(strings.ToLower(strings.TrimSpace(s))); k.Known() {
		return k
	}
	return KindUnknown
}

// Known reports whether k is one of the recognized kinds.
func (k Kind) Known() bool {
	return k != KindUnknown && slices.Contains(allKinds, k)
}

// IsPlaceholder reports whether k renders as a placeholder block.
func (k Kind) IsPlaceholder() bool {
	return placeholderKinds[k]
}

// Visible returns the visible sections sorted ascending by Order. Sections
// with equal Order keep their relative input order. The input is not modified.
func Visible(list []models.WebsiteSection) []models.WebsiteSection {
	out := make([]models.WebsiteSection, 0, len(list))
	for _, s := range list {
		if s.IsVisible {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b models.WebsiteSection) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// DefaultSections is the built-in page used when the backend section list
// is unavailable or empty.
func DefaultSections(companyID int64) []models.WebsiteSection {
	kinds := []Kind{KindHero, KindServices, KindBenefits, KindContact, KindMap}
	out := make([]models.WebsiteSection, 0, len(kinds))
	for i, k := range kinds {
		out = append(out, models.WebsiteSection{
			CompanyID:   companyID,
			SectionType: string(k),
			Order:       i,
			IsVisible:   true,
		})
	}
	return out
}
