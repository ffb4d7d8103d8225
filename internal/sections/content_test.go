// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bookingsite/internal/models"
)

func section(kind Kind, content string) models.WebsiteSection {
	s := models.WebsiteSection{ID: 1, SectionType: string(kind), IsVisible: true}
	if content != "" {
		s.Content = json.RawMessage(content)
	}
	return s
}

func testSite() Site {
	lat, lon := 55.7558, 37.6173
	return Site{
		Company: &models.Company{
			ID:           7,
			Slug:         "lotus",
			Name:         "Lotus Studio",
			Description:  "Nails and brows in the city center",
			Phone:        "+7 900 000 00 00",
			Email:        "hello@lotus.example",
			Address:      "Tverskaya 1",
			City:         "Moscow",
			Latitude:     &lat,
			Longitude:    &lon,
			WorkingHours: "10:00-21:00",
			Instagram:    "lotus.studio",
			CoverURL:     "https://cdn.example/cover.jpg",
		},
		BookingURL: "https://book.example/lotus",
	}
}

func TestResolveEmptyContentUsesDefaults(t *testing.T) {
	site := testSite()
	for _, content := range []string{"", "{}", "null", "  "} {
		faq := Resolve(section(KindFAQ, content), KindFAQ, site).Content.(FAQContent)
		if len(faq.Items) == 0 || faq.Title == "" {
			t.Errorf("FAQ with content %q resolved empty: %+v", content, faq)
		}

		pricing := Resolve(section(KindPricing, content), KindPricing, site).Content.(PricingContent)
		if len(pricing.Plans) == 0 || pricing.Title == "" {
			t.Errorf("pricing with content %q resolved empty: %+v", content, pricing)
		}

		benefits := Resolve(section(KindBenefits, content), KindBenefits, site).Content.(BenefitsContent)
		if len(benefits.Items) == 0 || benefits.Title == "" {
			t.Errorf("benefits with content %q resolved empty: %+v", content, benefits)
		}
	}
}

func TestResolveKeepsProvidedItems(t *testing.T) {
	res := Resolve(section(KindFAQ, `{"title":"Questions","items":[{"question":"Parking?","answer":"Yes"},{"question":"  ","answer":"dropped"}]}`), KindFAQ, testSite())
	want := FAQContent{Title: "Questions", Items: []FAQItem{{Question: "Parking?", Answer: "Yes"}}}
	if d := cmp.Diff(want, res.Content); d != "" {
		t.Errorf("FAQ mismatch (-want +got):\n%s", d)
	}
}

func TestResolveHeroFromCompany(t *testing.T) {
	res := Resolve(section(KindHero, `{"button_text":"Sign up"}`), KindHero, testSite())
	want := HeroContent{
		Title:      "Lotus Studio",
		Subtitle:   "Nails and brows in the city center",
		ButtonText: "Sign up",
		ImageURL:   "https://cdn.example/cover.jpg",
	}
	if d := cmp.Diff(want, res.Content); d != "" {
		t.Errorf("hero mismatch (-want +got):\n%s", d)
	}
}

func TestResolveWithoutCompany(t *testing.T) {
	res := Resolve(section(KindHero, ""), KindHero, Site{})
	hero := res.Content.(HeroContent)
	if hero.Title == "" || hero.ButtonText == "" {
		t.Errorf("hero without company should still have defaults: %+v", hero)
	}
}

func TestResolveMalformedContent(t *testing.T) {
	// items must be an array; the whole payload falls back to defaults.
	res := Resolve(section(KindBenefits, `{"title":"Mine","items":"nope"}`), KindBenefits, testSite())
	b := res.Content.(BenefitsContent)
	if b.Title != "Why choose us" {
		t.Errorf("malformed content title = %q, want default", b.Title)
	}
	if d := cmp.Diff(defaultBenefits(), b.Items); d != "" {
		t.Errorf("malformed content items mismatch (-want +got):\n%s", d)
	}

	svc := Resolve(section(KindServices, `{not json`), KindServices, testSite()).Content.(ServicesContent)
	if !svc.ShowPrices || !svc.ShowDuration {
		t.Errorf("malformed services content should keep default toggles: %+v", svc)
	}
}

func TestResolveServicesToggles(t *testing.T) {
	svc := Resolve(section(KindServices, `{"show_prices":false,"limit":-3}`), KindServices, testSite()).Content.(ServicesContent)
	if svc.ShowPrices {
		t.Error("explicit show_prices=false should be kept")
	}
	if !svc.ShowDuration {
		t.Error("absent show_duration should default to true")
	}
	if svc.Limit != 0 {
		t.Errorf("negative limit should clamp to 0, got %d", svc.Limit)
	}
}

func TestResolveContactFallsBackToCompany(t *testing.T) {
	c := Resolve(section(KindContact, `{"phone":"+1 555"}`), KindContact, testSite()).Content.(ContactContent)
	if c.Phone != "+1 555" {
		t.Errorf("phone = %q, want override", c.Phone)
	}
	if c.Email != "hello@lotus.example" || c.Address != "Tverskaya 1, Moscow" || c.WorkingHours != "10:00-21:00" {
		t.Errorf("contact did not fall back to company: %+v", c)
	}
	if !c.ShowQRCode {
		t.Error("QR code should be on by default")
	}

	off := Resolve(section(KindContact, `{"show_qr_code":false}`), KindContact, testSite()).Content.(ContactContent)
	if off.ShowQRCode {
		t.Error("explicit show_qr_code=false should be kept")
	}
}

func TestResolveMapZoom(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{`{}`, 15},
		{`{"zoom":3}`, 3},
		{`{"zoom":-2}`, 1},
		{`{"zoom":40}`, 19},
	}
	for _, tt := range tests {
		m := Resolve(section(KindMap, tt.content), KindMap, testSite()).Content.(MapContent)
		if m.Zoom != tt.want {
			t.Errorf("content %s: zoom = %d, want %d", tt.content, m.Zoom, tt.want)
		}
		if m.Latitude == nil || m.Longitude == nil {
			t.Errorf("content %s: coordinates should come from company", tt.content)
		}
	}
}

func TestResolveMapCoordinates(t *testing.T) {
	own := Resolve(section(KindMap, `{"latitude":1.5,"longitude":2.5}`), KindMap, testSite()).Content.(MapContent)
	if own.Latitude == nil || *own.Latitude != 1.5 || own.Longitude == nil || *own.Longitude != 2.5 {
		t.Errorf("section coordinates should win: %+v", own)
	}

	site := testSite()
	site.Company.Longitude = nil
	partial := Resolve(section(KindMap, `{"latitude":1.5}`), KindMap, site).Content.(MapContent)
	if partial.Longitude != nil || partial.Latitude == nil || *partial.Latitude != 1.5 {
		t.Errorf("company without full coordinates must not override: %+v", partial)
	}
}

func TestResolveUnknownKind(t *testing.T) {
	if res := Resolve(section(KindUnknown, `{"title":"x"}`), KindUnknown, testSite()); res.Content != nil {
		t.Errorf("unknown kind resolved to %T, want nil", res.Content)
	}
}

func TestResolvePlaceholder(t *testing.T) {
	for _, k := range []Kind{KindAbout, KindTeam, KindGallery, KindTestimonials, KindSchedule} {
		res := Resolve(section(k, ""), k, testSite())
		p, ok := res.Content.(PlaceholderContent)
		if !ok {
			t.Fatalf("%s resolved to %T, want PlaceholderContent", k, res.Content)
		}
		if p.Title == "" || p.sectionKind() != k {
			t.Errorf("%s placeholder = %+v", k, p)
		}
	}

	p := Resolve(section(KindTeam, `{"title":"Masters"}`), KindTeam, testSite()).Content.(PlaceholderContent)
	if p.Title != "Masters" {
		t.Errorf("placeholder title = %q, want Masters", p.Title)
	}
}

func TestResolveContentKindMatches(t *testing.T) {
	for _, k := range allKinds {
		res := Resolve(section(k, ""), k, testSite())
		if res.Content == nil {
			t.Fatalf("%s resolved to nil content", k)
		}
		if res.Content.sectionKind() != k {
			t.Errorf("%s resolved to content of kind %s", k, res.Content.sectionKind())
		}
	}
}

func TestIconGlyph(t *testing.T) {
	if IconStar.Glyph() != "★" {
		t.Errorf("star glyph = %q", IconStar.Glyph())
	}
	if Icon("STAR").Glyph() != "★" {
		t.Error("icon lookup should ignore case")
	}
	if Icon("rocket").Glyph() != IconCheck.Glyph() {
		t.Error("unknown icon should fall back to check")
	}
}
