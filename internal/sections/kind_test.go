// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"bookingsite/internal/models"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"hero", KindHero},
		{"services", KindServices},
		{"custom_text", KindCustomText},
		{"  FAQ ", KindFAQ},
		{"Pricing", KindPricing},
		{"unknown_future_type", KindUnknown},
		{"", KindUnknown},
		{"custom-text", KindUnknown},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKindsClosedSet(t *testing.T) {
	if len(allKinds) != 14 {
		t.Fatalf("allKinds has %d entries, want 14", len(allKinds))
	}
	for _, k := range allKinds {
		if !k.Known() {
			t.Errorf("%q should be known", k)
		}
		if ParseKind(string(k)) != k {
			t.Errorf("ParseKind(%q) did not round trip", k)
		}
	}
	if KindUnknown.Known() {
		t.Error("KindUnknown should not be known")
	}
	if Kind("future").Known() {
		t.Error("unlisted kind should not be known")
	}
}

func TestIsPlaceholder(t *testing.T) {
	placeholders := []Kind{KindAbout, KindTeam, KindGallery, KindTestimonials, KindSchedule}
	for _, k := range placeholders {
		if !k.IsPlaceholder() {
			t.Errorf("%q should be a placeholder", k)
		}
	}
	for _, k := range []Kind{KindHero, KindServices, KindContact, KindMap, KindFAQ, KindPricing, KindBenefits, KindCTA, KindCustomText} {
		if k.IsPlaceholder() {
			t.Errorf("%q should have a dedicated layout", k)
		}
	}
}

func TestVisibleFiltersAndOrders(t *testing.T) {
	in := []models.WebsiteSection{
		{ID: 1, Order: 2, IsVisible: true},
		{ID: 2, Order: 0, IsVisible: false},
		{ID: 3, Order: 1, IsVisible: true},
	}

	got := ids(Visible(in))
	if d := cmp.Diff([]int64{3, 1}, got); d != "" {
		t.Errorf("Visible order mismatch (-want +got):\n%s", d)
	}

	// Input is untouched.
	if in[0].ID != 1 || in[1].ID != 2 || in[2].ID != 3 {
		t.Error("Visible modified its input")
	}
}

func TestVisibleStableTies(t *testing.T) {
	in := []models.WebsiteSection{
		{ID: 10, Order: 1, IsVisible: true},
		{ID: 11, Order: 0, IsVisible: true},
		{ID: 12, Order: 1, IsVisible: true},
		{ID: 13, Order: 0, IsVisible: true},
		{ID: 14, Order: 1, IsVisible: true},
		{ID: 15, Order: -5, IsVisible: true},
	}

	got := ids(Visible(in))
	if d := cmp.Diff([]int64{15, 11, 13, 10, 12, 14}, got); d != "" {
		t.Errorf("ties should keep input order (-want +got):\n%s", d)
	}
}

func TestVisibleEmpty(t *testing.T) {
	if got := Visible(nil); len(got) != 0 {
		t.Errorf("Visible(nil) = %v, want empty", got)
	}
}

func TestDefaultSections(t *testing.T) {
	list := DefaultSections(42)
	if len(list) == 0 {
		t.Fatal("DefaultSections returned nothing")
	}
	for i, s := range list {
		if s.CompanyID != 42 || !s.IsVisible || s.Order != i {
			t.Errorf("default section %d = %+v", i, s)
		}
		if ParseKind(s.SectionType) == KindUnknown {
			t.Errorf("default section %d has unknown type %q", i, s.SectionType)
		}
	}
}

func ids(list []models.WebsiteSection) []int64 {
	out := make([]int64, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}
