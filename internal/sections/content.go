// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"

	"bookingsite/internal/models"
)

// Site is the company-level data some defaults are derived from.
type Site struct {
	Company    *models.Company
	BookingURL string
}

// Content is the fully populated payload of one section. Only the types in
// this file implement it.
type Content interface {
	sectionKind() Kind
}

// Resolved is a visible, recognized section with its content decoded and
// every missing field filled with a default.
type Resolved struct {
	Section models.WebsiteSection
	Kind    Kind
	Content Content
}

// HeroContent is the payload of a hero section.
type HeroContent struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	ImageURL   string `json:"image_url"`
}

// ServicesContent is the payload of a services section.
type ServicesContent struct {
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	ShowPrices   bool    `json:"show_prices"`
	ShowDuration bool    `json:"show_duration"`
	CategoryIDs  []int64 `json:"category_ids"`
	Limit        int     `json:"limit"`
}

// ContactContent is the payload of a contact section. Empty fields fall
// back to the company profile.
type ContactContent struct {
	Title        string `json:"title"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours"`
	Instagram    string `json:"instagram"`
	Telegram     string `json:"telegram"`
	WhatsApp     string `json:"whatsapp"`
	ShowQRCode   bool   `json:"show_qr_code"`
}

// MapContent is the payload of a map section.
type MapContent struct {
	Title     string   `json:"title"`
	Zoom      int      `json:"zoom"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FAQItem is one question of an FAQ section.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQContent is the payload of an FAQ section.
type FAQContent struct {
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}

// PricingPlan is one column of a pricing section.
type PricingPlan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted"`
}

// PricingContent is the payload of a pricing section.
type PricingContent struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Plans    []PricingPlan `json:"plans"`
}

// Benefit is one card of a benefits section.
type Benefit struct {
	Icon        Icon   `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BenefitsContent is the payload of a benefits section.
type BenefitsContent struct {
	Title string    `json:"title"`
	Items []Benefit `json:"items"`
}

// CTAContent is the payload of a call-to-action section.
type CTAContent struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
}

// CustomTextContent is a free Markdown block.
type CustomTextContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PlaceholderContent is used for kinds without a dedicated layout yet.
type PlaceholderContent struct {
	Kind  Kind   `json:"-"`
	Title string `json:"title"`
}

func (HeroContent) sectionKind() Kind          { return KindHero }
func (ServicesContent) sectionKind() Kind      { return KindServices }
func (ContactContent) sectionKind() Kind       { return KindContact }
func (MapContent) sectionKind() Kind           { return KindMap }
func (FAQContent) sectionKind() Kind           { return KindFAQ }
func (PricingContent) sectionKind() Kind       { return KindPricing }
func (BenefitsContent) sectionKind() Kind      { return KindBenefits }
func (CTAContent) sectionKind() Kind           { return KindCTA }
func (CustomTextContent) sectionKind() Kind    { return KindCustomText }
func (c PlaceholderContent) sectionKind() Kind { return c.Kind }

// Icon names the small set of glyphs benefit cards can show.
type Icon string

const (
	IconCheck    Icon = "check"
	IconStar     Icon = "star"
	IconClock    Icon = "clock"
	IconShield   Icon = "shield"
	IconHeart    Icon = "heart"
	IconSparkles Icon = "sparkles"
)

var iconGlyphs = map[Icon]string{
	IconCheck:    "✓",
	IconStar:     "★",
	IconClock:    "◷",
	IconShield:   "⛨",
	IconHeart:    "♥",
	IconSparkles: "✦",
}

// Glyph returns the symbol for the icon; unknown names render as a check mark.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[Icon(strings.ToLower(string(i)))]; ok {
		return g
	}
	return iconGlyphs[IconCheck]
}

var placeholderTitles = map[Kind]string{
	KindAbout:        "About us",
	KindTeam:         "Our team",
	KindGallery:      "Gallery",
	KindTestimonials: "Testimonials",
	KindSchedule:     "Schedule",
}

// Resolve decodes a section's content for the given kind and fills every
// missing field. Content that is not valid JSON for the kind resolves to
// the kind's full defaults. KindUnknown resolves to nil Content.
func Resolve(s models.WebsiteSection, kind Kind, site Site) Resolved {
	r := Resolved{Section: s, Kind: kind}

	if kind.IsPlaceholder() {
		c := PlaceholderContent{Kind: kind}
		decode(s, &c)
		if c.Title == "" {
			c.Title = placeholderTitles[kind]
		}
		r.Content = c
		return r
	}

	switch kind {
	case KindHero:
		var c HeroContent
		decode(s, &c)
		r.Content = resolveHero(c, site)
	case KindServices:
		c := ServicesContent{ShowPrices: true, ShowDuration: true}
		decode(s, &c)
		r.Content = resolveServices(c)
	case KindContact:
		c := ContactContent{ShowQRCode: true}
		decode(s, &c)
		r.Content = resolveContact(c, site)
	case KindMap:
		var c MapContent
		decode(s, &c)
		r.Content = resolveMap(c, site)
	case KindFAQ:
		var c FAQContent
		decode(s, &c)
		r.Content = resolveFAQ(c)
	case KindPricing:
		var c PricingContent
		decode(s, &c)
		r.Content = resolvePricing(c)
	case KindBenefits:
		var c BenefitsContent
		decode(s, &c)
		r.Content = resolveBenefits(c)
	case KindCTA:
		var c CTAContent
		decode(s, &c)
		r.Content = resolveCTA(c)
	case KindCustomText:
		var c CustomTextContent
		decode(s, &c)
		r.Content = c
	}

	return r
}

// decode unmarshals the section content into dst. Empty or null content
// leaves dst untouched; malformed content is logged and dst keeps its
// preset values so the kind's defaults apply in full.
func decode[T any](s models.WebsiteSection, dst *T) {
	raw := bytes.TrimSpace(s.Content)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return
	}
	keep := *dst
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("section content malformed, using defaults",
			"section_id", s.ID,
			"section_type", s.SectionType,
			"error", err,
		)
		*dst = keep
	}
}

func resolveHero(c HeroContent, site Site) HeroContent {
	co := companyOrEmpty(site)
	c.Title = firstNonEmpty(c.Title, co.Name, "Welcome")
	c.Subtitle = firstNonEmpty(c.Subtitle, co.Description, "Book your visit online in a couple of clicks.")
	c.ButtonText = firstNonEmpty(c.ButtonText, "Book now")
	c.ImageURL = firstNonEmpty(c.ImageURL, co.CoverURL)
	return c
}

func resolveServices(c ServicesContent) ServicesContent {
	c.Title = firstNonEmpty(c.Title, "Our services")
	if c.Limit < 0 {
		c.Limit = 0
	}
	return c
}

func resolveContact(c ContactContent, site Site) ContactContent {
	co := companyOrEmpty(site)
	c.Title = firstNonEmpty(c.Title, "Contacts")
	c.Phone = firstNonEmpty(c.Phone, co.Phone)
	c.Email = firstNonEmpty(c.Email, co.Email)
	c.Address = firstNonEmpty(c.Address, co.FullAddress())
	c.WorkingHours = firstNonEmpty(c.WorkingHours, co.WorkingHours)
	c.Instagram = firstNonEmpty(c.Instagram, co.Instagram)
	c.Telegram = firstNonEmpty(c.Telegram, co.Telegram)
	c.WhatsApp = firstNonEmpty(c.WhatsApp, co.WhatsApp)
	return c
}

const (
	defaultMapZoom = 15
	minMapZoom     = 1
	maxMapZoom     = 19
)

func resolveMap(c MapContent, site Site) MapContent {
	co := companyOrEmpty(site)
	c.Title = firstNonEmpty(c.Title, "How to find us")
	c.Address = firstNonEmpty(c.Address, co.FullAddress())
	if (c.Latitude == nil || c.Longitude == nil) && co.HasCoordinates() {
		c.Latitude, c.Longitude = co.Latitude, co.Longitude
	}
	switch {
	case c.Zoom == 0:
		c.Zoom = defaultMapZoom
	case c.Zoom < minMapZoom:
		c.Zoom = minMapZoom
	case c.Zoom > maxMapZoom:
		c.Zoom = maxMapZoom
	}
	return c
}

func resolveFAQ(c FAQContent) FAQContent {
	c.Title = firstNonEmpty(c.Title, "Frequently asked questions")
	items := c.Items[:0:0]
	for _, it := range c.Items {
		if strings.TrimSpace(it.Question) != "" {
			items = append(items, it)
		}
	}
	if len(items) == 0 {
		items = defaultFAQ()
	}
	c.Items = items
	return c
}

func resolvePricing(c PricingContent) PricingContent {
	c.Title = firstNonEmpty(c.Title, "Prices")
	c.Subtitle = firstNonEmpty(c.Subtitle, "Choose the option that suits you")
	plans := c.Plans[:0:0]
	for _, p := range c.Plans {
		if strings.TrimSpace(p.Name) != "" {
			plans = append(plans, p)
		}
	}
	if len(plans) == 0 {
		plans = defaultPricing()
	}
	c.Plans = plans
	return c
}

func resolveBenefits(c BenefitsContent) BenefitsContent {
	c.Title = firstNonEmpty(c.Title, "Why choose us")
	items := c.Items[:0:0]
	for _, b := range c.Items {
		if strings.TrimSpace(b.Title) == "" {
			continue
		}
		if b.Icon == "" {
			b.Icon = IconCheck
		}
		items = append(items, b)
	}
	if len(items) == 0 {
		items = defaultBenefits()
	}
	c.Items = items
	return c
}

func resolveCTA(c CTAContent) CTAContent {
	c.Title = firstNonEmpty(c.Title, "Ready to book?")
	c.Subtitle = firstNonEmpty(c.Subtitle, "Pick a convenient time online. It takes less than a minute.")
	c.ButtonText = firstNonEmpty(c.ButtonText, "Book now")
	return c
}

func defaultFAQ() []FAQItem {
	return []FAQItem{
		{Question: "How do I book an appointment?", Answer: "Press \"Book now\", pick a service, a specialist and a convenient time. You will get a confirmation right away."},
		{Question: "Can I reschedule or cancel?", Answer: "Yes. Use the link from your confirmation or contact us by phone at least a few hours before the visit."},
		{Question: "Which payment methods do you accept?", Answer: "We accept cash and all major bank cards."},
		{Question: "Do I need to arrive early?", Answer: "Arriving 5-10 minutes before your appointment helps us start on time."},
	}
}

func defaultPricing() []PricingPlan {
	return []PricingPlan{
		{Name: "Basic", Price: "from 1 500", Period: "per visit", Features: []string{"Consultation", "Standard procedure", "Aftercare tips"}},
		{Name: "Standard", Price: "from 3 000", Period: "per visit", Features: []string{"Consultation", "Extended procedure", "Premium materials", "Aftercare kit"}, Highlighted: true},
		{Name: "Premium", Price: "from 5 000", Period: "per visit", Features: []string{"Senior specialist", "Full care program", "Premium materials", "Follow-up visit"}},
	}
}

func defaultBenefits() []Benefit {
	return []Benefit{
		{Icon: IconStar, Title: "Experienced specialists", Description: "Our team keeps improving their skills and follows the latest techniques."},
		{Icon: IconShield, Title: "Safety first", Description: "Certified materials and strict hygiene standards for every visit."},
		{Icon: IconClock, Title: "Online booking 24/7", Description: "Book a convenient time in a couple of clicks, any time of day."},
		{Icon: IconHeart, Title: "Cozy atmosphere", Description: "A calm place where you can relax and enjoy the result."},
	}
}

func companyOrEmpty(site Site) *models.Company {
	if site.Company == nil {
		return &models.Company{}
	}
	return site.Company
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
