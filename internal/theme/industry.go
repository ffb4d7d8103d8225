// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"sort"
	"strings"
)

// HeroStyle selects the hero section layout variant.
type HeroStyle string

const (
	HeroGradient HeroStyle = "gradient"
	HeroImage    HeroStyle = "image"
	HeroSplit    HeroStyle = "split"
	HeroMinimal  HeroStyle = "minimal"
)

// CardStyle selects how cards (services, pricing, benefits) are drawn.
type CardStyle string

const (
	CardGlass    CardStyle = "glass"
	CardBordered CardStyle = "bordered"
	CardElevated CardStyle = "elevated"
	CardFlat     CardStyle = "flat"
)

// ButtonStyle selects the button shape.
type ButtonStyle string

const (
	ButtonRounded ButtonStyle = "rounded"
	ButtonPill    ButtonStyle = "pill"
	ButtonSquare  ButtonStyle = "square"
)

// BackgroundPattern selects the decorative page background.
type BackgroundPattern string

const (
	PatternNone         BackgroundPattern = "none"
	PatternDots         BackgroundPattern = "dots"
	PatternGrid         BackgroundPattern = "grid"
	PatternWaves        BackgroundPattern = "waves"
	PatternSoftGradient BackgroundPattern = "soft-gradient"
)

// Spacing selects vertical rhythm between sections.
type Spacing string

const (
	SpacingCompact     Spacing = "compact"
	SpacingComfortable Spacing = "comfortable"
	SpacingSpacious    Spacing = "spacious"
)

// DefaultIndustry is the theme used when a company has no industry or an
// industry the registry does not know.
const DefaultIndustry = "cosmetology"

// IndustryTheme is a named bundle of non-color visual tokens.
type IndustryTheme struct {
	ID                string            `json:"id" yaml:"id"`
	Name              string            `json:"name" yaml:"name"`
	RadiusBase        string            `json:"radius_base" yaml:"radius_base"`
	RadiusCard        string            `json:"radius_card" yaml:"radius_card"`
	RadiusButton      string            `json:"radius_button" yaml:"radius_button"`
	RadiusInput       string            `json:"radius_input" yaml:"radius_input"`
	ShadowCard        string            `json:"shadow_card" yaml:"shadow_card"`
	ShadowButton      string            `json:"shadow_button" yaml:"shadow_button"`
	ShadowElevated    string            `json:"shadow_elevated" yaml:"shadow_elevated"`
	HeroStyle         HeroStyle         `json:"hero_style" yaml:"hero_style"`
	CardStyle         CardStyle         `json:"card_style" yaml:"card_style"`
	ButtonStyle       ButtonStyle       `json:"button_style" yaml:"button_style"`
	BackgroundPattern BackgroundPattern `json:"background_pattern" yaml:"background_pattern"`
	Spacing           Spacing           `json:"spacing" yaml:"spacing"`
}

// SectionSpacing returns the CSS length between sections for the theme's spacing.
func (t IndustryTheme) SectionSpacing() string {
	switch t.Spacing {
	case SpacingCompact:
		return "3rem"
	case SpacingSpacious:
		return "7rem"
	default:
		return "5rem"
	}
}

// registry is populated once at package init and never written again.
// GetTheme hands out copies, so callers cannot mutate it.
var registry = map[string]IndustryTheme{
	"cosmetology": {
		ID: "cosmetology", Name: "Cosmetology & Beauty",
		RadiusBase: "1rem", RadiusCard: "1.5rem", RadiusButton: "9999px", RadiusInput: "0.75rem",
		ShadowCard:     "0 10px 30px -12px rgba(236, 72, 153, 0.25)",
		ShadowButton:   "0 6px 16px -6px rgba(236, 72, 153, 0.45)",
		ShadowElevated: "0 24px 48px -16px rgba(17, 24, 39, 0.25)",
		HeroStyle:      HeroGradient, CardStyle: CardGlass, ButtonStyle: ButtonPill,
		BackgroundPattern: PatternSoftGradient, Spacing: SpacingComfortable,
	},
	"barbershop": {
		ID: "barbershop", Name: "Barbershop",
		RadiusBase: "0.25rem", RadiusCard: "0.25rem", RadiusButton: "0.125rem", RadiusInput: "0.125rem",
		ShadowCard:     "0 2px 0 0 rgba(0, 0, 0, 0.85)",
		ShadowButton:   "0 2px 0 0 rgba(0, 0, 0, 0.85)",
		ShadowElevated: "0 12px 24px -8px rgba(0, 0, 0, 0.6)",
		HeroStyle:      HeroImage, CardStyle: CardBordered, ButtonStyle: ButtonSquare,
		BackgroundPattern: PatternGrid, Spacing: SpacingCompact,
	},
	"medical": {
		ID: "medical", Name: "Medical Clinic",
		RadiusBase: "0.5rem", RadiusCard: "0.75rem", RadiusButton: "0.5rem", RadiusInput: "0.5rem",
		ShadowCard:     "0 1px 3px 0 rgba(15, 23, 42, 0.1), 0 1px 2px -1px rgba(15, 23, 42, 0.1)",
		ShadowButton:   "0 1px 2px 0 rgba(15, 23, 42, 0.08)",
		ShadowElevated: "0 10px 15px -3px rgba(15, 23, 42, 0.12)",
		HeroStyle:      HeroSplit, CardStyle: CardBordered, ButtonStyle: ButtonRounded,
		BackgroundPattern: PatternNone, Spacing: SpacingComfortable,
	},
	"dental": {
		ID: "dental", Name: "Dental Clinic",
		RadiusBase: "0.75rem", RadiusCard: "1rem", RadiusButton: "0.75rem", RadiusInput: "0.5rem",
		ShadowCard:     "0 4px 12px -2px rgba(14, 165, 233, 0.15)",
		ShadowButton:   "0 2px 6px -1px rgba(14, 165, 233, 0.3)",
		ShadowElevated: "0 16px 32px -12px rgba(15, 23, 42, 0.2)",
		HeroStyle:      HeroSplit, CardStyle: CardElevated, ButtonStyle: ButtonRounded,
		BackgroundPattern: PatternDots, Spacing: SpacingComfortable,
	},
	"fitness": {
		ID: "fitness", Name: "Fitness & Sport",
		RadiusBase: "0.375rem", RadiusCard: "0.5rem", RadiusButton: "0.375rem", RadiusInput: "0.375rem",
		ShadowCard:     "0 8px 20px -8px rgba(0, 0, 0, 0.5)",
		ShadowButton:   "0 4px 10px -2px rgba(0, 0, 0, 0.4)",
		ShadowElevated: "0 20px 40px -12px rgba(0, 0, 0, 0.55)",
		HeroStyle:      HeroImage, CardStyle: CardElevated, ButtonStyle: ButtonSquare,
		BackgroundPattern: PatternGrid, Spacing: SpacingCompact,
	},
	"spa": {
		ID: "spa", Name: "Spa & Wellness",
		RadiusBase: "1.25rem", RadiusCard: "2rem", RadiusButton: "9999px", RadiusInput: "1rem",
		ShadowCard:     "0 12px 36px -18px rgba(20, 83, 45, 0.3)",
		ShadowButton:   "0 6px 18px -8px rgba(20, 83, 45, 0.35)",
		ShadowElevated: "0 28px 56px -24px rgba(20, 83, 45, 0.35)",
		HeroStyle:      HeroMinimal, CardStyle: CardGlass, ButtonStyle: ButtonPill,
		BackgroundPattern: PatternWaves, Spacing: SpacingSpacious,
	},
	"education": {
		ID: "education", Name: "Education & Courses",
		RadiusBase: "0.5rem", RadiusCard: "0.75rem", RadiusButton: "0.5rem", RadiusInput: "0.5rem",
		ShadowCard:     "0 4px 6px -1px rgba(30, 41, 59, 0.1)",
		ShadowButton:   "0 1px 3px 0 rgba(30, 41, 59, 0.15)",
		ShadowElevated: "0 12px 24px -6px rgba(30, 41, 59, 0.18)",
		HeroStyle:      HeroSplit, CardStyle: CardFlat, ButtonStyle: ButtonRounded,
		BackgroundPattern: PatternDots, Spacing: SpacingComfortable,
	},
	"auto": {
		ID: "auto", Name: "Auto Service",
		RadiusBase: "0.25rem", RadiusCard: "0.375rem", RadiusButton: "0.25rem", RadiusInput: "0.25rem",
		ShadowCard:     "0 1px 0 0 rgba(0, 0, 0, 0.2), 0 4px 12px -4px rgba(0, 0, 0, 0.35)",
		ShadowButton:   "0 2px 4px 0 rgba(0, 0, 0, 0.3)",
		ShadowElevated: "0 16px 32px -8px rgba(0, 0, 0, 0.45)",
		HeroStyle:      HeroImage, CardStyle: CardBordered, ButtonStyle: ButtonSquare,
		BackgroundPattern: PatternNone, Spacing: SpacingCompact,
	},
	"pets": {
		ID: "pets", Name: "Pet Care & Grooming",
		RadiusBase: "1rem", RadiusCard: "1.25rem", RadiusButton: "9999px", RadiusInput: "0.75rem",
		ShadowCard:     "0 8px 24px -10px rgba(234, 88, 12, 0.25)",
		ShadowButton:   "0 4px 12px -4px rgba(234, 88, 12, 0.35)",
		ShadowElevated: "0 20px 40px -16px rgba(17, 24, 39, 0.25)",
		HeroStyle:      HeroGradient, CardStyle: CardFlat, ButtonStyle: ButtonPill,
		BackgroundPattern: PatternDots, Spacing: SpacingComfortable,
	},
}

// GetTheme returns the theme registered under id, or the cosmetology theme
// when id is empty or unknown. Lookup ignores case and surrounding spaces.
func GetTheme(id string) IndustryTheme {
	if t, ok := registry[normalizeID(id)]; ok {
		return t
	}
	return registry[DefaultIndustry]
}

// Has reports whether id names a registered theme.
func Has(id string) bool {
	_, ok := registry[normalizeID(id)]
	return ok
}

// Themes returns every registered theme sorted by ID.
func Themes() []IndustryTheme {
	out := make([]IndustryTheme, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
