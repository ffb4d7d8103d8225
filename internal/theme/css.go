// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"strings"
)

// BuildCSS renders the :root custom-property block for a company page.
// cfg must already be resolved (see ResolveColors); values are written
// verbatim except fonts, which are quoted. The variable names are consumed
// by every section template and must not change.
func BuildCSS(cfg ColorConfig, t IndustryTheme) string {
	var b strings.Builder
	b.WriteString(":root {\n")

	writeRamp(&b, "primary", cfg.Primary)
	writeRamp(&b, "secondary", cfg.Secondary)

	bgLight, _ := IsLightColor(cfg.Background)
	decl(&b, "--color-background", cfg.Background)
	decl(&b, "--color-background-alt", backgroundAlt(cfg.Background, bgLight))
	decl(&b, "--color-surface", surface(cfg.Background, bgLight))
	decl(&b, "--color-foreground", ContrastColor(cfg.Background))
	if bgLight {
		decl(&b, "--color-muted", "#6b7280")
	} else {
		decl(&b, "--color-muted", "#9ca3af")
	}

	decl(&b, "--font-heading", fontStack(cfg.HeadingFont))
	decl(&b, "--font-body", fontStack(cfg.BodyFont))

	decl(&b, "--radius-base", t.RadiusBase)
	decl(&b, "--radius-card", t.RadiusCard)
	decl(&b, "--radius-button", t.RadiusButton)
	decl(&b, "--radius-input", t.RadiusInput)
	decl(&b, "--shadow-card", t.ShadowCard)
	decl(&b, "--shadow-button", t.ShadowButton)
	decl(&b, "--shadow-elevated", t.ShadowElevated)
	decl(&b, "--spacing-section", t.SectionSpacing())

	b.WriteString("}\n")
	return b.String()
}

// writeRamp emits --color-<name>-<step> for every step, then the bare
// --color-<name> alias and its foreground.
func writeRamp(b *strings.Builder, name, hex string) {
	ramp, err := ShadeRamp(hex)
	if err != nil {
		// Unresolved input; keep the declaration set complete with the raw value.
		ramp = make(Ramp, len(Steps))
		for _, s := range Steps {
			ramp[s] = hex
		}
	}
	for _, s := range Steps {
		decl(b, fmt.Sprintf("--color-%s-%d", name, s), ramp[s])
	}
	decl(b, "--color-"+name, hex)
	decl(b, "--color-"+name+"-foreground", ContrastColor(hex))
}

func backgroundAlt(bg string, light bool) string {
	delta := 6.0
	if light {
		delta = -4
	}
	out, err := AdjustLightness(bg, delta)
	if err != nil {
		return bg
	}
	return out
}

func surface(bg string, light bool) string {
	if light {
		return "#ffffff"
	}
	out, err := AdjustLightness(bg, 8)
	if err != nil {
		return bg
	}
	return out
}

// fontStack quotes a validated family name and appends generic fallbacks.
// Names that fail ValidFontName are replaced with DefaultFont.
func fontStack(name string) string {
	if !ValidFontName(name) {
		name = DefaultFont
	}
	return "'" + name + "', system-ui, -apple-system, sans-serif"
}

func decl(b *strings.Builder, name, value string) {
	b.WriteString("  ")
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(";\n")
}
