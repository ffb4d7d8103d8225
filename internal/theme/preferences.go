// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"strings"

	"bookingsite/internal/models"
)

// BuildPreferencesCSS renders the dashboard accent ramp and background for
// a visitor's stored preferences. Invalid stored colors fall back to the
// model defaults.
func BuildPreferencesCSS(p *models.UIPreferences) string {
	accent := p.AccentColor
	if !ValidHex(accent) {
		accent = models.DefaultAccentColor
	}
	bg := p.Background()
	if !ValidHex(bg) {
		bg = models.DefaultUIBackground
		if p.DarkMode {
			bg = models.DefaultUIBackgroundDark
		}
	}

	ramp, _ := ShadeRamp(accent)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, s := range Steps {
		decl(&b, fmt.Sprintf("--accent-%d", s), ramp[s])
	}
	decl(&b, "--accent", accent)
	decl(&b, "--accent-foreground", ContrastColor(accent))
	decl(&b, "--ui-background", bg)
	decl(&b, "--ui-foreground", ContrastColor(bg))
	if p.DarkMode {
		decl(&b, "color-scheme", "dark")
	} else {
		decl(&b, "color-scheme", "light")
	}
	b.WriteString("}\n")
	return b.String()
}
