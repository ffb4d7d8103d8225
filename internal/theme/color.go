// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme turns a company's brand colors and industry into the CSS
// custom properties consumed by every public site template. It owns the
// color shade ramp, the static industry theme registry, and the CSS emitter.
package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned for anything that is not #rgb or #rrggbb.
var ErrInvalidHex = errors.New("invalid hex color")

const (
	// lightThreshold is the HSL lightness above which a color counts as light.
	lightThreshold = 60.0

	// lightnessCeiling caps the lightest generated shade so 50 never hits pure white.
	lightnessCeiling = 98.0

	// lightnessFloor keeps the darkest generated shades away from pure black.
	lightnessFloor = 10.0

	// DarkText and LightText are the foreground colors picked by ContrastColor.
	DarkText  = "#1f2937"
	LightText = "#ffffff"
)

// Steps lists the shade steps of a ramp in ascending order.
var Steps = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// lighterMix is how far each light step moves from the base lightness toward
// lightnessCeiling; darkerMix is the same toward lightnessFloor.
var (
	lighterMix = map[int]float64{50: 0.95, 100: 0.85, 200: 0.68, 300: 0.48, 400: 0.24}
	darkerMix  = map[int]float64{600: 0.18, 700: 0.38, 800: 0.58, 900: 0.78}
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// HSL is a color in hue/saturation/lightness form. H is in [0,360),
// S and L are percentages in [0,100].
type HSL struct {
	H, S, L float64
}

// Ramp maps a shade step (50..900) to a lowercase #rrggbb color.
type Ramp map[int]string

// ParseHex parses "#rgb" or "#rrggbb" (any case).
func ParseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	digits := s[1:]
	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ValidHex reports whether s is a color ParseHex accepts.
func ValidHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// Hex formats the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL converts the color using the standard RGB to HSL transform.
func (c RGB) HSL() HSL {
	r, g, b := int(c.R), int(c.G), int(c.B)
	hi := max(r, g, b)
	lo := min(r, g, b)

	// Integer sums keep lightness exact at boundaries such as #999999 (60%).
	l := float64(hi+lo) * 100 / 510
	if hi == lo {
		return HSL{H: 0, S: 0, L: l}
	}

	d := float64(hi - lo)
	var s float64
	if hi+lo > 255 {
		s = d / float64(510-hi-lo)
	} else {
		s = d / float64(hi+lo)
	}

	var h float64
	switch hi {
	case r:
		h = float64(g-b) / d
		if g < b {
			h += 6
		}
	case g:
		h = float64(b-r)/d + 2
	default:
		h = float64(r-g)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s * 100, L: l}
}

// RGB converts back to 8-bit channels, rounding to the nearest value.
func (c HSL) RGB() RGB {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := clamp(c.S, 0, 100) / 100
	l := clamp(c.L, 0, 100) / 100

	if s == 0 {
		v := to8(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	return RGB{
		R: to8(hueToChannel(p, q, hk+1.0/3)),
		G: to8(hueToChannel(p, q, hk)),
		B: to8(hueToChannel(p, q, hk-1.0/3)),
	}
}

// Hex formats the HSL color as lowercase #rrggbb.
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

// HexToHSL parses a hex color and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return c.HSL(), nil
}

// HSLToHex converts an HSL color to lowercase #rrggbb.
func HSLToHex(c HSL) string {
	return c.Hex()
}

// ShadeRamp derives a 50..900 ramp from a base color. Step 500 is the input
// string itself; hue and saturation are held fixed for every other step.
func ShadeRamp(hex string) (Ramp, error) {
	base, err := HexToHSL(hex)
	if err != nil {
		return nil, err
	}

	ramp := make(Ramp, len(Steps))
	for _, step := range Steps {
		if step == 500 {
			ramp[step] = hex
			continue
		}
		ramp[step] = HSL{H: base.H, S: base.S, L: shadeLightness(base.L, step)}.Hex()
	}
	return ramp, nil
}

// shadeLightness returns the target lightness for a step given the base.
func shadeLightness(base float64, step int) float64 {
	if f, ok := lighterMix[step]; ok {
		if base >= lightnessCeiling {
			return base
		}
		return base + (lightnessCeiling-base)*f
	}
	if f, ok := darkerMix[step]; ok {
		if base <= lightnessFloor {
			return base
		}
		return math.Max(lightnessFloor, base-(base-lightnessFloor)*f)
	}
	return base
}

// IsLightColor reports whether the color's lightness is above 60.
// Exactly 60 is not light.
func IsLightColor(hex string) (bool, error) {
	c, err := HexToHSL(hex)
	if err != nil {
		return false, err
	}
	return c.L > lightThreshold, nil
}

// ContrastColor picks a readable text color for the given background:
// dark gray on light colors, white otherwise (including invalid input).
func ContrastColor(hex string) string {
	light, err := IsLightColor(hex)
	if err != nil || !light {
		return LightText
	}
	return DarkText
}

// AdjustLightness shifts the lightness of a color by delta percentage points,
// clamped to [0,100].
func AdjustLightness(hex string, delta float64) (string, error) {
	c, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	c.L = clamp(c.L+delta, 0, 100)
	return c.Hex(), nil
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
