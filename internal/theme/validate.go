// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Default palette and fonts used when a company leaves a value empty or
// supplies one that fails validation.
const (
	DefaultPrimary    = "#ec4899"
	DefaultSecondary  = "#8b5cf6"
	DefaultBackground = "#ffffff"
	DefaultFont       = "Inter"
)

// fontNamePattern admits family names like "Open Sans" or "Fira-Code" and
// nothing that could close a quoted CSS string or declaration.
var fontNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{0,63}$`)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator with the "hexrgb" and "fontname"
// tags registered and JSON field naming. Other packages use it for payloads carrying colors.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their JSON name so errors match request payloads.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
			return ValidHex(fl.Field().String())
		})

		_ = v.RegisterValidation("fontname", func(fl validator.FieldLevel) bool {
			return ValidFontName(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ColorConfig is the per-company color and typography input to the CSS emitter.
type ColorConfig struct {
	Primary     string `json:"primary" yaml:"primary" validate:"required,hexrgb"`
	Secondary   string `json:"secondary" yaml:"secondary" validate:"required,hexrgb"`
	Background  string `json:"background" yaml:"background" validate:"required,hexrgb"`
	HeadingFont string `json:"heading_font" yaml:"heading_font" validate:"omitempty,fontname"`
	BodyFont    string `json:"body_font" yaml:"body_font" validate:"omitempty,fontname"`
}

// DefaultColors returns the built-in palette.
func DefaultColors() ColorConfig {
	return ColorConfig{
		Primary:     DefaultPrimary,
		Secondary:   DefaultSecondary,
		Background:  DefaultBackground,
		HeadingFont: DefaultFont,
		BodyFont:    DefaultFont,
	}
}

// ValidFontName reports whether name is safe to emit as a CSS font family.
func ValidFontName(name string) bool {
	return fontNamePattern.MatchString(name)
}

// FieldError describes one rejected ColorConfig field.
type FieldError struct {
	Field string
	Value string
	Tag   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q failed validation for tag '%s'", e.Field, e.Value, e.Tag)
}

// Validate checks every field of cfg and returns the first failure as a
// *FieldError. Used where bad input should be rejected outright.
func Validate(cfg ColorConfig) error {
	err := Validator().Struct(cfg)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		return &FieldError{
			Field: fe.Field(),
			Value: fmt.Sprint(fe.Value()),
			Tag:   fe.Tag(),
		}
	}
	return err
}

// ResolveColors replaces empty values with defaults and invalid values with
// defaults plus an error each, so a page can still render. The returned
// config always passes Validate.
func ResolveColors(cfg ColorConfig) (ColorConfig, []error) {
	var problems []error
	def := DefaultColors()

	pick := func(field, value, fallback, tag string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return fallback
		}
		if err := Validator().Var(value, tag); err != nil {
			problems = append(problems, &FieldError{Field: field, Value: value, Tag: tag})
			return fallback
		}
		return value
	}

	out := ColorConfig{
		Primary:     pick("primary", cfg.Primary, def.Primary, "hexrgb"),
		Secondary:   pick("secondary", cfg.Secondary, def.Secondary, "hexrgb"),
		Background:  pick("background", cfg.Background, def.Background, "hexrgb"),
		HeadingFont: pick("heading_font", cfg.HeadingFont, def.HeadingFont, "fontname"),
		BodyFont:    pick("body_font", cfg.BodyFont, def.BodyFont, "fontname"),
	}
	return out, problems
}
