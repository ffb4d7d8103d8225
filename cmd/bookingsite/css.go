// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bookingsite/internal/theme"
)

// themeFile is the YAML input accepted by the css command:
//
//	industry: spa
//	primary: "#0ea5e9"
//	secondary: "#f59e0b"
//	heading_font: Playfair Display
type themeFile struct {
	Industry          string `yaml:"industry"`
	theme.ColorConfig `yaml:",inline"`
}

type cssFlags struct {
	file     string
	industry string
	colors   theme.ColorConfig
}

func newCSSCmd() *cobra.Command {
	flags := &cssFlags{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the CSS variable block for a color set and industry",
		Long: "Print the :root CSS variable block for a color set and industry.\n" +
			"Values come from --file and are overridden by flags; omitted colors use the\n" +
			"default palette. Invalid values are rejected.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadThemeInput(flags, cmd)
			if err != nil {
				return err
			}
			css, err := buildCSS(in)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), css)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "YAML theme file")
	f.StringVar(&flags.industry, "industry", "", "Industry theme key")
	f.StringVar(&flags.colors.Primary, "primary", "", "Primary color (#rgb or #rrggbb)")
	f.StringVar(&flags.colors.Secondary, "secondary", "", "Secondary color")
	f.StringVar(&flags.colors.Background, "background", "", "Background color")
	f.StringVar(&flags.colors.HeadingFont, "heading-font", "", "Heading font family")
	f.StringVar(&flags.colors.BodyFont, "body-font", "", "Body font family")

	return cmd
}

// loadThemeInput reads the optional file and applies explicitly set flags
// on top of it.
func loadThemeInput(flags *cssFlags, cmd *cobra.Command) (themeFile, error) {
	var in themeFile
	if flags.file != "" {
		data, err := os.ReadFile(flags.file)
		if err != nil {
			return in, fmt.Errorf("read theme file: %w", err)
		}
		if err := yaml.Unmarshal(data, &in); err != nil {
			return in, fmt.Errorf("parse theme file %s: %w", flags.file, err)
		}
	}

	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("industry", &in.Industry, flags.industry)
	set("primary", &in.Primary, flags.colors.Primary)
	set("secondary", &in.Secondary, flags.colors.Secondary)
	set("background", &in.Background, flags.colors.Background)
	set("heading-font", &in.HeadingFont, flags.colors.HeadingFont)
	set("body-font", &in.BodyFont, flags.colors.BodyFont)
	return in, nil
}

// buildCSS fills omitted colors from the default palette, rejects invalid
// values and renders the block.
func buildCSS(in themeFile) (string, error) {
	if in.Industry != "" && !theme.Has(in.Industry) {
		return "", fmt.Errorf("unknown industry %q (see 'bookingsite industries')", in.Industry)
	}

	cfg := in.ColorConfig
	def := theme.DefaultColors()
	fill := func(v *string, fallback string) {
		if strings.TrimSpace(*v) == "" {
			*v = fallback
		}
	}
	fill(&cfg.Primary, def.Primary)
	fill(&cfg.Secondary, def.Secondary)
	fill(&cfg.Background, def.Background)
	fill(&cfg.HeadingFont, def.HeadingFont)
	fill(&cfg.BodyFont, def.BodyFont)

	if err := theme.Validate(cfg); err != nil {
		return "", err
	}
	return theme.BuildCSS(cfg, theme.GetTheme(in.Industry)), nil
}
