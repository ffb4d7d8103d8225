// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookingsite/internal/theme"
)

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	noEnv := filepath.Join(t.TempDir(), "missing.env")
	root.SetArgs(append([]string{"--env-file", noEnv}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })
	version = "1.2.3"

	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "bookingsite 1.2.3") {
		t.Errorf("output = %q", out)
	}
}

func TestCSSCommandFlags(t *testing.T) {
	out, err := run(t, "css", "--primary", "#0ea5e9", "--industry", "dental", "--heading-font", "Open Sans")
	if err != nil {
		t.Fatalf("css: %v", err)
	}
	for _, want := range []string{
		":root {",
		"--color-primary-500: #0ea5e9;",
		"--color-secondary: " + theme.DefaultSecondary + ";",
		"--radius-card: " + theme.GetTheme("dental").RadiusCard + ";",
		"--font-heading: 'Open Sans'",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestCSSCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	data := "industry: spa\nprimary: \"#112233\"\nbackground: \"#000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "css", "--file", path, "--primary", "#445566")
	if err != nil {
		t.Fatalf("css: %v", err)
	}
	if !strings.Contains(out, "--color-primary: #445566;") {
		t.Error("flag should override the file value")
	}
	if !strings.Contains(out, "--color-background: #000;") {
		t.Error("file background should be used")
	}
	if !strings.Contains(out, "--radius-card: "+theme.GetTheme("spa").RadiusCard+";") {
		t.Error("file industry should be used")
	}
}

func TestCSSCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid color", []string{"css", "--primary", "red"}, "primary"},
		{"unsafe font", []string{"css", "--body-font", "x;}"}, "body_font"},
		{"unknown industry", []string{"css", "--industry", "blacksmith"}, "unknown industry"},
		{"missing file", []string{"css", "--file", "/nonexistent/theme.yaml"}, "read theme file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}

	_, err := run(t, "css", "--primary", "#12")
	var fe *theme.FieldError
	if !errors.As(err, &fe) || fe.Field != "primary" {
		t.Errorf("expected primary FieldError, got %v", err)
	}
}

func TestIndustriesCommand(t *testing.T) {
	out, err := run(t, "industries")
	if err != nil {
		t.Fatalf("industries: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(theme.Themes())+1 {
		t.Errorf("got %d lines, want header plus %d themes", len(lines), len(theme.Themes()))
	}
	if !strings.Contains(out, theme.DefaultIndustry) {
		t.Error("default industry should be listed")
	}
}

func TestExportCommandRejectsInvalidSlug(t *testing.T) {
	if _, err := run(t, "export", "--slug", "Not A Slug"); err == nil || !strings.Contains(err.Error(), "invalid slug") {
		t.Errorf("error = %v", err)
	}
	if _, err := run(t, "export"); err == nil {
		t.Error("export without --slug should fail")
	}
}

// recordingPurger records which purge calls were made.
type recordingPurger struct {
	slugs []string
	all   int
}

func (p *recordingPurger) Invalidate(_ context.Context, slug string) { p.slugs = append(p.slugs, slug) }
func (p *recordingPurger) InvalidateAll(context.Context)             { p.all++ }

func TestPurge(t *testing.T) {
	var out bytes.Buffer
	p := &recordingPurger{}
	purge(context.Background(), p, []string{"lotus", "smile"}, &out)
	if len(p.slugs) != 2 || p.slugs[0] != "lotus" || p.slugs[1] != "smile" || p.all != 0 {
		t.Errorf("purger = %+v", p)
	}
	if out.String() != "lotus\tpurged\nsmile\tpurged\n" {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	p = &recordingPurger{}
	purge(context.Background(), p, nil, &out)
	if p.all != 1 || len(p.slugs) != 0 {
		t.Errorf("purger = %+v", p)
	}
}

func TestCachePurgeCommandFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no target", []string{"cache", "purge"}, "either --slug or --all"},
		{"both targets", []string{"cache", "purge", "--all", "--slug", "lotus"}, "either --slug or --all"},
		{"invalid slug", []string{"cache", "purge", "--slug", "Not A Slug"}, "invalid slug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false, "").Info("hello", "k", "v")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("non-dev logger should emit JSON: %q", buf.String())
	}

	buf.Reset()
	dev := newLogger(&buf, true, "")
	dev.Debug("debug line")
	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Errorf("dev logger should be text at debug level: %q", buf.String())
	}

	buf.Reset()
	quiet := newLogger(&buf, true, "warn")
	if quiet.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("--log-level warn should disable info")
	}
}
