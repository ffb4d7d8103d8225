// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Default UI preference values applied when a session has no stored row.
const (
	DefaultAccentColor      = "#6366f1"
	DefaultUIBackground     = "#f9fafb"
	DefaultUIBackgroundDark = "#111827"
)

// UIPreferences holds the dashboard look chosen by one visitor session.
// It replaces per-browser global state with a row keyed by session.
type UIPreferences struct {
	SessionID       uuid.UUID `json:"-"`
	AccentColor     string    `json:"accent_color" validate:"required,hexrgb"`
	BackgroundColor string    `json:"background_color" validate:"omitempty,hexrgb"`
	DarkMode        bool      `json:"dark_mode"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultUIPreferences returns the preferences used for a new session.
func DefaultUIPreferences(sessionID uuid.UUID) *UIPreferences {
	return &UIPreferences{
		SessionID:   sessionID,
		AccentColor: DefaultAccentColor,
	}
}

// Background returns the stored background, or the light/dark default.
func (p *UIPreferences) Background() string {
	if p.BackgroundColor != "" {
		return p.BackgroundColor
	}
	if p.DarkMode {
		return DefaultUIBackgroundDark
	}
	return DefaultUIBackground
}
