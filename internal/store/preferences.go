// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the PostgreSQL-backed persistence for local state.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bookingsite/internal/models"
)

// PreferencesStore handles UI preference rows keyed by visitor session.
type PreferencesStore struct {
	db *sql.DB
}

// NewPreferencesStore creates a new PreferencesStore with the given database connection.
func NewPreferencesStore(db *sql.DB) *PreferencesStore {
	return &PreferencesStore{db: db}
}

// Get returns the stored preferences for a session. A session without a
// row gets the defaults; that is not an error.
func (s *PreferencesStore) Get(ctx context.Context, sessionID uuid.UUID) (*models.UIPreferences, error) {
	p := &models.UIPreferences{SessionID: sessionID}
	err := s.db.QueryRowContext(ctx, `
		SELECT accent_color, background_color, dark_mode, updated_at
		FROM ui_preferences WHERE session_id = $1
	`, sessionID).Scan(&p.AccentColor, &p.BackgroundColor, &p.DarkMode, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultUIPreferences(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ui preferences: %w", err)
	}
	return p, nil
}

// Upsert stores the preferences for p.SessionID and sets p.UpdatedAt.
func (s *PreferencesStore) Upsert(ctx context.Context, p *models.UIPreferences) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO ui_preferences (session_id, accent_color, background_color, dark_mode, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (session_id) DO UPDATE SET
			accent_color = EXCLUDED.accent_color,
			background_color = EXCLUDED.background_color,
			dark_mode = EXCLUDED.dark_mode,
			updated_at = NOW()
		RETURNING updated_at
	`, p.SessionID, p.AccentColor, p.BackgroundColor, p.DarkMode).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert ui preferences: %w", err)
	}
	return nil
}

// Delete removes the stored preferences for a session.
func (s *PreferencesStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM ui_preferences WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("delete ui preferences: %w", err)
	}
	return nil
}
