// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"bookingsite/internal/middleware"
	"bookingsite/internal/models"
	"bookingsite/internal/session"
	"bookingsite/internal/theme"
)

// PreferencesStore persists UI preferences per visitor.
type PreferencesStore interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*models.UIPreferences, error)
	Upsert(ctx context.Context, p *models.UIPreferences) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// Sessions resolves the visitor session for a request, creating one if
// needed, and forgets it on reset.
type Sessions interface {
	Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*session.Data, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Preferences groups the visitor UI preference endpoints.
type Preferences struct {
	store    PreferencesStore
	sessions Sessions
}

// NewPreferences creates a new Preferences handler group.
func NewPreferences(store PreferencesStore, sessions Sessions) *Preferences {
	return &Preferences{store: store, sessions: sessions}
}

// preferencesRequest is the PUT payload. DarkMode is a pointer so an
// omitted value keeps the stored one.
type preferencesRequest struct {
	AccentColor     string `json:"accent_color" validate:"required,hexrgb"`
	BackgroundColor string `json:"background_color" validate:"omitempty,hexrgb"`
	DarkMode        *bool  `json:"dark_mode"`
}

// Get returns the visitor's preferences, or the defaults. The CSRF token
// for later writes is echoed in the X-CSRF-Token response header.
func (h *Preferences) Get(w http.ResponseWriter, r *http.Request) {
	prefs, ok := h.load(w, r)
	if !ok {
		return
	}
	if token := middleware.CSRFTokenFromCtx(r.Context()); token != "" {
		w.Header().Set(middleware.CSRFHeaderName, token)
	}
	writeJSON(w, http.StatusOK, prefs)
}

// Put validates and stores the visitor's preferences.
func (h *Preferences) Put(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	req.AccentColor = strings.TrimSpace(req.AccentColor)
	req.BackgroundColor = strings.TrimSpace(req.BackgroundColor)

	if err := theme.Validator().Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validationError(err))
		return
	}

	prefs, ok := h.load(w, r)
	if !ok {
		return
	}
	prefs.AccentColor = req.AccentColor
	prefs.BackgroundColor = req.BackgroundColor
	if req.DarkMode != nil {
		prefs.DarkMode = *req.DarkMode
	}

	if err := h.store.Upsert(r.Context(), prefs); err != nil {
		slog.ErrorContext(r.Context(), "save preferences failed", "session", prefs.SessionID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// Reset drops the visitor's stored preferences and session, and returns
// the defaults. The next request starts a fresh visitor.
func (h *Preferences) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, err := h.sessions.Ensure(ctx, w, r)
	if err != nil {
		slog.ErrorContext(ctx, "session ensure failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if err := h.store.Delete(ctx, sess.VisitorID); err != nil {
		slog.ErrorContext(ctx, "reset preferences failed", "session", sess.VisitorID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if err := h.sessions.Destroy(ctx, w, r); err != nil {
		slog.WarnContext(ctx, "session destroy failed", "session", sess.VisitorID, "error", err)
	}
	writeJSON(w, http.StatusOK, models.DefaultUIPreferences(sess.VisitorID))
}

// CSS serves the visitor's accent ramp and background as a stylesheet.
func (h *Preferences) CSS(w http.ResponseWriter, r *http.Request) {
	prefs, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Cache-Control", "private, no-cache")
	writeCSS(w, []byte(theme.BuildPreferencesCSS(prefs)))
}

// load resolves the session and its stored preferences, writing a 500 on
// failure.
func (h *Preferences) load(w http.ResponseWriter, r *http.Request) (*models.UIPreferences, bool) {
	ctx := r.Context()

	sess, err := h.sessions.Ensure(ctx, w, r)
	if err != nil {
		slog.ErrorContext(ctx, "session ensure failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}

	prefs, err := h.store.Get(ctx, sess.VisitorID)
	if err != nil {
		slog.ErrorContext(ctx, "load preferences failed", "session", sess.VisitorID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return prefs, true
}
