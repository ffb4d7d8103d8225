// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides in-memory fakes for the backend, page cache,
// session and preference stores used by the handler tests.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bookingsite/internal/backend"
	"bookingsite/internal/cache"
	"bookingsite/internal/engine"
	"bookingsite/internal/models"
	"bookingsite/internal/session"
)

// fakeSource serves a fixed bundle and counts calls.
type fakeSource struct {
	mu     sync.Mutex
	bundle *backend.SiteBundle
	err    error
	calls  int
}

func (f *fakeSource) FetchSite(_ context.Context, _ string) (*backend.SiteBundle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bundle, nil
}

func (f *fakeSource) Company(_ context.Context, _ string) (*models.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bundle.Company, nil
}

// memCache is a map-backed PageCache.
type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache { return &memCache{items: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, slug string, a cache.Artifact) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[cache.Key(slug, a)]
	return b, ok
}

func (m *memCache) Set(_ context.Context, slug string, a cache.Artifact, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[cache.Key(slug, a)] = body
}

// memPrefs is a map-backed PreferencesStore.
type memPrefs struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.UIPreferences
	err  error
}

func newMemPrefs() *memPrefs { return &memPrefs{rows: map[uuid.UUID]models.UIPreferences{}} }

func (m *memPrefs) Get(_ context.Context, id uuid.UUID) (*models.UIPreferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if p, ok := m.rows[id]; ok {
		return &p, nil
	}
	return models.DefaultUIPreferences(id), nil
}

func (m *memPrefs) Upsert(_ context.Context, p *models.UIPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows[p.SessionID] = *p
	return nil
}

func (m *memPrefs) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return m.err
}

// fixedSession always resolves to the same visitor and counts destroys.
type fixedSession struct {
	id        uuid.UUID
	err       error
	destroyed *int
}

func (s fixedSession) Destroy(context.Context, http.ResponseWriter, *http.Request) error {
	if s.destroyed != nil {
		*s.destroyed++
	}
	return nil
}

func (s fixedSession) Ensure(context.Context, http.ResponseWriter, *http.Request) (*session.Data, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &session.Data{VisitorID: s.id}, nil
}

var errBackendDown = errors.New("backend down")

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New("https://book.example")
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

func testBundle() *backend.SiteBundle {
	return &backend.SiteBundle{
		Company: &models.Company{
			ID:           7,
			Slug:         "lotus",
			Name:         "Lotus Studio",
			Industry:     "spa",
			PrimaryColor: "#0ea5e9",
		},
		Sections: []models.WebsiteSection{
			{ID: 1, SectionType: "hero", Order: 0, IsVisible: true},
		},
	}
}

// serve routes a single request through a chi router so URL params resolve.
func serve(method, pattern string, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}
