// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bookingsite/internal/backend"
	"bookingsite/internal/engine"
	"bookingsite/internal/models"
	"bookingsite/internal/sections"
)

type fakeFetcher struct {
	bundle *backend.SiteBundle
	err    error
}

func (f fakeFetcher) FetchSite(context.Context, string) (*backend.SiteBundle, error) {
	return f.bundle, f.err
}

type upload struct {
	contentType string
	body        string
}

type memUploader struct {
	objects map[string]upload
	deleted []string
	err     error
}

func (m *memUploader) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, key)
	delete(m.objects, key)
	return nil
}

func (m *memUploader) Upload(_ context.Context, key, contentType, _ string, body []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.objects == nil {
		m.objects = map[string]upload{}
	}
	m.objects[key] = upload{contentType: contentType, body: string(body)}
	return nil
}

func (m *memUploader) FileURL(key string) string { return "https://cdn.example/" + key }

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New("https://book.example")
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

func bundle() *backend.SiteBundle {
	co := &models.Company{ID: 1, Slug: "lotus", Name: "Lotus Studio", PrimaryColor: "#0ea5e9"}
	return &backend.SiteBundle{Company: co, Sections: sections.DefaultSections(co.ID), SectionsFallback: true}
}

func TestExport(t *testing.T) {
	up := &memUploader{}
	ex := New(fakeFetcher{bundle: bundle()}, testEngine(t), up)

	res, err := ex.Export(context.Background(), "lotus")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.PageURL != "https://cdn.example/sites/lotus/index.html" || res.CSSURL != "https://cdn.example/sites/lotus/theme.css" {
		t.Errorf("result = %+v", res)
	}

	page, ok := up.objects["sites/lotus/index.html"]
	if !ok || !strings.HasPrefix(page.contentType, "text/html") || !strings.Contains(page.body, "Lotus Studio") {
		t.Errorf("page upload = %+v", page)
	}
	css, ok := up.objects["sites/lotus/theme.css"]
	if !ok || !strings.HasPrefix(css.contentType, "text/css") || !strings.Contains(css.body, "--color-primary: #0ea5e9;") {
		t.Errorf("css upload = %+v", css)
	}
}

func TestExportFetchError(t *testing.T) {
	up := &memUploader{}
	ex := New(fakeFetcher{err: backend.ErrNotFound}, testEngine(t), up)

	_, err := ex.Export(context.Background(), "missing")
	if !errors.Is(err, backend.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(up.objects) != 0 {
		t.Error("nothing should be uploaded on fetch failure")
	}
}

func TestExportUploadError(t *testing.T) {
	boom := errors.New("bucket unavailable")
	ex := New(fakeFetcher{bundle: bundle()}, testEngine(t), &memUploader{err: boom})

	if _, err := ex.Export(context.Background(), "lotus"); !errors.Is(err, boom) {
		t.Fatalf("expected upload error, got %v", err)
	}
}

func TestKeys(t *testing.T) {
	page, css := Keys("lotus")
	if page != "sites/lotus/index.html" || css != "sites/lotus/theme.css" {
		t.Errorf("Keys = %q, %q", page, css)
	}
}

func TestRemove(t *testing.T) {
	up := &memUploader{}
	ex := New(fakeFetcher{bundle: bundle()}, testEngine(t), up)
	if _, err := ex.Export(context.Background(), "lotus"); err != nil {
		t.Fatalf("Export: %v", err)
	}

	if err := ex.Remove(context.Background(), "lotus"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(up.objects) != 0 {
		t.Errorf("objects left after remove: %v", up.objects)
	}
	want := []string{"sites/lotus/index.html", "sites/lotus/theme.css"}
	if len(up.deleted) != 2 || up.deleted[0] != want[0] || up.deleted[1] != want[1] {
		t.Errorf("deleted = %v, want %v", up.deleted, want)
	}
}

func TestRemoveError(t *testing.T) {
	boom := errors.New("bucket unavailable")
	ex := New(fakeFetcher{}, testEngine(t), &memUploader{err: boom})

	if err := ex.Remove(context.Background(), "lotus"); !errors.Is(err, boom) {
		t.Fatalf("expected delete error, got %v", err)
	}
}
