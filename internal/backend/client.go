// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package backend is a read-only client for the booking platform's public
// company API. It never writes to the backend.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookingsite/internal/metrics"
	"bookingsite/internal/models"
)

// ErrNotFound is returned when the backend answers 404 for a company.
var ErrNotFound = errors.New("backend: not found")

// DefaultTimeout bounds a single backend request when the caller does not
// configure one.
const DefaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// StatusError is returned for any non-2xx response other than 404.
type StatusError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s: unexpected status %d: %s", e.Endpoint, e.Status, e.Body)
}

// Client talks to the public company endpoints.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the API rooted at baseURL
// (e.g. "https://api.example.com/api/v1").
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Company fetches the public company profile.
func (c *Client) Company(ctx context.Context, slug string) (*models.Company, error) {
	var co models.Company
	if err := c.get(ctx, "company", companyPath(slug, ""), &co); err != nil {
		return nil, err
	}
	return &co, nil
}

// Categories fetches the company's service categories.
func (c *Client) Categories(ctx context.Context, slug string) ([]models.ServiceCategory, error) {
	var list []models.ServiceCategory
	if err := c.get(ctx, "categories", companyPath(slug, "categories"), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Services fetches the company's service catalog.
func (c *Client) Services(ctx context.Context, slug string) ([]models.Service, error) {
	var list []models.Service
	if err := c.get(ctx, "services", companyPath(slug, "services"), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Sections fetches the company's website sections in backend order.
func (c *Client) Sections(ctx context.Context, slug string) ([]models.WebsiteSection, error) {
	var list []models.WebsiteSection
	if err := c.get(ctx, "sections", companyPath(slug, "website-sections"), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func companyPath(slug, sub string) string {
	p := "/public/companies/" + url.PathEscape(slug)
	if sub != "" {
		p += "/" + sub
	}
	return p
}

// get performs one GET and decodes the JSON body into dst. The endpoint
// name labels metrics and errors.
func (c *Client) get(ctx context.Context, endpoint, path string, dst any) error {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.BackendRequests.WithLabelValues(endpoint, status).Inc()
		metrics.BackendDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("backend %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s http: %w", endpoint, err)
	}
	defer resp.Body.Close()
	status = statusClass(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("backend %s read body: %w", endpoint, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("backend %s: %w", endpoint, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Endpoint: endpoint, Status: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("backend %s unmarshal: %w", endpoint, err)
	}
	return nil
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
