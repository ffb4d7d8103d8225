// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data shapes shared across the site renderer:
// the read-only snapshots received from the booking backend and the UI
// preferences persisted locally.
package models

import "strings"

// Company is the public profile of a tenant as returned by
// GET /public/companies/{slug}.
type Company struct {
	ID              int64    `json:"id"`
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Industry        string   `json:"industry"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	LogoURL         string   `json:"logo_url"`
	CoverURL        string   `json:"cover_url"`
	WorkingHours    string   `json:"working_hours"`
	Currency        string   `json:"currency"`
	Instagram       string   `json:"instagram"`
	Telegram        string   `json:"telegram"`
	WhatsApp        string   `json:"whatsapp"`
	PrimaryColor    string   `json:"primary_color"`
	SecondaryColor  string   `json:"secondary_color"`
	BackgroundColor string   `json:"background_color"`
	HeadingFont     string   `json:"heading_font"`
	BodyFont        string   `json:"body_font"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (c *Company) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// FullAddress joins the street address and city, skipping empty parts.
func (c *Company) FullAddress() string {
	var parts []string
	for _, p := range []string{c.Address, c.City} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// ServiceCategory groups services in the public catalog.
type ServiceCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// Service is a bookable catalog item.
type Service struct {
	ID              int64    `json:"id"`
	CategoryID      *int64   `json:"category_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	PriceTo         *float64 `json:"price_to"`
	DurationMinutes int      `json:"duration_minutes"`
	IsActive        bool     `json:"is_active"`
}
