// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"
)

// WebsiteSection is one ordered, toggleable block of a company's site.
// SectionType is kept as the raw backend string; the sections package maps
// it onto its closed set of kinds.
type WebsiteSection struct {
	ID          int64           `json:"id"`
	CompanyID   int64           `json:"company_id"`
	SectionType string          `json:"section_type"`
	Order       int             `json:"order"`
	IsVisible   bool            `json:"is_visible"`
	Content     json.RawMessage `json:"content"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
