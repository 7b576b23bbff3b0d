// Copyright (c) 2026 Maqala. All rights reserved.

// Package taxonomy manages the editorial classification entities: categories
// and series. Articles reference them by slug (categories) or by ID with an
// ordering (series).
package taxonomy

import "time"

// Category groups articles by editorial desk. Names are kept in both
// platform languages.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar,omitempty"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Series groups articles into an ordered multi-part publication.
type Series struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar,omitempty"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
