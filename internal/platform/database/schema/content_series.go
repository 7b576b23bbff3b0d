// Copyright (c) 2026 Maqala. All rights reserved.

package schema

// ContentSeriesTable represents the 'content.series' table
type ContentSeriesTable struct {
	Table       string
	ID          string
	Name        string
	NameAr      string
	Slug        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// ContentSeries is the schema definition for content.series
var ContentSeries = ContentSeriesTable{
	Table:       "content.series",
	ID:          "id",
	Name:        "name",
	NameAr:      "namear",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
