/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds record types shared by the cursor and model tests.
package testmodels

import (
	"github.com/go-openapi/strfmt"
	"github.com/suparena/sqlrecord/errors"
	"github.com/suparena/sqlrecord/model"
)

// RatingSystemSchema creates the rating_systems table in SQLite.
const RatingSystemSchema = `CREATE TABLE rating_systems (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	site_url TEXT NOT NULL DEFAULT '',
	created_at TEXT,
	updated_at TEXT
)`

type RatingSystem struct {

	// Unique identifier for the rating system.
	// Required: true
	ID *string

	// Name of the rating system.
	// Required: true
	Name *string

	// A description of the rating system.
	Description *string

	// site Url
	SiteURL string

	// Timestamp when the rating system was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime

	// Timestamp when the rating system was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime
}

var ratingSystemMeta = &model.Meta{
	Name:  "RatingSystem",
	Table: "rating_systems",
	Fields: []model.Field{
		model.FieldOf[*string]("id"),
		model.FieldOf[*string]("name"),
		model.FieldOf[*string]("description"),
		model.FieldOf[string]("site_url"),
		model.FieldOf[*strfmt.DateTime]("created_at"),
		model.FieldOf[*strfmt.DateTime]("updated_at"),
	},
}

func (r *RatingSystem) Meta() *model.Meta {
	return ratingSystemMeta
}

func (r *RatingSystem) Values() []any {
	return []any{r.ID, r.Name, r.Description, r.SiteURL, r.CreatedAt, r.UpdatedAt}
}

func (r *RatingSystem) Set(field string, v any) error {
	switch field {
	case "id":
		return model.Assign(&r.ID, v)
	case "name":
		return model.Assign(&r.Name, v)
	case "description":
		return model.Assign(&r.Description, v)
	case "site_url":
		return model.Assign(&r.SiteURL, v)
	case "created_at":
		return model.Assign(&r.CreatedAt, v)
	case "updated_at":
		return model.Assign(&r.UpdatedAt, v)
	}
	return errors.NewValidationError(field, "not a RatingSystem field")
}
