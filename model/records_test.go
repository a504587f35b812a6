/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model_test

import (
	"github.com/go-openapi/strfmt"
	"github.com/suparena/sqlrecord/errors"
	"github.com/suparena/sqlrecord/model"
)

type Item struct {
	ID    int64
	Name  string
	Price float64
}

var itemMeta = &model.Meta{
	Name:  "Item",
	Table: "items",
	Fields: []model.Field{
		model.FieldOf[int64]("id"),
		model.FieldOf[string]("name"),
		model.FieldOf[float64]("price"),
	},
}

func (i *Item) Meta() *model.Meta { return itemMeta }
func (i *Item) Values() []any     { return []any{i.ID, i.Name, i.Price} }

func (i *Item) Set(field string, v any) error {
	switch field {
	case "id":
		return model.Assign(&i.ID, v)
	case "name":
		return model.Assign(&i.Name, v)
	case "price":
		return model.Assign(&i.Price, v)
	}
	return errors.NewValidationError(field, "not an Item field")
}

// Post keys on a column that is not declared first and carries types that
// need the registry.
type Post struct {
	Title     string
	Slug      string
	Body      *string
	Tags      []string
	CreatedAt strfmt.DateTime
}

var postMeta = &model.Meta{
	Table:      "posts",
	PrimaryKey: "slug",
	Fields: []model.Field{
		model.FieldOf[string]("title"),
		model.FieldOf[string]("slug"),
		model.FieldOf[*string]("body"),
		model.FieldOf[[]string]("tags"),
		model.FieldOf[strfmt.DateTime]("created_at"),
	},
}

func (p *Post) Meta() *model.Meta { return postMeta }
func (p *Post) Values() []any     { return []any{p.Title, p.Slug, p.Body, p.Tags, p.CreatedAt} }

func (p *Post) Set(field string, v any) error {
	switch field {
	case "title":
		return model.Assign(&p.Title, v)
	case "slug":
		return model.Assign(&p.Slug, v)
	case "body":
		return model.Assign(&p.Body, v)
	case "tags":
		return model.Assign(&p.Tags, v)
	case "created_at":
		return model.Assign(&p.CreatedAt, v)
	}
	return errors.NewValidationError(field, "not a Post field")
}

// broken declares three fields but returns two values.
type broken struct{}

var brokenMeta = &model.Meta{
	Table:  "broken",
	Fields: []model.Field{{Name: "id", Type: "int64"}, {Name: "a", Type: "string"}, {Name: "b", Type: "string"}},
}

func (b *broken) Meta() *model.Meta             { return brokenMeta }
func (b *broken) Values() []any                 { return []any{int64(1), "a"} }
func (b *broken) Set(field string, v any) error { return nil }

// badMeta lets tests construct tables over arbitrary metadata.
type badMeta struct{ meta *model.Meta }

func (b *badMeta) Meta() *model.Meta             { return b.meta }
func (b *badMeta) Values() []any                 { return nil }
func (b *badMeta) Set(field string, v any) error { return nil }

// Tag stores nothing but its key.
type Tag struct {
	ID int64
}

var tagMeta = &model.Meta{
	Table:  "tags",
	Fields: []model.Field{model.FieldOf[int64]("id")},
}

func (g *Tag) Meta() *model.Meta { return tagMeta }
func (g *Tag) Values() []any     { return []any{g.ID} }

func (g *Tag) Set(field string, v any) error {
	if field == "id" {
		return model.Assign(&g.ID, v)
	}
	return errors.NewValidationError(field, "not a Tag field")
}
