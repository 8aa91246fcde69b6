// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"

	"github.com/google/uuid"
)

// Article is a blog post. The slug is globally unique: derived from the
// title when not supplied, and disambiguated with a numeric suffix on
// collision. Content is Markdown; the web layer renders it to HTML.
// Only published articles appear on the public blog.
type Article struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"image_url"`
	Categories    []string  `json:"categories"`
	Tags          []string  `json:"tags"`
	PublishedDate string    `json:"published_date"`
	ReadTime      string    `json:"read_time"`
	Published     bool      `json:"published"`
}

// HasCategory reports whether the article is filed under the given
// category. Matching ignores case so filter links work regardless of how
// the category was typed.
func (a *Article) HasCategory(category string) bool {
	for _, c := range a.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// HasTag reports whether the article carries the given tag, ignoring case.
func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// SharesTopicWith reports whether two articles overlap in at least one
// category or tag. Used to pick related articles on the public blog.
func (a *Article) SharesTopicWith(other *Article) bool {
	for _, c := range other.Categories {
		if a.HasCategory(c) {
			return true
		}
	}
	for _, t := range other.Tags {
		if a.HasTag(t) {
			return true
		}
	}
	return false
}
