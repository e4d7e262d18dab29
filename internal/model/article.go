// Package model defines the domain records served by the clinic site:
// articles, gallery images, contact messages and users.
package model

import (
	"strings"
	"time"
)

// Article categories used by the public site. Free-form values are accepted
// from the admin panel; these are the ones the seed content uses.
const (
	CategoryDiagnostics = "Діагностика"
	CategoryTreatment   = "Лікування"
	CategoryPrevention  = "Профілактика"
)

// ContentSection is one heading/text block of an article body.
type ContentSection struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// ArticleContent is the nested article body stored as JSONB: an intro
// paragraph followed by ordered sections.
type ArticleContent struct {
	Intro    string           `json:"intro"`
	Sections []ContentSection `json:"sections"`
}

// Article represents a published or draft article. Date and ReadTime are
// free-text display labels, not real dates or durations — the admin panel
// submits them verbatim.
type Article struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Excerpt   string         `json:"excerpt"`
	Category  string         `json:"category"`
	Image     string         `json:"image,omitempty"`
	Content   ArticleContent `json:"content"`
	Date      string         `json:"date"`
	ReadTime  string         `json:"readTime"`
	Published bool           `json:"published"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Validate checks the fields required to store an article.
// Returns a map of field name to message, empty when valid.
func (a *Article) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(a.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(a.Excerpt) == "" {
		errs["excerpt"] = "Excerpt is required"
	}
	if strings.TrimSpace(a.Category) == "" {
		errs["category"] = "Category is required"
	}
	return errs
}
