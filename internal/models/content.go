package models

import "time"

// ContentEntry is one cached unit of generated page content, keyed by its
// content key. Regenerating an entry replaces the content and clears the
// review flag; review metadata only ever changes through explicit admin
// action.
type ContentEntry struct {
	Key           string     `json:"key"`
	Content       string     `json:"content"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	HowCreated    string     `json:"how_created,omitempty"`
	WhyCreated    string     `json:"why_created,omitempty"`
	HumanReviewed bool       `json:"human_reviewed"`
	ReviewedBy    string     `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
}

// BlogPost is a generated blog article. Indexable is a publishing decision
// separate from the review flag: a post can be reviewed but still held back
// from search engines.
type BlogPost struct {
	ID            int64      `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	CreatedAt     time.Time  `json:"created_at"`
	HowCreated    string     `json:"how_created,omitempty"`
	WhyCreated    string     `json:"why_created,omitempty"`
	HumanReviewed bool       `json:"human_reviewed"`
	ReviewedBy    string     `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	Indexable     bool       `json:"indexable"`
}
