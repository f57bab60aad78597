// Package models defines client-side data models used by the Glossy reading
// client: content items, category tags, users, sessions, and onboarding state.
package models

import "time"

// PostType identifies one of the three content domains. Each domain has its
// own independent category cache.
type PostType string

const (
	PostTypeMagazines PostType = "magazines"
	PostTypeArticles  PostType = "articles"
	PostTypeDigests   PostType = "digests"
)

// Valid reports whether t is one of the three known domains.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeMagazines, PostTypeArticles, PostTypeDigests:
		return true
	}
	return false
}

// Bucket names one of the four content lists kept per domain.
type Bucket string

const (
	BucketFeatured    Bucket = "featured"
	BucketTrending    Bucket = "trending"
	BucketRecommended Bucket = "recommended"
	BucketNew         Bucket = "new"
)

// Post is a single content item as returned by the backend. Posts are
// immutable once fetched; a refetch replaces the whole bucket, there is no
// per-item merge.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	ReadTime    string    `json:"read_time"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Featured    bool      `json:"featured,omitempty"`
	Trending    bool      `json:"trending,omitempty"`
}

// CategoryTag is static reference data describing a browsable category.
// Tags are seeded when a cache is created and only replaced wholesale by a
// successful categories fetch.
type CategoryTag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Count int    `json:"count"`
}
