// Package article holds the persisted article and tag models. Models are plain
// data; validation and locale orchestration happen on their views.
package article

import "time"

// Article is a localized piece of content. The pair (ID, Specificulture)
// identifies one stored record; clones of an article share its ID.
type Article struct {
	ID             string
	Specificulture string
	Title          string
	Slug           string
	Excerpt        string
	Content        string
	Status         Status
	Priority       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Tag is a label attached to an article in one culture.
type Tag struct {
	ID             string
	Specificulture string
	ArticleID      string
	Name           string
	Priority       int
}
