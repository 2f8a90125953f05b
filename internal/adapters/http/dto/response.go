// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
)

// ArticleResponse represents one article in one culture.
type ArticleResponse struct {
	ID             string           `json:"id"`
	Specificulture string           `json:"specificulture"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Excerpt        string           `json:"excerpt,omitempty"`
	Content        string           `json:"content,omitempty"`
	Status         string           `json:"status"`
	Priority       int              `json:"priority"`
	Tags           []TagResponse    `json:"tags,omitempty"`
	Cultures       []LocaleResponse `json:"cultures,omitempty"`
	CreatedAt      string           `json:"created_at,omitempty"`
	UpdatedAt      string           `json:"updated_at,omitempty"`
}

// TagResponse represents one tag of an article.
type TagResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// CloneResponse lists the cultures an article now exists in after a clone.
type CloneResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
}

// LocaleResponse describes one configured locale.
type LocaleResponse struct {
	Code      string `json:"code"`
	Default   bool   `json:"default"`
	Supported bool   `json:"supported"`
}

// LocaleListResponse lists configured locales.
type LocaleListResponse struct {
	Locales []LocaleResponse `json:"locales"`
	Count   int              `json:"count"`
}

// ToArticleResponse converts an article view to an HTTP response DTO.
// Timestamps are omitted while zero.
func ToArticleResponse(v *article.View) ArticleResponse {
	resp := ArticleResponse{
		ID:             v.ID,
		Specificulture: v.Specificulture,
		Title:          v.Title,
		Slug:           v.Slug,
		Excerpt:        v.Excerpt,
		Content:        v.Content,
		Status:         string(v.Status),
		Priority:       v.Priority,
		CreatedAt:      formatTime(v.CreatedAt),
		UpdatedAt:      formatTime(v.UpdatedAt),
	}

	if len(v.Tags) > 0 {
		resp.Tags = make([]TagResponse, 0, len(v.Tags))
		for _, t := range v.Tags {
			if t == nil {
				continue
			}
			resp.Tags = append(resp.Tags, TagResponse{ID: t.ID, Name: t.Name, Priority: t.Priority})
		}
	}
	if len(v.Cultures) > 0 {
		resp.Cultures = toLocaleResponses(v.Cultures)
	}

	return resp
}

// ToCloneResponse converts the views produced by a clone run.
func ToCloneResponse(views []*article.View) CloneResponse {
	items := make([]ArticleResponse, len(views))
	for i, v := range views {
		items[i] = ToArticleResponse(v)
	}
	return CloneResponse{Articles: items, Count: len(items)}
}

// ToLocaleListResponse converts configured locales.
func ToLocaleListResponse(locales []domain.Locale) LocaleListResponse {
	items := toLocaleResponses(locales)
	return LocaleListResponse{Locales: items, Count: len(items)}
}

func toLocaleResponses(locales []domain.Locale) []LocaleResponse {
	items := make([]LocaleResponse, len(locales))
	for i, l := range locales {
		items[i] = LocaleResponse{Code: l.Code, Default: l.IsDefault, Supported: l.IsSupported}
	}
	return items
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
