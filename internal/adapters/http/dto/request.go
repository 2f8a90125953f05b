package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
)

// SaveArticleRequest is the JSON body for creating or replacing an article in
// one culture. Constraint checks beyond shape happen in the save pipeline.
type SaveArticleRequest struct {
	Title    string       `json:"title"`
	Slug     string       `json:"slug"`
	Excerpt  string       `json:"excerpt,omitempty"`
	Content  string       `json:"content,omitempty"`
	Status   string       `json:"status,omitempty"`
	Priority int          `json:"priority,omitempty"`
	IsClone  bool         `json:"isClone,omitempty"`
	Tags     []TagRequest `json:"tags,omitempty"`
}

// TagRequest is one tag inside a SaveArticleRequest.
type TagRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Priority int    `json:"priority,omitempty"`
}

// Validate checks request shape. Returns a *domain.ValidationError if any
// checks fail.
func (r *SaveArticleRequest) Validate() error {
	fields := make(map[string]string)

	if r.Status != "" && !article.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	if r.Priority < 0 {
		fields["priority"] = fmt.Sprintf("must not be negative, got %d", r.Priority)
	}
	for i, tag := range r.Tags {
		if strings.TrimSpace(tag.Name) == "" {
			fields[fmt.Sprintf("tags[%d].name", i)] = domain.MsgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToView maps the request onto an article view for culture. id may be empty
// for creation. A missing status defaults to draft.
func (r *SaveArticleRequest) ToView(culture, id string) *article.View {
	view := &article.View{
		ViewMeta: domain.ViewMeta{
			Specificulture: culture,
			Priority:       r.Priority,
			IsClone:        r.IsClone,
		},
		ID:      id,
		Title:   r.Title,
		Slug:    r.Slug,
		Excerpt: r.Excerpt,
		Content: r.Content,
		Status:  article.StatusDraft,
	}
	if r.Status != "" {
		view.Status = article.Status(r.Status)
	}

	if len(r.Tags) > 0 {
		view.Tags = make([]*article.TagView, len(r.Tags))
		for i, tag := range r.Tags {
			view.Tags[i] = &article.TagView{
				ViewMeta: domain.ViewMeta{Specificulture: culture, Priority: tag.Priority},
				ID:       tag.ID,
				Name:     tag.Name,
			}
		}
	}
	return view
}

// CloneArticleRequest is the JSON body for cloning an article. An empty
// Targets list clones into every other supported locale.
type CloneArticleRequest struct {
	Targets []string `json:"targets,omitempty"`
}

// Validate checks that no target is blank.
func (r *CloneArticleRequest) Validate() error {
	fields := make(map[string]string)
	for i, code := range r.Targets {
		if strings.TrimSpace(code) == "" {
			fields[fmt.Sprintf("targets[%d]", i)] = "must not be empty"
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
