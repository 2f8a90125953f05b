package article

import (
	"time"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
)

// View is the transfer form of an Article. Field names match Article so the
// mapper can project between them; Tags is populated by view expansion.
type View struct {
	domain.ViewMeta

	ID        string     `json:"id"`
	Title     string     `json:"title" validate:"required,max=250"`
	Slug      string     `json:"slug" validate:"required,max=250,lowercase"`
	Excerpt   string     `json:"excerpt,omitempty" validate:"max=500"`
	Content   string     `json:"content,omitempty"`
	Status    Status     `json:"status" validate:"required,oneof=draft published archived"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Tags      []*TagView `json:"tags,omitempty" copy:"-"`
}

// TagView is the transfer form of a Tag.
type TagView struct {
	domain.ViewMeta

	ID        string `json:"id"`
	ArticleID string `json:"articleId" validate:"required"`
	Name      string `json:"name" validate:"required,max=50"`
}
