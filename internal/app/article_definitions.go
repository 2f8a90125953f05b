package app

import (
	"fmt"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/app/viewmodel"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

// Repository aliases for the article family.
type (
	ArticleRepository = viewmodel.Repository[article.Article, *article.View]
	TagRepository     = viewmodel.Repository[article.Tag, *article.TagView]
)

// articleRules are the cross-field constraints of an article view.
var articleRules = []viewmodel.Rule{
	{Expr: `string(Status) != "published" || Content != ""`, Message: "content: is required for published articles"},
	{Expr: `len(Excerpt) <= len(Content) || Content == ""`, Message: "excerpt: must not be longer than content"},
}

// NewTagRepository builds the tag view-model repository.
func NewTagRepository(store ports.TagStore, scopes *txscope.Manager, metrics *telemetry.Metrics) (*TagRepository, error) {
	v, err := viewmodel.NewStructValidator(&article.TagView{})
	if err != nil {
		return nil, fmt.Errorf("building tag validator: %w", err)
	}

	return viewmodel.NewRepository[article.Tag, *article.TagView](viewmodel.Definition[article.Tag, *article.TagView]{
		Name:      "tag",
		NewModel:  func() *article.Tag { return &article.Tag{} },
		NewView:   func() *article.TagView { return &article.TagView{} },
		Validator: v,
	}, store, scopes, metrics)
}

// NewArticleRepository builds the article view-model repository. Tags are
// expanded, saved, removed and cloned together with their article.
func NewArticleRepository(
	store ports.ArticleStore,
	tags *TagRepository,
	tagStore ports.TagStore,
	scopes *txscope.Manager,
	metrics *telemetry.Metrics,
) (*ArticleRepository, error) {
	v, err := viewmodel.NewStructValidator(&article.View{}, articleRules...)
	if err != nil {
		return nil, fmt.Errorf("building article validator: %w", err)
	}

	return viewmodel.NewRepository[article.Article, *article.View](viewmodel.Definition[article.Article, *article.View]{
		Name:      "article",
		NewModel:  func() *article.Article { return &article.Article{} },
		NewView:   func() *article.View { return &article.View{} },
		Validator: v,
		Hooks:     NewArticleHooks(tags, tagStore),
	}, store, scopes, metrics)
}
