package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/app/viewmodel"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

var _ viewmodel.Hooks[article.Article, *article.View] = (*ArticleHooks)(nil)

// ArticleHooks cascades article pipelines to the article's tags. Every tag
// operation runs through the tag repository on the caller's context, so it
// joins the article's transaction.
type ArticleHooks struct {
	tags     *TagRepository
	tagStore ports.TagStore
}

// NewArticleHooks creates ArticleHooks.
func NewArticleHooks(tags *TagRepository, tagStore ports.TagStore) *ArticleHooks {
	return &ArticleHooks{tags: tags, tagStore: tagStore}
}

// ExpandView loads the article's tags in the view's culture.
func (h *ArticleHooks) ExpandView(ctx context.Context, view *article.View) error {
	tags, err := h.tagStore.ListByArticle(ctx, view.ID, view.Specificulture)
	if err != nil {
		return fmt.Errorf("listing tags: %w", err)
	}

	view.Tags = make([]*article.TagView, 0, len(tags))
	for i := range tags {
		vm, err := h.tags.FromModel(&tags[i])
		if err != nil {
			return err
		}
		view.Tags = append(view.Tags, vm.View())
	}
	return nil
}

// SaveSubModels saves every tag on the view under the saved article's key.
// All tags are attempted; failures are aggregated.
func (h *ArticleHooks) SaveSubModels(ctx context.Context, model *article.Article, view *article.View) domain.Result[bool] {
	result := domain.OK(true)
	for _, tv := range view.Tags {
		if tv == nil {
			continue
		}
		if tv.ID == "" {
			tv.ID = uuid.NewString()
		}
		tv.ArticleID = model.ID
		tv.Specificulture = model.Specificulture

		domain.Absorb(&result, h.tags.FromView(tv).SaveModel(ctx, false))
	}
	return result
}

// RemoveRelatedModels removes the article's tags in the view's culture.
func (h *ArticleHooks) RemoveRelatedModels(ctx context.Context, view *article.View) domain.Result[bool] {
	tags, err := h.tagStore.ListByArticle(ctx, view.ID, view.Specificulture)
	if err != nil {
		h.tagStore.LogErrorMessage(ctx, err)
		return domain.FromFault[bool](fmt.Errorf("listing tags: %w", err))
	}

	result := domain.OK(true)
	for i := range tags {
		vm, err := h.tags.FromModel(&tags[i])
		if err != nil {
			result.SetFault(err)
			continue
		}
		domain.Absorb(&result, vm.RemoveModel(ctx, false))
	}
	return result
}

// CloneSubModels copies the source article's tags into the culture of the
// article clone that was just saved. Clone calls it once per saved locale,
// and a tag row needs its article in the same culture, so the tags follow
// the clone rather than the whole locale set.
func (h *ArticleHooks) CloneSubModels(
	ctx context.Context, source *article.Article, clone *article.View, locales []domain.Locale,
) domain.Result[bool] {
	target, ok := domain.FindLocale(locales, clone.Specificulture)
	if !ok {
		return domain.Fail[bool](fmt.Sprintf("tags: %q is not a clone target", clone.Specificulture))
	}

	tags, err := h.tagStore.ListByArticle(ctx, source.ID, source.Specificulture)
	if err != nil {
		h.tagStore.LogErrorMessage(ctx, err)
		return domain.FromFault[bool](fmt.Errorf("listing tags: %w", err))
	}

	result := domain.OK(true)
	for i := range tags {
		domain.Absorb(&result, h.tags.New().Clone(ctx, &tags[i], []domain.Locale{target}))
	}
	return result
}
