package viewmodel

import (
	"context"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
)

// Hooks are the cascade points an entity family plugs into the pipelines.
// Every hook runs inside the caller's transaction scope: anything it saves
// or removes through another Repository borrows that scope.
type Hooks[M, V any] interface {
	// ExpandView enriches a freshly mapped view, e.g. by loading related
	// records. An error discards the view.
	ExpandView(ctx context.Context, view V) error

	// SaveSubModels runs after the primary model was persisted.
	SaveSubModels(ctx context.Context, model *M, view V) domain.Result[bool]

	// RemoveRelatedModels runs before the primary model is deleted; the
	// delete is skipped unless it succeeds.
	RemoveRelatedModels(ctx context.Context, view V) domain.Result[bool]

	// CloneSubModels runs after source was cloned into clone, with the full
	// locale set of the clone run.
	CloneSubModels(ctx context.Context, source *M, clone V, locales []domain.Locale) domain.Result[bool]
}

// NopHooks reports success without doing anything.
type NopHooks[M, V any] struct{}

func (NopHooks[M, V]) ExpandView(context.Context, V) error { return nil }

func (NopHooks[M, V]) SaveSubModels(context.Context, *M, V) domain.Result[bool] {
	return domain.OK(true)
}

func (NopHooks[M, V]) RemoveRelatedModels(context.Context, V) domain.Result[bool] {
	return domain.OK(true)
}

func (NopHooks[M, V]) CloneSubModels(context.Context, *M, V, []domain.Locale) domain.Result[bool] {
	return domain.OK(true)
}
