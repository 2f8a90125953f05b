// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

// Compile-time check that ArticleService implements ports.ArticleService.
var _ ports.ArticleService = (*ArticleService)(nil)

// ArticleService implements ports.ArticleService on top of the article
// view-model repository. It resolves records and locales, assigns ids, and
// logs outcomes; the pipelines do the rest.
type ArticleService struct {
	articles *ArticleRepository
	store    ports.ArticleStore
	locales  []domain.Locale
	logger   *slog.Logger
}

// NewArticleService creates an ArticleService over the configured locales.
func NewArticleService(
	articles *ArticleRepository, store ports.ArticleStore, locales []domain.Locale, logger *slog.Logger,
) *ArticleService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ArticleService{
		articles: articles,
		store:    store,
		locales:  slices.Clone(locales),
		logger:   logger,
	}
}

// Get returns an article with its tags.
func (s *ArticleService) Get(ctx context.Context, culture, id string) (*article.View, error) {
	s.logger.InfoContext(ctx, "fetching article", slog.String("id", id), slog.String("specificulture", culture))

	model, err := s.store.Find(ctx, id, culture)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch article",
			slog.String("operation", "Get"),
			slog.String("id", id),
			slog.String("specificulture", culture),
			slog.Any("error", err),
		)
		return nil, err
	}

	vm, err := s.articles.FromModel(model)
	if err != nil {
		return nil, err
	}
	view, ok := vm.ParseView(ctx, true)
	if !ok {
		cause := vm.View().Fault
		if cause == nil {
			cause = domain.ErrUnavailable
		}
		s.logger.ErrorContext(ctx, "failed to expand article",
			slog.String("operation", "Get"),
			slog.String("id", id),
			slog.String("specificulture", culture),
			slog.Any("error", cause),
		)
		return nil, fmt.Errorf("expanding article %s/%s: %w", culture, id, cause)
	}
	view.Cultures = s.locales
	return view, nil
}

// Save validates and persists view with its tags, cloning it when asked.
func (s *ArticleService) Save(ctx context.Context, view *article.View) domain.Result[*article.View] {
	if view.ID == "" {
		view.ID = uuid.NewString()
	}
	if view.Specificulture == "" {
		if def, ok := domain.DefaultLocale(s.locales); ok {
			view.Specificulture = def.Code
		}
	}
	locale, ok := domain.FindLocale(s.locales, view.Specificulture)
	if !ok || !locale.IsSupported {
		return domain.Fail[*article.View](fmt.Sprintf("specificulture: %q is not a supported locale", view.Specificulture))
	}
	view.Specificulture = locale.Code

	view.Cultures = nil
	if view.IsClone {
		view.Cultures = domain.CloneTargets(s.locales, view.Specificulture)
	}

	s.logger.InfoContext(ctx, "saving article",
		slog.String("id", view.ID),
		slog.String("specificulture", view.Specificulture),
		slog.Bool("clone", view.IsClone),
	)

	result := s.articles.FromView(view).SaveModel(ctx, true)
	if !result.Success {
		s.logFailure(ctx, "Save", view.ID, view.Specificulture, result.Errors, result.Fault)
	}
	return result
}

// Remove deletes an article and its tags in one culture.
func (s *ArticleService) Remove(ctx context.Context, culture, id string) domain.Result[*article.Article] {
	s.logger.InfoContext(ctx, "removing article", slog.String("id", id), slog.String("specificulture", culture))

	model, err := s.store.Find(ctx, id, culture)
	if err != nil {
		return domain.FromFault[*article.Article](err)
	}

	vm, err := s.articles.FromModel(model)
	if err != nil {
		return domain.FromFault[*article.Article](err)
	}

	result := vm.RemoveModel(ctx, true)
	if !result.Success {
		s.logFailure(ctx, "Remove", id, culture, result.Errors, result.Fault)
	}
	return result
}

// Clone replicates an article into targets, or into every other supported
// locale when targets is empty.
func (s *ArticleService) Clone(
	ctx context.Context, culture, id string, targets []string,
) domain.Result[[]*article.View] {
	locales := domain.CloneTargets(s.locales, culture)
	if len(targets) > 0 {
		selected := make([]domain.Locale, 0, len(targets))
		for _, code := range targets {
			l, ok := domain.FindLocale(locales, code)
			if !ok {
				return domain.Fail[[]*article.View](fmt.Sprintf("targets: %q is not a clone target for %s", code, culture))
			}
			selected = append(selected, l)
		}
		locales = selected
	}

	s.logger.InfoContext(ctx, "cloning article",
		slog.String("id", id),
		slog.String("specificulture", culture),
		slog.Int("targets", len(locales)),
	)

	model, err := s.store.Find(ctx, id, culture)
	if err != nil {
		return domain.FromFault[[]*article.View](err)
	}

	result := s.articles.New().Clone(ctx, model, locales)
	if !result.Success {
		s.logFailure(ctx, "Clone", id, culture, result.Errors, result.Fault)
	}
	return result
}

// Locales returns the configured locale descriptors.
func (s *ArticleService) Locales(_ context.Context) []domain.Locale {
	return slices.Clone(s.locales)
}

func (s *ArticleService) logFailure(ctx context.Context, op, id, culture string, errs []string, fault error) {
	s.logger.ErrorContext(ctx, "article pipeline failed",
		slog.String("operation", op),
		slog.String("id", id),
		slog.String("specificulture", culture),
		slog.Any("errors", errs),
		slog.Any("error", fault),
	)
}
