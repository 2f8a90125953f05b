package ports

import (
	"context"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
)

// ArticleService defines the service port for article operations.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and the admin CLI).
//
// Write operations report through domain.Result so callers can surface every
// validation and cascade message, not just the first error.
type ArticleService interface {
	// Get returns an article in one culture with its tags expanded.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, culture, id string) (*article.View, error)

	// Save validates and persists view together with its tags. When
	// view.IsClone is set the article is also cloned into every other
	// supported locale inside the same transaction.
	Save(ctx context.Context, view *article.View) domain.Result[*article.View]

	// Remove deletes an article and its tags in one culture.
	Remove(ctx context.Context, culture, id string) domain.Result[*article.Article]

	// Clone replicates an existing article into the given cultures, or into
	// every other supported locale when targets is empty. Cultures that
	// already hold the article are skipped without writing.
	Clone(ctx context.Context, culture, id string, targets []string) domain.Result[[]*article.View]

	// Locales returns the configured locale descriptors.
	Locales(ctx context.Context) []domain.Locale
}
