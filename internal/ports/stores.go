package ports

import (
	"context"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
)

// PersistenceGateway is the storage contract consumed by view-model
// pipelines. Implementations read the active transaction from ctx and must
// not commit, roll back or close it.
//
// Expected absence is reported as (false, nil) from CheckExists or as
// domain.ErrNotFound; any other error is a fault.
type PersistenceGateway[M any] interface {
	// CheckExists reports whether a record with the model's key exists.
	CheckExists(ctx context.Context, model *M) (bool, error)

	// SaveModel inserts or updates model and returns the stored state,
	// including store-assigned fields such as timestamps.
	SaveModel(ctx context.Context, model *M) (*M, error)

	// RemoveModel deletes the record with the model's key.
	// Returns domain.ErrNotFound if nothing was deleted.
	RemoveModel(ctx context.Context, model *M) error

	// LogErrorMessage records a fault observed by a pipeline.
	LogErrorMessage(ctx context.Context, err error)
}

// ArticleStore persists articles.
type ArticleStore interface {
	PersistenceGateway[article.Article]

	// Find returns one article in one culture.
	// Returns domain.ErrNotFound if it does not exist.
	Find(ctx context.Context, id, culture string) (*article.Article, error)
}

// TagStore persists article tags.
type TagStore interface {
	PersistenceGateway[article.Tag]

	// ListByArticle returns the tags of one article in one culture, ordered
	// by priority.
	ListByArticle(ctx context.Context, articleID, culture string) ([]article.Tag, error)
}
