package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain/article"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

var _ ports.ArticleStore = (*ArticleGateway)(nil)

const (
	articleExistsSQL = `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1 AND specificulture = $2)`

	articleUpsertSQL = `INSERT INTO articles
	(id, specificulture, title, slug, excerpt, content, status, priority, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
ON CONFLICT (id, specificulture) DO UPDATE SET
	title = EXCLUDED.title,
	slug = EXCLUDED.slug,
	excerpt = EXCLUDED.excerpt,
	content = EXCLUDED.content,
	status = EXCLUDED.status,
	priority = EXCLUDED.priority,
	updated_at = now()
RETURNING created_at, updated_at`

	articleDeleteSQL = `DELETE FROM articles WHERE id = $1 AND specificulture = $2`

	articleFindSQL = `SELECT id, specificulture, title, slug, excerpt, content, status, priority, created_at, updated_at
FROM articles WHERE id = $1 AND specificulture = $2`
)

// ArticleGateway stores articles in the articles table.
type ArticleGateway struct {
	db *sql.DB
}

// NewArticleGateway creates an ArticleGateway.
func NewArticleGateway(db *sql.DB) *ArticleGateway {
	return &ArticleGateway{db: db}
}

// CheckExists reports whether the article exists in the model's culture.
func (g *ArticleGateway) CheckExists(ctx context.Context, model *article.Article) (bool, error) {
	var exists bool
	err := txscope.Querier(ctx, g.db).
		QueryRowContext(ctx, articleExistsSQL, model.ID, model.Specificulture).
		Scan(&exists)
	if err != nil {
		return false, classify("checking article", err)
	}
	return exists, nil
}

// SaveModel upserts the article and returns it with stored timestamps.
func (g *ArticleGateway) SaveModel(ctx context.Context, model *article.Article) (*article.Article, error) {
	saved := *model
	err := txscope.Querier(ctx, g.db).QueryRowContext(ctx, articleUpsertSQL,
		model.ID, model.Specificulture, model.Title, model.Slug, model.Excerpt,
		model.Content, string(model.Status), model.Priority,
	).Scan(&saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, classify("saving article", err)
	}
	return &saved, nil
}

// RemoveModel deletes the article in the model's culture.
func (g *ArticleGateway) RemoveModel(ctx context.Context, model *article.Article) error {
	res, err := txscope.Querier(ctx, g.db).ExecContext(ctx, articleDeleteSQL, model.ID, model.Specificulture)
	if err != nil {
		return classify("removing article", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify("removing article", err)
	}
	if n == 0 {
		return fmt.Errorf("removing article %s/%s: %w", model.Specificulture, model.ID, domain.ErrNotFound)
	}
	return nil
}

// Find returns one article in one culture.
func (g *ArticleGateway) Find(ctx context.Context, id, culture string) (*article.Article, error) {
	var (
		a      article.Article
		status string
	)
	err := txscope.Querier(ctx, g.db).QueryRowContext(ctx, articleFindSQL, id, culture).Scan(
		&a.ID, &a.Specificulture, &a.Title, &a.Slug, &a.Excerpt,
		&a.Content, &status, &a.Priority, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, classify(fmt.Sprintf("finding article %s/%s", culture, id), err)
	}
	a.Status = article.Status(status)
	return &a, nil
}

// LogErrorMessage logs a fault observed by an article pipeline.
func (g *ArticleGateway) LogErrorMessage(ctx context.Context, err error) {
	logFault(ctx, "article", err)
}
