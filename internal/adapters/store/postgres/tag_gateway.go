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

var _ ports.TagStore = (*TagGateway)(nil)

const (
	tagExistsSQL = `SELECT EXISTS (SELECT 1 FROM article_tags WHERE id = $1 AND specificulture = $2)`

	tagUpsertSQL = `INSERT INTO article_tags (id, specificulture, article_id, name, priority)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id, specificulture) DO UPDATE SET
	article_id = EXCLUDED.article_id,
	name = EXCLUDED.name,
	priority = EXCLUDED.priority`

	tagDeleteSQL = `DELETE FROM article_tags WHERE id = $1 AND specificulture = $2`

	tagListSQL = `SELECT id, specificulture, article_id, name, priority
FROM article_tags WHERE article_id = $1 AND specificulture = $2
ORDER BY priority, name`
)

// TagGateway stores tags in the article_tags table.
type TagGateway struct {
	db *sql.DB
}

// NewTagGateway creates a TagGateway.
func NewTagGateway(db *sql.DB) *TagGateway {
	return &TagGateway{db: db}
}

func (g *TagGateway) CheckExists(ctx context.Context, model *article.Tag) (bool, error) {
	var exists bool
	err := txscope.Querier(ctx, g.db).
		QueryRowContext(ctx, tagExistsSQL, model.ID, model.Specificulture).
		Scan(&exists)
	if err != nil {
		return false, classify("checking tag", err)
	}
	return exists, nil
}

func (g *TagGateway) SaveModel(ctx context.Context, model *article.Tag) (*article.Tag, error) {
	_, err := txscope.Querier(ctx, g.db).ExecContext(ctx, tagUpsertSQL,
		model.ID, model.Specificulture, model.ArticleID, model.Name, model.Priority,
	)
	if err != nil {
		return nil, classify("saving tag", err)
	}
	saved := *model
	return &saved, nil
}

func (g *TagGateway) RemoveModel(ctx context.Context, model *article.Tag) error {
	res, err := txscope.Querier(ctx, g.db).ExecContext(ctx, tagDeleteSQL, model.ID, model.Specificulture)
	if err != nil {
		return classify("removing tag", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("removing tag %s/%s: %w", model.Specificulture, model.ID, domain.ErrNotFound)
	}
	return nil
}

// ListByArticle returns the tags of one article in one culture.
func (g *TagGateway) ListByArticle(ctx context.Context, articleID, culture string) ([]article.Tag, error) {
	rows, err := txscope.Querier(ctx, g.db).QueryContext(ctx, tagListSQL, articleID, culture)
	if err != nil {
		return nil, classify("listing tags", err)
	}
	defer rows.Close()

	var tags []article.Tag
	for rows.Next() {
		var t article.Tag
		if err := rows.Scan(&t.ID, &t.Specificulture, &t.ArticleID, &t.Name, &t.Priority); err != nil {
			return nil, classify("scanning tag", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("listing tags", err)
	}
	return tags, nil
}

func (g *TagGateway) LogErrorMessage(ctx context.Context, err error) {
	logFault(ctx, "tag", err)
}
