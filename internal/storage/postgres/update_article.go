package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

// UpdateArticle overwrites the mutable fields of an article.
// No row for id yields storage.ErrNotFound.
func (s *Store) UpdateArticle(ctx context.Context, id int64, in models.ArticleInput) (*models.Article, error) {
	const op = "updating article"
	ctx, span := s.startSpan(ctx, "UpdateArticle", "UPDATE")
	defer span.End()
	span.SetAttributes(attribute.Int64("article.id", id))

	query := `
		UPDATE articles
		SET title = $1, content = $2, category_id = $3
		WHERE id = $4
		RETURNING ` + articleColumns + `
	`

	article, err := scanArticle(s.pool.QueryRow(ctx, query, in.Title, in.Content, in.CategoryID, id))
	if err != nil {
		return nil, fail(span, op, err)
	}

	return article, nil
}
