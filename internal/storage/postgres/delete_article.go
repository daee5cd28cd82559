package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

// DeleteArticle removes an article and returns the deleted row.
// No row for id yields storage.ErrNotFound.
func (s *Store) DeleteArticle(ctx context.Context, id int64) (*models.Article, error) {
	const op = "deleting article"
	ctx, span := s.startSpan(ctx, "DeleteArticle", "DELETE")
	defer span.End()
	span.SetAttributes(attribute.Int64("article.id", id))

	query := `
		DELETE FROM articles
		WHERE id = $1
		RETURNING ` + articleColumns + `
	`

	article, err := scanArticle(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fail(span, op, err)
	}

	return article, nil
}
