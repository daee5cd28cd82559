package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

// GetArticle retrieves an article by ID
func (s *Store) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	const op = "fetching article"
	ctx, span := s.startSpan(ctx, "GetArticle", "SELECT")
	defer span.End()
	span.SetAttributes(attribute.Int64("article.id", id))

	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1
	`

	article, err := scanArticle(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fail(span, op, err)
	}

	return article, nil
}
