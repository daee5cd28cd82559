package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

// ListArticlesByCategory retrieves the articles filed under categoryID.
// A nil id compares as SQL NULL and matches nothing.
func (s *Store) ListArticlesByCategory(ctx context.Context, categoryID *int64) ([]models.Article, error) {
	const op = "fetching articles by category"
	ctx, span := s.startSpan(ctx, "ListArticlesByCategory", "SELECT")
	defer span.End()

	if categoryID != nil {
		span.SetAttributes(attribute.Int64("article.category_id", *categoryID))
	}

	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE category_id = $1
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fail(span, op, err)
	}

	articles, err := collectArticles(rows)
	if err != nil {
		return nil, fail(span, op, err)
	}

	return articles, nil
}
