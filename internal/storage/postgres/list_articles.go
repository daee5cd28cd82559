package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
)

// ListArticles retrieves every article
func (s *Store) ListArticles(ctx context.Context) ([]models.Article, error) {
	const op = "fetching articles"
	ctx, span := s.startSpan(ctx, "ListArticles", "SELECT")
	defer span.End()

	query := `
		SELECT ` + articleColumns + `
		FROM articles
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fail(span, op, err)
	}

	articles, err := collectArticles(rows)
	if err != nil {
		return nil, fail(span, op, err)
	}

	return articles, nil
}
