package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
)

// GetStats retrieves article and category counters for the list view
func (s *Store) GetStats(ctx context.Context) (*models.ContentStats, error) {
	const op = "fetching stats"
	ctx, span := s.startSpan(ctx, "GetStats", "SELECT")
	defer span.End()

	query := `
		SELECT
			(SELECT COUNT(*) FROM articles) AS total_articles,
			(SELECT COUNT(*) FROM categories) AS total_categories,
			(SELECT COUNT(*) FROM articles WHERE category_id IS NULL) AS uncategorized_articles
	`

	var stats models.ContentStats
	err := s.pool.QueryRow(ctx, query).Scan(
		&stats.TotalArticles,
		&stats.TotalCategories,
		&stats.UncategorizedArticles,
	)

	if err != nil {
		return nil, fail(span, op, err)
	}

	return &stats, nil
}
