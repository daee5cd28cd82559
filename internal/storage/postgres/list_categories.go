package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
)

// ListCategories retrieves every category
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "fetching categories"
	ctx, span := s.startSpan(ctx, "ListCategories", "SELECT")
	defer span.End()

	query := `
		SELECT id, name
		FROM categories
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fail(span, op, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fail(span, op, err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fail(span, op, err)
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}
