package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

// CreateArticle inserts a new article and returns the stored row
func (s *Store) CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	const op = "inserting article"
	ctx, span := s.startSpan(ctx, "CreateArticle", "INSERT")
	defer span.End()

	query := `
		INSERT INTO articles (title, content, category_id)
		VALUES ($1, $2, $3)
		RETURNING ` + articleColumns + `
	`

	article, err := scanArticle(s.pool.QueryRow(ctx, query, in.Title, in.Content, in.CategoryID))
	if err != nil {
		return nil, fail(span, op, err)
	}

	span.SetAttributes(attribute.Int64("article.id", article.ID))
	return article, nil
}
