package storage

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
)

// Store defines the interface for article storage operations.
// Every operation runs a single parameterized statement against the shared pool.
type Store interface {
	// ListArticles returns every article
	ListArticles(ctx context.Context) ([]models.Article, error)

	// ListCategories returns every category
	ListCategories(ctx context.Context) ([]models.Category, error)

	// ListArticlesByCategory returns the articles filed under categoryID.
	// The id is not checked for existence; no match yields an empty slice.
	ListArticlesByCategory(ctx context.Context, categoryID *int64) ([]models.Article, error)

	// GetArticle retrieves an article by its ID
	GetArticle(ctx context.Context, id int64) (*models.Article, error)

	// CreateArticle inserts an article and returns it with its generated ID
	CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error)

	// UpdateArticle overwrites title, content and category of an article.
	// Returns ErrNotFound when no article has the given ID.
	UpdateArticle(ctx context.Context, id int64, in models.ArticleInput) (*models.Article, error)

	// DeleteArticle removes an article and returns the deleted row.
	// Returns ErrNotFound when no article has the given ID.
	DeleteArticle(ctx context.Context, id int64) (*models.Article, error)

	// GetStats retrieves counters for the article list
	GetStats(ctx context.Context) (*models.ContentStats, error)
}
