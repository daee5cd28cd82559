package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amitbasuri/content-service-go/internal/models"
	"github.com/amitbasuri/content-service-go/internal/storage"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeStore is an in-memory storage.Store
type fakeStore struct {
	mu         sync.Mutex
	nextID     int64
	articles   map[int64]models.Article
	categories []models.Category

	// err, when set, is returned by every operation
	err error
	// lastByCategory records the filter passed to ListArticlesByCategory
	lastByCategory *int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:   1,
		articles: make(map[int64]models.Article),
		categories: []models.Category{
			{ID: 1, Name: "News"},
			{ID: 2, Name: "Guides"},
		},
	}
}

// foreignKeyError mimics the driver error for an unknown category_id
func foreignKeyError(op string) error {
	return storage.Wrap(op, &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		Message:        `insert or update on table "articles" violates foreign key constraint "articles_category_id_fkey"`,
		ConstraintName: "articles_category_id_fkey",
	})
}

func (f *fakeStore) hasCategory(id *int64) bool {
	if id == nil {
		return true
	}
	for _, c := range f.categories {
		if c.ID == *id {
			return true
		}
	}
	return false
}

func (f *fakeStore) sorted() []models.Article {
	out := make([]models.Article, 0, len(f.articles))
	for _, a := range f.articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeStore) ListArticles(_ context.Context) ([]models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(), nil
}

func (f *fakeStore) ListCategories(_ context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeStore) ListArticlesByCategory(_ context.Context, categoryID *int64) ([]models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastByCategory = categoryID
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Article{}
	if categoryID == nil {
		return out, nil
	}
	for _, a := range f.sorted() {
		if a.HasCategory(*categoryID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) GetArticle(_ context.Context, id int64) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.articles[id]
	if !ok {
		return nil, storage.Wrap("fetching article", storage.ErrNotFound)
	}
	return &a, nil
}

func (f *fakeStore) CreateArticle(_ context.Context, in models.ArticleInput) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if !f.hasCategory(in.CategoryID) {
		return nil, foreignKeyError("inserting article")
	}
	a := models.Article{ID: f.nextID, Title: in.Title, Content: in.Content, CategoryID: in.CategoryID}
	f.articles[a.ID] = a
	f.nextID++
	return &a, nil
}

func (f *fakeStore) UpdateArticle(_ context.Context, id int64, in models.ArticleInput) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.articles[id]; !ok {
		return nil, storage.Wrap("updating article", storage.ErrNotFound)
	}
	if !f.hasCategory(in.CategoryID) {
		return nil, foreignKeyError("updating article")
	}
	a := models.Article{ID: id, Title: in.Title, Content: in.Content, CategoryID: in.CategoryID}
	f.articles[id] = a
	return &a, nil
}

func (f *fakeStore) DeleteArticle(_ context.Context, id int64) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.articles[id]
	if !ok {
		return nil, storage.Wrap("deleting article", storage.ErrNotFound)
	}
	delete(f.articles, id)
	return &a, nil
}

func (f *fakeStore) GetStats(_ context.Context) (*models.ContentStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	stats := &models.ContentStats{
		TotalArticles:   int64(len(f.articles)),
		TotalCategories: int64(len(f.categories)),
	}
	for _, a := range f.articles {
		if a.CategoryID == nil {
			stats.UncategorizedArticles++
		}
	}
	return stats, nil
}

// fakeHealth answers HealthCheck with a fixed result
type fakeHealth struct {
	now time.Time
	err error
}

func (f fakeHealth) HealthCheck(_ context.Context) (time.Time, error) {
	return f.now, f.err
}
