package postgres

import (
	"context"

	"github.com/amitbasuri/content-service-go/internal/models"
	"github.com/amitbasuri/content-service-go/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ storage.Store = (*Store)(nil)

const tracerName = "storage/postgres"

// Querier runs single statements. Satisfied by *pgxpool.Pool and database.Pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements the storage.Store interface using PostgreSQL
type Store struct {
	pool   Querier
	tracer trace.Tracer
}

// Option configures a Store
type Option func(*Store)

// WithTracerProvider sets the provider spans are recorded with.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Store) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// NewStore creates a new PostgreSQL store
func NewStore(pool Querier, opts ...Option) *Store {
	s := &Store{
		pool:   pool,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const articleColumns = "id, title, content, category_id"

// startSpan opens a client span for one statement
func (s *Store) startSpan(ctx context.Context, name, operation string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "ArticleStore."+name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", operation),
		),
	)
}

// fail records err on the span and wraps it with the operation prefix
func fail(span trace.Span, op string, err error) error {
	wrapped := storage.Wrap(op, err)
	span.RecordError(wrapped)
	span.SetStatus(codes.Error, op)
	span.SetAttributes(attribute.String("error.kind", storage.KindOf(wrapped).String()))
	return wrapped
}

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.CategoryID); err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]models.Article, error) {
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if articles == nil {
		articles = []models.Article{}
	}

	return articles, nil
}
