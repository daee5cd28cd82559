package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*Database, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return New(mock), mock
}

func TestHealthCheck(t *testing.T) {
	db, mock := newMockDatabase(t)
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(healthCheckQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"now"}).AddRow(now))

	got, err := db.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_Failure(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(regexp.QuoteMeta(healthCheckQuery)).
		WillReturnError(errors.New("connection refused"))

	_, err := db.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_NoRow(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(regexp.QuoteMeta(healthCheckQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"now"}))

	_, err := db.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no row returned")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStartupCheck_FailureIsNotFatal(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(regexp.QuoteMeta(healthCheckQuery)).
		WillReturnError(errors.New("no route to host"))

	assert.NotPanics(t, func() { db.startupCheck(context.Background()) })
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(7), "News"))

	rows, err := db.Execute(context.Background(), "SELECT id, name FROM categories WHERE id = $1", int64(7))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(7), rows[0]["id"])
	assert.Equal(t, "News", rows[0]["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_NoRows(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM articles")).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	rows, err := db.Execute(context.Background(), "SELECT id FROM articles")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExecute_Error(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM missing")).
		WillReturnError(errors.New(`relation "missing" does not exist`))

	_, err := db.Execute(context.Background(), "SELECT * FROM missing")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClose(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	mock.ExpectClose()
	New(mock).Close()
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewSlogLogger(logger).Log(context.Background(), tracelog.LogLevelWarn, "Query", map[string]any{
		"sql": "SELECT 1",
	})

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=Query")
	assert.Contains(t, out, `sql="SELECT 1"`)
}
