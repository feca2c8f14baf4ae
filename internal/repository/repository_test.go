package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows serves a fixed result set through the pgx.Rows interface.
type fakeRows struct {
	columns []string
	values  [][]any
	pos     int
	err     error
}

func (r *fakeRows) Close()                        {}
func (r *fakeRows) Err() error                    { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(r.columns))
	for i, name := range r.columns {
		fields[i] = pgconn.FieldDescription{Name: name}
	}
	return fields
}

func (r *fakeRows) Next() bool {
	if r.err != nil || r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.values[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.values[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d targets for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

type fakeQuerier struct {
	rows  *fakeRows
	err   error
	calls int
	sql   string
	args  []any
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls++
	q.sql = sql
	q.args = args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

var userColumns = []string{"id", "clerk_id", "created_at"}

func TestUserRepository_GetByClerkID(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{
			columns: userColumns,
			values:  [][]any{{id, "user_123", createdAt}},
		}}

		user, err := NewUserRepository(q).GetByClerkID(context.Background(), "user_123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "user_123", user.ClerkID)
		assert.Equal(t, createdAt, user.CreatedAt)
		assert.Equal(t, []any{pgx.NamedArgs{"clerk_id": "user_123"}}, q.args)
	})

	t.Run("not found", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{columns: userColumns}}

		user, err := NewUserRepository(q).GetByClerkID(context.Background(), "user_123")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query error", func(t *testing.T) {
		q := &fakeQuerier{err: errors.New("connection refused")}

		user, err := NewUserRepository(q).GetByClerkID(context.Background(), "user_123")
		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("inserted", func(t *testing.T) {
		id := uuid.New()
		q := &fakeQuerier{rows: &fakeRows{
			columns: userColumns,
			values:  [][]any{{id, "user_123", time.Now().UTC()}},
		}}

		user, err := NewUserRepository(q).Create(context.Background(), "user_123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Contains(t, q.sql, "RETURNING id, clerk_id, created_at")
		assert.Equal(t, 1, q.calls)
	})

	t.Run("no row returned", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{columns: userColumns}}

		user, err := NewUserRepository(q).Create(context.Background(), "user_123")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("unique violation from query", func(t *testing.T) {
		q := &fakeQuerier{err: &pgconn.PgError{Code: "23505", ConstraintName: "users_clerk_id_key"}}

		_, err := NewUserRepository(q).Create(context.Background(), "user_123")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("unique violation from rows", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{
			columns: userColumns,
			err:     &pgconn.PgError{Code: "23505"},
		}}

		_, err := NewUserRepository(q).Create(context.Background(), "user_123")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("other error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01", Message: `relation "users" does not exist`}
		q := &fakeQuerier{err: pgErr}

		_, err := NewUserRepository(q).Create(context.Background(), "user_123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserAlreadyExists)

		var target *pgconn.PgError
		assert.True(t, errors.As(err, &target))
	})
}

func TestPostRepository_ListPosts(t *testing.T) {
	columns := []string{"id", "title", "content", "created_at"}

	t.Run("rows", func(t *testing.T) {
		newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		older := newer.Add(-24 * time.Hour)
		q := &fakeQuerier{rows: &fakeRows{
			columns: columns,
			values: [][]any{
				{uuid.New(), "Second", "b", newer},
				{uuid.New(), "First", "a", older},
			},
		}}

		posts, err := NewPostRepository(q).ListPosts(context.Background())
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Second", posts[0].Title)
		assert.Equal(t, older, posts[1].CreatedAt)
		assert.Contains(t, q.sql, "ORDER BY created_at DESC")
	})

	t.Run("empty table", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{columns: columns}}

		posts, err := NewPostRepository(q).ListPosts(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("query error", func(t *testing.T) {
		q := &fakeQuerier{err: errors.New("timeout")}

		_, err := NewPostRepository(q).ListPosts(context.Background())
		assert.ErrorContains(t, err, "failed to query posts")
	})
}
