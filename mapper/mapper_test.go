package mapper_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/mapper"
)

type user struct {
	ID   int64
	Name string
}

func scanUser() (*user, []any) {
	u := &user{}
	return u, []any{&u.ID, &u.Name}
}

func escape(query string) string {
	return "^" + regexp.QuoteMeta(query) + "$"
}

func TestExec(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b, err := sqlq.NewUpdate("users", sqlq.Vals("name", "dan"))
	require.NoError(t, err)
	b.Where(sqlq.Cond("id", 1))
	mk.ExpectExec(escape("UPDATE users SET name = ? WHERE id = ?")).
		WithArgs("dan", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r, err := mapper.Exec(context.Background(), db, b)
	require.NoError(t, err)
	n, err := r.RowsAffected()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestExecWithDialect(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := sqlq.NewDelete("users").Where(sqlq.Cond("id", []int{1, 2}))
	mk.ExpectExec(escape("DELETE FROM users WHERE id IN ($1, $2)")).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 2))

	_, err = mapper.Exec(context.Background(), db, b, mapper.WithDialect(dialect.PostgreSQL{}))
	require.NoError(t, err)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestExecUnsupported(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := sqlq.NewDelete("t").OrderBy(sqlq.OrderAsc, "id").Limit(10)
	_, err = mapper.Exec(context.Background(), db, b, mapper.WithDialect(dialect.PostgreSQL{}))
	assert.ErrorIs(t, err, sqlq.ErrUnsupported)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestExecBuildError(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := sqlq.NewDelete("t").Where(sqlq.Cond("id", []int{}))
	_, err = mapper.Exec(context.Background(), db, b)
	assert.ErrorIs(t, err, sqlq.ErrMalformedCondition)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestNilDB(t *testing.T) {
	ctx := context.Background()
	_, err := mapper.Exec(ctx, nil, sqlq.NewDelete("t"))
	assert.ErrorIs(t, err, mapper.ErrNilDB)
	_, err = mapper.Count(ctx, nil, sqlq.NewSelect("t"))
	assert.ErrorIs(t, err, mapper.ErrNilDB)
	_, err = mapper.Select(ctx, nil, sqlq.NewSelect("t"), scanUser)
	assert.ErrorIs(t, err, mapper.ErrNilDB)
}

func TestSelect(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := sqlq.NewSelect("users").
		Fields("id", "name").
		Where(sqlq.Cond("name LIKE", "d%"))
	mk.ExpectQuery(escape("SELECT id, name FROM users WHERE name LIKE ?")).
		WithArgs("d%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "dan").
			AddRow(2, "dave"))

	users, err := mapper.Select(context.Background(), db, b, scanUser)
	require.NoError(t, err)
	assert.Equal(t, []*user{{1, "dan"}, {2, "dave"}}, users)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestSelectDropsExtraColumns(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mk.ExpectQuery(escape("SELECT * FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(1, "dan", "dan@example.com"))

	users, err := mapper.Select(context.Background(), db, sqlq.NewSelect("users"), scanUser)
	require.NoError(t, err)
	assert.Equal(t, []*user{{1, "dan"}}, users)
}

func TestSelectOne(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mk.ExpectQuery(escape("SELECT id, name FROM users WHERE id = ? LIMIT 1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "dan"))
	mk.ExpectQuery(escape("SELECT id, name FROM users WHERE id = ? LIMIT 1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	ctx := context.Background()
	b := sqlq.NewSelect("users").Fields("id", "name").Limit(20)
	u, err := mapper.SelectOne(ctx, db, b.WhereEquals("id", 1), scanUser)
	require.NoError(t, err)
	assert.Equal(t, &user{1, "dan"}, u)

	_, err = mapper.SelectOne(ctx, db, b.WhereEquals("id", 2), scanUser)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	require.NoError(t, mk.ExpectationsWereMet())

	// the limit set by SelectOne stays on b
	query, err := b.SQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM users WHERE id = ? LIMIT 1", query)
}

func TestQueryRow(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mk.ExpectQuery(escape("SELECT name FROM users WHERE id = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("dan"))
	mk.ExpectQuery(escape("SELECT name FROM users WHERE id = ?")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	ctx := context.Background()
	var name string
	b := sqlq.NewSelect("users").Fields("name")
	require.NoError(t, mapper.QueryRow(ctx, db, b.WhereEquals("id", 3), []any{&name}))
	assert.Equal(t, "dan", name)

	err = mapper.QueryRow(ctx, db, b.WhereEquals("id", 4), []any{&name})
	assert.Equal(t, sql.ErrNoRows, err)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestQuery(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mk.ExpectQuery(escape("SELECT id FROM users ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	b := sqlq.NewSelect("users").Fields("id").OrderBy(sqlq.OrderAsc, "id")
	rows, err := mapper.Query(context.Background(), db, b)
	require.NoError(t, err)
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestCountAndExists(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := sqlq.NewSelect("users").Where(sqlq.Cond("active", true))
	mk.ExpectQuery(escape("SELECT COUNT(1) FROM (SELECT * FROM users WHERE active = ?) AS _count")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mk.ExpectQuery(escape("SELECT EXISTS (SELECT * FROM users WHERE active = ?)")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))

	ctx := context.Background()
	n, err := mapper.Count(ctx, db, b)
	require.NoError(t, err)
	assert.EqualValues(t, 42, n)

	ok, err := mapper.Exists(ctx, db, b)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestExecError(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errBoom := errors.New("boom")
	mk.ExpectExec(escape("DELETE FROM t")).WillReturnError(errBoom)
	_, err = mapper.Exec(context.Background(), db, sqlq.NewDelete("t"))
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "Exec(*sqlq.DeleteBuilder)")
}

func TestLogging(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mk.ExpectExec(escape("DELETE FROM t WHERE id = ?")).
		WithArgs(1).
		WillDelayFor(time.Millisecond).
		WillReturnResult(sqlmock.NewResult(0, 1))

	b := sqlq.NewDelete("t").WhereEquals("id", 1)
	_, err = mapper.Exec(context.Background(), db, b,
		mapper.WithDebug(),
		mapper.WithLogger(logger),
		mapper.WithSlowThreshold(time.Microsecond),
	)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "slow query detected")
	assert.Contains(t, out, "Exec(*sqlq.DeleteBuilder)")
	assert.Contains(t, out, `query="DELETE FROM t WHERE id = ?"`)
}

func TestLoggingReboundQuery(t *testing.T) {
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mk.ExpectExec(escape("DELETE FROM t WHERE id = $1 AND name = $2")).
		WithArgs(1, "dan").
		WillReturnResult(sqlmock.NewResult(0, 1))

	b := sqlq.NewDelete("t").Where(sqlq.Cond("id", 1, "name", "dan"))
	_, err = mapper.Exec(context.Background(), db, b,
		mapper.WithDialect(dialect.PostgreSQL{}),
		mapper.WithDebug(),
		mapper.WithLogger(logger),
	)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `interpolated="DELETE FROM t WHERE id = 1 AND name = 'dan'"`)
	assert.NotContains(t, out, "interpolate fail")
	require.NoError(t, mk.ExpectationsWereMet())
}
