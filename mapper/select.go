package mapper

import (
	"context"
	"database/sql"

	"github.com/qjebbs/go-sqlq"
)

// ScanFunc returns a new destination and the pointers to scan a row into.
type ScanFunc[T any] func() (T, []any)

// SelectOne executes the query with LIMIT 1 and scans the row into T.
//
// It returns sql.ErrNoRows if there is no row. It calls b.Limit(1), so
// b keeps the limit of 1 after the call.
func SelectOne[T any](ctx context.Context, db QueryAble, b *sqlq.SelectBuilder, fn ScanFunc[T], options ...Option) (T, error) {
	var zero T
	b.Limit(1)
	r, err := Select(ctx, db, b, fn, options...)
	if err != nil {
		return zero, err
	}
	if len(r) == 0 {
		return zero, sql.ErrNoRows
	}
	return r[0], nil
}

// Select builds and executes the query and scans the rows into a slice of T.
//
// Extra columns of a row are discarded if fn returns less destinations than
// the selected columns, e.g.:
//
//	users, err := mapper.Select(ctx, db, b, func() (*User, []any) {
//		u := &User{}
//		return u, []any{&u.ID, &u.Name}
//	})
func Select[T any](ctx context.Context, db QueryAble, b sqlq.Builder, fn ScanFunc[T], options ...Option) ([]T, error) {
	r, err := _select(ctx, db, b, fn, options...)
	if err != nil {
		var zero T
		return nil, wrapErrWithDebugName("Select", zero, err)
	}
	return r, nil
}

func _select[T any](ctx context.Context, db QueryAble, b sqlq.Builder, fn ScanFunc[T], options ...Option) ([]T, error) {
	var zero T
	opt := mergeOptions(options...)
	debugger := newDebugger("Select", zero, opt)
	defer debugger.print()
	query, args, err := sqlq.BuildContext(opt.buildContext(ctx), b)
	if err != nil {
		return nil, err
	}
	debugger.onBuilt(query, args)
	if db == nil {
		return nil, ErrNilDB
	}
	return scan(ctx, db, query, args, debugger, fn)
}
