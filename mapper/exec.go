package mapper

import (
	"context"
	"database/sql"

	"github.com/qjebbs/go-sqlq"
)

// Exec builds b and executes it against the database, e.g. INSERT,
// UPDATE and DELETE statements.
func Exec(ctx context.Context, db QueryAble, b sqlq.Builder, options ...Option) (sql.Result, error) {
	r, err := _exec(ctx, db, b, options...)
	if err != nil {
		return nil, wrapErrWithDebugName("Exec", b, err)
	}
	return r, nil
}

func _exec(ctx context.Context, db QueryAble, b sqlq.Builder, options ...Option) (sql.Result, error) {
	opt := mergeOptions(options...)
	debugger := newDebugger("Exec", b, opt)
	defer debugger.print()
	query, args, err := sqlq.BuildContext(opt.buildContext(ctx), b)
	if err != nil {
		return nil, err
	}
	debugger.onBuilt(query, args)
	if db == nil {
		return nil, ErrNilDB
	}
	r, err := db.ExecContext(ctx, query, args...)
	debugger.onExec(err)
	return r, err
}

// Query builds b and returns the rows, which the caller must close.
func Query(ctx context.Context, db QueryAble, b sqlq.Builder, options ...Option) (*sql.Rows, error) {
	opt := mergeOptions(options...)
	debugger := newDebugger("Query", b, opt)
	defer debugger.print()
	query, args, err := sqlq.BuildContext(opt.buildContext(ctx), b)
	if err != nil {
		return nil, wrapErrWithDebugName("Query", b, err)
	}
	debugger.onBuilt(query, args)
	if db == nil {
		return nil, wrapErrWithDebugName("Query", b, ErrNilDB)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	debugger.onExec(err)
	if err != nil {
		return nil, wrapErrWithDebugName("Query", b, err)
	}
	return rows, nil
}

// QueryRow builds b and scans the first row into dest.
//
// It returns sql.ErrNoRows unwrapped if there is no row.
func QueryRow(ctx context.Context, db QueryAble, b sqlq.Builder, dest []any, options ...Option) error {
	opt := mergeOptions(options...)
	debugger := newDebugger("QueryRow", b, opt)
	defer debugger.print()
	query, args, err := sqlq.BuildContext(opt.buildContext(ctx), b)
	if err != nil {
		return wrapErrWithDebugName("QueryRow", b, err)
	}
	debugger.onBuilt(query, args)
	if db == nil {
		return wrapErrWithDebugName("QueryRow", b, ErrNilDB)
	}
	err = db.QueryRowContext(ctx, query, args...).Scan(dest...)
	debugger.onExec(err)
	return wrapErrWithDebugName("QueryRow", b, err)
}
