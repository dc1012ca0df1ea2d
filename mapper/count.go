package mapper

import (
	"context"

	"github.com/qjebbs/go-sqlf/v4"
	"github.com/qjebbs/go-sqlq"
)

// Count builds and executes the query to count the records selected by b.
//
// b is wrapped as a derived table, so that DISTINCT, GROUP BY and LIMIT
// of b are respected:
//
//	SELECT COUNT(1) FROM (<b>) AS _count
func Count(ctx context.Context, db QueryAble, b *sqlq.SelectBuilder, options ...Option) (int64, error) {
	r, err := _count(ctx, db, b, options...)
	if err != nil {
		return 0, wrapErrWithDebugName("Count", b, err)
	}
	return r, nil
}

func _count(ctx context.Context, db QueryAble, b *sqlq.SelectBuilder, options ...Option) (int64, error) {
	opt := mergeOptions(options...)
	debugger := newDebugger("Count", b, opt)
	defer debugger.print()
	query, args, err := sqlf.F("SELECT COUNT(1) FROM (?) AS _count", sqlq.Fragment(b)).Build(opt.buildContext(ctx))
	if err != nil {
		return 0, err
	}
	debugger.onBuilt(query, args)
	if db == nil {
		return 0, ErrNilDB
	}
	var r int64
	err = db.QueryRowContext(ctx, query, args...).Scan(&r)
	debugger.onExec(err)
	if err != nil {
		return 0, err
	}
	return r, nil
}
