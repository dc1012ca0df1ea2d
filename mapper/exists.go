package mapper

import (
	"context"

	"github.com/qjebbs/go-sqlf/v4"
	"github.com/qjebbs/go-sqlq"
)

// Exists checks whether b selects any record.
//
//	SELECT EXISTS (<b>)
func Exists(ctx context.Context, db QueryAble, b *sqlq.SelectBuilder, options ...Option) (bool, error) {
	r, err := _exists(ctx, db, b, options...)
	if err != nil {
		return false, wrapErrWithDebugName("Exists", b, err)
	}
	return r, nil
}

func _exists(ctx context.Context, db QueryAble, b *sqlq.SelectBuilder, options ...Option) (bool, error) {
	opt := mergeOptions(options...)
	debugger := newDebugger("Exists", b, opt)
	defer debugger.print()
	query, args, err := sqlf.F("SELECT EXISTS (?)", sqlq.Fragment(b)).Build(opt.buildContext(ctx))
	if err != nil {
		return false, err
	}
	debugger.onBuilt(query, args)
	if db == nil {
		return false, ErrNilDB
	}
	// scanned as int, some drivers report EXISTS as an integer.
	var existsInt int
	err = db.QueryRowContext(ctx, query, args...).Scan(&existsInt)
	debugger.onExec(err)
	if err != nil {
		return false, err
	}
	return existsInt > 0, nil
}
