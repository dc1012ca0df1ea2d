package sqlq

import (
	"fmt"

	"github.com/qjebbs/go-sqlf/v4"
	"github.com/qjebbs/go-sqlq/dialect"
)

var _ sqlf.Builder = fragment{}

// fragment adapts a Builder to sqlf.Builder.
type fragment struct {
	b Builder
}

// Fragment wraps b as a sqlf.Builder, so that the statement can be embedded in
// go-sqlf fragments, and its placeholders are rebound to the dialect of the
// build context. e.g.:
//
//	sel := sqlq.NewSelect("bar").Fields("foo_id").Where(sqlq.Cond("active", true))
//	sqlf.F("DELETE FROM foo WHERE id IN (?)", sqlq.Fragment(sel))
func Fragment(b Builder) sqlf.Builder {
	return fragment{b: b}
}

// BuildTo implements sqlf.Builder
func (f fragment) BuildTo(ctx sqlf.Context) (string, error) {
	query, args, err := Build(f.b)
	if err != nil {
		return "", err
	}
	return sqlf.F(query, args...).BuildTo(ctx)
}

// BuildContext builds b with the placeholder style of the context dialect.
//
// It fails with ErrUnsupported if b uses a statement form the dialect
// does not accept, e.g. UPDATE ... JOIN on PostgreSQL.
func BuildContext(ctx Context, b Builder) (query string, args []any, err error) {
	if err := checkCapabilities(ctx.Dialect(), b); err != nil {
		return "", nil, err
	}
	return sqlf.F("?", Fragment(b)).Build(ctx)
}

func checkCapabilities(d dialect.Dialect, b Builder) error {
	if d == nil {
		return nil
	}
	caps := d.Capabilities()
	switch b := b.(type) {
	case *UpdateBuilder:
		if len(b.joins) > 0 && !caps.SupportsUpdateJoin {
			return fmt.Errorf("%w: UPDATE ... JOIN on %T", ErrUnsupported, d)
		}
		if b.limit != 0 && !caps.SupportsUpdateLimit {
			return fmt.Errorf("%w: UPDATE ... LIMIT on %T", ErrUnsupported, d)
		}
	case *DeleteBuilder:
		if len(b.joins) > 0 && !caps.SupportsDeleteJoin {
			return fmt.Errorf("%w: DELETE ... JOIN on %T", ErrUnsupported, d)
		}
		if (b.limit != 0 || len(b.order.Columns) > 0) && !caps.SupportsDeleteOrderLimit {
			return fmt.Errorf("%w: DELETE ... ORDER BY / LIMIT on %T", ErrUnsupported, d)
		}
	}
	return nil
}
