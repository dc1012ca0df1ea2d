// Package dialect wraps the go-sqlf dialects, which decide the placeholder
// style, with the statement forms each database accepts.
package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

// Dialect extends dialect.Dialect with additional capabilities.
type Dialect interface {
	dialect.Dialect

	// Capabilities returns the SQL capabilities of the dialect.
	Capabilities() Capabilities
}

// Capabilities represents the SQL capabilities of a dialect.
//
// The statement forms below are accepted by MySQL, other databases
// reject them or need a different syntax.
type Capabilities struct {
	// SupportsUpdateJoin indicates whether the dialect supports JOIN clause in UPDATE statements.
	//
	// For example (MySQL),
	//   UPDATE foo JOIN bar ON (foo.id = bar.id) SET foo.val = ?
	SupportsUpdateJoin bool
	// SupportsUpdateLimit indicates whether the dialect supports LIMIT clause in UPDATE statements.
	SupportsUpdateLimit bool
	// SupportsDeleteJoin indicates whether the dialect supports JOIN clause in DELETE statements.
	//
	// For example (MySQL),
	//   DELETE FROM foo JOIN bar ON (foo.id = bar.foo_id) WHERE bar.val = ?
	SupportsDeleteJoin bool
	// SupportsDeleteOrderLimit indicates whether the dialect supports ORDER BY
	// and LIMIT clauses in DELETE statements.
	SupportsDeleteOrderLimit bool
}

// Upgrade attempts to upgrade a sqlf/dialect.Dialect to a sqlq/dialect.Dialect.
func Upgrade(d dialect.Dialect) (Dialect, bool) {
	if dialect, ok := d.(Dialect); ok {
		return dialect, true
	}
	switch v := d.(type) {
	case dialect.PostgreSQL:
		return PostgreSQL{
			PostgreSQL: v,
		}, true
	case dialect.SQLite:
		return SQLite{
			SQLite: v,
		}, true
	case dialect.Oracle:
		return Oracle{
			Oracle: v,
		}, true
	case dialect.SQLServer:
		return SQLServer{
			SQLServer: v,
		}, true
	case dialect.AnsiSQL:
		return AnsiSQL{
			AnsiSQL: v,
		}, true
	case dialect.MySQL:
		return MySQL{
			MySQL: v,
		}, true
	}
	return nil, false
}
