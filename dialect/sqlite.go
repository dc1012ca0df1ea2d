package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = SQLite{}

// SQLite is the SQLite dialect.
type SQLite struct {
	dialect.SQLite
}

// Capabilities returns the capabilities of the SQLite dialect.
func (SQLite) Capabilities() Capabilities {
	// UPDATE / DELETE ... LIMIT needs SQLITE_ENABLE_UPDATE_DELETE_LIMIT,
	// which is off in most builds.
	return Capabilities{}
}
