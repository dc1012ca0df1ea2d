package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = AnsiSQL{}

// AnsiSQL is the ANSI SQL dialect.
type AnsiSQL struct {
	dialect.AnsiSQL
}

// Capabilities returns the capabilities of the AnsiSQL dialect.
func (AnsiSQL) Capabilities() Capabilities {
	return Capabilities{}
}
