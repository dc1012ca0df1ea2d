package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = Oracle{}

// Oracle is the Oracle dialect.
type Oracle struct {
	dialect.Oracle
}

// Capabilities returns the capabilities of the Oracle dialect.
func (Oracle) Capabilities() Capabilities {
	return Capabilities{}
}
