package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = MySQL{}

// MySQL is the MySQL dialect, which accepts all the forms.
type MySQL struct {
	dialect.MySQL
}

// Capabilities returns the capabilities of the MySQL dialect.
func (MySQL) Capabilities() Capabilities {
	return Capabilities{
		SupportsUpdateJoin:       true,
		SupportsUpdateLimit:      true,
		SupportsDeleteJoin:       true,
		SupportsDeleteOrderLimit: true,
	}
}
