package sqlq

import (
	"context"

	"github.com/qjebbs/go-sqlf/v4"
	sqlfdialect "github.com/qjebbs/go-sqlf/v4/dialect"
	"github.com/qjebbs/go-sqlq/dialect"
)

// defaultDialect keeps the '?' placeholders.
var defaultDialect = dialect.MySQL{}

// Context is the go-sqlf build context with the capabilities of its dialect.
type Context interface {
	sqlf.Context

	// Dialect returns the dialect of the context.
	Dialect() dialect.Dialect
}

var _ Context = (*defaultCtx)(nil)

type defaultCtx struct {
	sqlf.Context

	d dialect.Dialect
}

// Dialect returns the dialect.
func (c *defaultCtx) Dialect() dialect.Dialect {
	return c.d
}

// NewContext returns a new Context for the given dialect, MySQL if nil.
//
// A go-sqlf dialect is accepted too, it's upgraded to the matching
// dialect of this module. Unknown dialects build with the placeholder
// style of d and the capabilities of ANSI SQL.
func NewContext(parent context.Context, d sqlfdialect.Dialect) Context {
	if parent == nil {
		panic("cannot create context from nil parent")
	}
	if d == nil {
		d = defaultDialect
	}
	upgraded, ok := dialect.Upgrade(d)
	if !ok {
		upgraded = dialect.AnsiSQL{}
	}
	return &defaultCtx{
		Context: sqlf.NewContext(parent, d),
		d:       upgraded,
	}
}
