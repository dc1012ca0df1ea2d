package mapper

import (
	"context"
	"log/slog"
	"time"

	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/dialect"
)

// Options defines options for executing statements.
type Options struct {
	debug         bool
	dialect       dialect.Dialect
	logger        *slog.Logger
	slowThreshold time.Duration
}

// Option defines a function type for setting Options.
type Option func(*Options)

// WithDebug enables debug logging of the executed queries.
func WithDebug() Option {
	return func(o *Options) {
		o.debug = true
	}
}

// WithDialect sets the SQL dialect, whose placeholder style the
// statements are rebound to before execution.
func WithDialect(dialect dialect.Dialect) Option {
	return func(o *Options) {
		o.dialect = dialect
	}
}

// WithLogger sends debug output and slow query warnings to logger
// instead of stdout.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithSlowThreshold logs a warning for queries executing longer than d.
func WithSlowThreshold(d time.Duration) Option {
	return func(o *Options) {
		o.slowThreshold = d
	}
}

func newDefaultOptions() *Options {
	return &Options{
		dialect: dialect.MySQL{},
	}
}

func mergeOptions(opts ...Option) *Options {
	options := newDefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *Options) buildContext(ctx context.Context) sqlq.Context {
	return sqlq.NewContext(ctx, o.dialect)
}
