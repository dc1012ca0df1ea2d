package mapper

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/qjebbs/go-sqlf/v4/util"

	"github.com/qjebbs/go-sqlq/dialect"
)

type debugger struct {
	name    string
	debug   bool
	dialect dialect.Dialect
	logger  *slog.Logger
	slow    time.Duration

	query string
	args  []any
	msgs  []string

	start   time.Time
	elapsed time.Duration
}

func newDebugger(funcName string, value any, opt *Options) *debugger {
	return &debugger{
		name:    fmt.Sprintf("%s(%T)", funcName, value),
		debug:   opt.debug,
		dialect: opt.dialect,
		logger:  opt.logger,
		slow:    opt.slowThreshold,
		start:   time.Now(),
	}
}

func (d *debugger) onBuilt(query string, args []any) {
	d.query = query
	d.args = args
	d.start = time.Now()
}

func (d *debugger) onExec(err error) {
	d.elapsed = time.Since(d.start)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		d.msgs = append(d.msgs, fmt.Sprintf("exec failed: %s", err))
	}
}

func (d *debugger) onScan(err error) {
	if err != nil {
		d.msgs = append(d.msgs, fmt.Sprintf("scan failed: %s", err))
	}
}

func (d *debugger) print() {
	if d.slow > 0 && d.elapsed >= d.slow {
		d.warnSlow()
	}
	if !d.debug {
		return
	}
	// the query is already rebound, so it's parsed in the bindvar style
	// of the dialect it was built for
	query, ok := util.Interpolate(d.query, d.args, d.dialect)
	if !ok {
		d.msgs = append(d.msgs, "interpolate fail")
		query = fmt.Sprintf("%s; %v", d.query, d.args)
	}
	if d.logger != nil {
		attrs := []any{"query", d.query, "args", d.args, "interpolated", query, "duration", d.elapsed}
		if len(d.msgs) > 0 {
			attrs = append(attrs, "error", strings.Join(d.msgs, ": "))
		}
		d.logger.Debug(d.name, attrs...)
		return
	}
	if len(d.msgs) == 0 {
		fmt.Printf("[%s] %s\n", d.name, query)
		return
	}
	fmt.Printf("[%s] %s: %s\n", d.name, strings.Join(d.msgs, ": "), query)
}

func (d *debugger) warnSlow() {
	logger := d.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("slow query detected",
		"func", d.name,
		"duration", d.elapsed,
		"query", d.query,
		"args", d.args,
	)
}

func wrapErrWithDebugName(funcName string, value any, err error) error {
	if err == nil {
		return err
	}
	// not wrapping well known errors for easier checking
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return fmt.Errorf("%s(%T): %w", funcName, value, err)
}
