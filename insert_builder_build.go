package sqlq

import (
	"fmt"
	"strings"

	"github.com/qjebbs/go-sqlq/internal/clauses"
	"github.com/qjebbs/go-sqlq/internal/util"
)

// SQL implements Builder.
func (b *InsertBuilder) SQL() (string, error) {
	f, err := b.render()
	return f.SQL, err
}

// Params implements Builder, the values in column order.
func (b *InsertBuilder) Params() ([]any, error) {
	f, err := b.render()
	return f.Args, err
}

// Build builds the query and args.
func (b *InsertBuilder) Build() (query string, args []any, err error) {
	f, err := b.render()
	if err != nil {
		return "", nil, err
	}
	b.debugger.printIfDebug(f.SQL, f.Args)
	return f.SQL, f.Args, nil
}

func (b *InsertBuilder) render() (clauses.Fragment, error) {
	if b == nil {
		return clauses.Fragment{}, nil
	}
	if b.table == "" {
		return clauses.Fragment{}, fmt.Errorf("insert: no target table specified")
	}
	// the values may have been replaced with empty ones after construction
	if err := b.values.check("insert", b.table); err != nil {
		return clauses.Fragment{}, err
	}
	columns := b.values.Columns()
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		b.table,
		strings.Join(columns, ", "),
		strings.Join(util.Repeat("?", len(columns)), ", "),
	)
	return clauses.F(query, b.values.Args()...), nil
}
