package sqlq

import (
	"fmt"
	"strings"

	"github.com/qjebbs/go-sqlq/internal/clauses"
	"github.com/qjebbs/go-sqlq/internal/util"
)

// SQL implements Builder.
func (b *UpdateBuilder) SQL() (string, error) {
	f, err := b.render()
	return f.SQL, err
}

// Params implements Builder, the SET values followed by the WHERE values.
func (b *UpdateBuilder) Params() ([]any, error) {
	f, err := b.render()
	return f.Args, err
}

// Build builds the query and args.
func (b *UpdateBuilder) Build() (query string, args []any, err error) {
	f, err := b.render()
	if err != nil {
		return "", nil, err
	}
	b.debugger.printIfDebug(f.SQL, f.Args)
	return f.SQL, f.Args, nil
}

func (b *UpdateBuilder) render() (clauses.Fragment, error) {
	if b == nil {
		return clauses.Fragment{}, nil
	}
	if b.table == "" {
		return clauses.Fragment{}, fmt.Errorf("update: no target table specified")
	}
	if err := b.values.check("update", b.table); err != nil {
		return clauses.Fragment{}, err
	}
	built := make([]clauses.Fragment, 0)
	built = append(built, clauses.F("UPDATE "+b.table))
	joins, err := buildJoins(b.joins)
	if err != nil {
		return clauses.Fragment{}, fmt.Errorf("update %s: %w", b.table, err)
	}
	built = append(built, joins)
	sets := util.Map(b.values.Columns(), func(column string) string {
		return column + " = ?"
	})
	built = append(built, clauses.F("SET "+strings.Join(sets, ", "), b.values.Args()...))
	where, err := buildWhere(b.where)
	if err != nil {
		return clauses.Fragment{}, fmt.Errorf("update %s: %w", b.table, err)
	}
	built = append(built, where)
	if b.limit != 0 {
		limit, err := clauses.Limit("LIMIT", b.limit)
		if err != nil {
			return clauses.Fragment{}, fmt.Errorf("update %s: %w", b.table, err)
		}
		built = append(built, limit)
	}
	return clauses.Join(" ", built...), nil
}
