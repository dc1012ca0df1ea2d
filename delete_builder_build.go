package sqlq

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/internal/clauses"
)

// SQL implements Builder.
func (b *DeleteBuilder) SQL() (string, error) {
	f, err := b.render()
	return f.SQL, err
}

// Params implements Builder. Only WHERE conditions contribute values.
func (b *DeleteBuilder) Params() ([]any, error) {
	f, err := b.render()
	return f.Args, err
}

// Build builds the query and args.
func (b *DeleteBuilder) Build() (query string, args []any, err error) {
	f, err := b.render()
	if err != nil {
		return "", nil, err
	}
	b.debugger.printIfDebug(f.SQL, f.Args)
	return f.SQL, f.Args, nil
}

func (b *DeleteBuilder) render() (clauses.Fragment, error) {
	if b == nil {
		return clauses.Fragment{}, nil
	}
	if b.table == "" {
		return clauses.Fragment{}, fmt.Errorf("delete: no target table specified")
	}
	built := make([]clauses.Fragment, 0)
	built = append(built, clauses.F("DELETE FROM "+b.table))
	joins, err := buildJoins(b.joins)
	if err != nil {
		return clauses.Fragment{}, fmt.Errorf("delete from %s: %w", b.table, err)
	}
	built = append(built, joins)
	where, err := buildWhere(b.where)
	if err != nil {
		return clauses.Fragment{}, fmt.Errorf("delete from %s: %w", b.table, err)
	}
	built = append(built, where)
	order, err := b.order.Build()
	if err != nil {
		return clauses.Fragment{}, fmt.Errorf("delete from %s: %w", b.table, err)
	}
	built = append(built, order)
	if b.limit != 0 {
		limit, err := clauses.Limit("LIMIT", b.limit)
		if err != nil {
			return clauses.Fragment{}, fmt.Errorf("delete from %s: %w", b.table, err)
		}
		built = append(built, limit)
	}
	return clauses.Join(" ", built...), nil
}
