package sqlq

import (
	"fmt"
	"strings"

	"github.com/qjebbs/go-sqlq/internal/clauses"
)

var groupByList = clauses.NewPrefixedList("GROUP BY", ", ")

// SQL implements Builder.
func (b *SelectBuilder) SQL() (string, error) {
	f, err := b.render()
	return f.SQL, err
}

// Params implements Builder. Only WHERE conditions contribute values.
func (b *SelectBuilder) Params() ([]any, error) {
	f, err := b.render()
	return f.Args, err
}

// Build builds the query and args.
func (b *SelectBuilder) Build() (query string, args []any, err error) {
	f, err := b.render()
	if err != nil {
		return "", nil, err
	}
	b.debugger.printIfDebug(f.SQL, f.Args)
	return f.SQL, f.Args, nil
}

// render builds the statement in the fixed clause order:
// SELECT, FROM, JOIN, WHERE, GROUP BY, ORDER BY, LIMIT, OFFSET.
func (b *SelectBuilder) render() (clauses.Fragment, error) {
	if b == nil {
		return clauses.Fragment{}, nil
	}
	if b.table == "" {
		return clauses.Fragment{}, fmt.Errorf("select: no table specified")
	}
	built := make([]clauses.Fragment, 0)
	built = append(built, clauses.F(b.buildSelects()+" FROM "+b.table))
	joins, err := buildJoins(b.joins)
	if err != nil {
		return clauses.Fragment{}, fmt.Errorf("select from %s: %w", b.table, err)
	}
	built = append(built, joins)
	where, err := buildWhere(b.where)
	if err != nil {
		return clauses.Fragment{}, fmt.Errorf("select from %s: %w", b.table, err)
	}
	built = append(built, where)
	built = append(built, groupByList.Build(b.groupbys))
	order, err := b.order.Build()
	if err != nil {
		return clauses.Fragment{}, fmt.Errorf("select from %s: %w", b.table, err)
	}
	built = append(built, order)
	if b.limit != 0 {
		limit, err := clauses.Limit("LIMIT", b.limit)
		if err != nil {
			return clauses.Fragment{}, fmt.Errorf("select from %s: %w", b.table, err)
		}
		built = append(built, limit)
	}
	if b.hasOffset {
		offset, err := clauses.Limit("OFFSET", b.offset)
		if err != nil {
			return clauses.Fragment{}, fmt.Errorf("select from %s: %w", b.table, err)
		}
		built = append(built, offset)
	}
	return clauses.Join(" ", built...), nil
}

func (b *SelectBuilder) buildSelects() string {
	prefix := "SELECT"
	if b.distinct {
		prefix = "SELECT DISTINCT"
	}
	if len(b.fields) == 0 {
		return prefix + " *"
	}
	return prefix + " " + strings.Join(b.fields, ", ")
}
