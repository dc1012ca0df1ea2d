// Package sqlq builds parameterized SQL statements and their bind values,
// without executing them.
//
// Statements are configured with chained calls and rendered with SQL() and
// Params(), or Build() for both at once:
//
//	q := sqlq.NewSelect("users").
//		Fields("id", "name").
//		Where(sqlq.Cond("id", []int{1, 2}, "name LIKE", "%og%")).
//		Limit(25)
//	query, args, err := q.Build()
//	// SELECT id, name FROM users WHERE id IN (?, ?) AND name LIKE ? LIMIT 25
//	// [1 2 %og%]
//
// Placeholders are always '?'. The n-th value of Params() binds the n-th '?'
// of SQL(), left to right. Use BuildContext to rebind the placeholders to
// the style of another dialect.
//
// Table names, column names and operators are written into the SQL as they
// are given, they must come from trusted input.
package sqlq

import (
	"github.com/qjebbs/go-sqlq/internal/clauses"
)

// Builder is the interface for statements.
type Builder interface {
	// SQL renders the statement with '?' placeholders.
	SQL() (string, error)
	// Params returns the bind values in placeholder order.
	Params() ([]any, error)
}

type renderer interface {
	render() (clauses.Fragment, error)
}

// Build renders query and args of b in one pass.
func Build(b Builder) (query string, args []any, err error) {
	if r, ok := b.(renderer); ok {
		f, err := r.render()
		if err != nil {
			return "", nil, err
		}
		return f.SQL, f.Args, nil
	}
	query, err = b.SQL()
	if err != nil {
		return "", nil, err
	}
	args, err = b.Params()
	if err != nil {
		return "", nil, err
	}
	return query, args, nil
}

// Order is the sorting order.
type Order = clauses.Order

// orders
const (
	OrderAsc            Order = clauses.OrderAsc
	OrderAscNullsFirst        = clauses.OrderAscNullsFirst
	OrderAscNullsLast         = clauses.OrderAscNullsLast
	OrderDesc                 = clauses.OrderDesc
	OrderDescNullsFirst       = clauses.OrderDescNullsFirst
	OrderDescNullsLast        = clauses.OrderDescNullsLast
)

// JoinKind is the kind of a JOIN.
type JoinKind = clauses.JoinKind

// join kinds
const (
	InnerJoin JoinKind = clauses.InnerJoin
	LeftJoin           = clauses.LeftJoin
	RightJoin          = clauses.RightJoin
	CrossJoin          = clauses.CrossJoin
)
