package sqlq

import "github.com/qjebbs/go-sqlq/internal/clauses"

var _ Builder = (*RawQuery)(nil)

// RawQuery holds a literal SQL string and its params,
// returned as they are, without any validation.
type RawQuery struct {
	sql    string
	params []any
}

// NewRaw returns a new RawQuery.
func NewRaw(sql string, params ...any) *RawQuery {
	return &RawQuery{sql: sql, params: params}
}

// SetSQL sets the SQL string.
func (q *RawQuery) SetSQL(sql string) *RawQuery {
	q.sql = sql
	return q
}

// SetParams sets the params to bind.
func (q *RawQuery) SetParams(params ...any) *RawQuery {
	q.params = params
	return q
}

// SQL implements Builder.
func (q *RawQuery) SQL() (string, error) {
	return q.sql, nil
}

// Params implements Builder.
func (q *RawQuery) Params() ([]any, error) {
	return q.params, nil
}

// Build returns the query and args.
func (q *RawQuery) Build() (query string, args []any, err error) {
	return q.sql, q.params, nil
}

func (q *RawQuery) render() (clauses.Fragment, error) {
	return clauses.F(q.sql, q.params...), nil
}
