package sqlq

import (
	"github.com/qjebbs/go-sqlq/internal/clauses"
	"github.com/qjebbs/go-sqlq/internal/util"
)

var _ Builder = (*SelectBuilder)(nil)

// SelectBuilder is the SELECT statement builder.
type SelectBuilder struct {
	table     string
	fields    []string        // select columns, * if empty.
	joins     []joinItem      // joined tables in order.
	where     *Conditions     // where conditions, joined with AND.
	groupbys  []string        // group by columns, joined with comma.
	order     clauses.OrderBy // order by columns and their shared direction.
	distinct  bool            // select distinct
	limit     int64           // limit count, 0 for none
	offset    int64           // offset count
	hasOffset bool

	debugger
}

// NewSelect returns a new SelectBuilder selecting from table.
func NewSelect(table string) *SelectBuilder {
	return &SelectBuilder{
		table: table,
	}
}

// Fields adds columns to the SELECT clause.
func (b *SelectBuilder) Fields(fields ...string) *SelectBuilder {
	b.fields = util.Assign(b.fields, fields, false)
	return b
}

// SetFields replaces the columns of the SELECT clause.
func (b *SelectBuilder) SetFields(fields ...string) *SelectBuilder {
	b.fields = util.Assign(b.fields, fields, true)
	return b
}

// Distinct set the flag for SELECT DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

// Indistinct unset the flag for SELECT DISTINCT.
func (b *SelectBuilder) Indistinct() *SelectBuilder {
	b.distinct = false
	return b
}

// GroupBy adds columns to the GROUP BY clause.
func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupbys = util.Assign(b.groupbys, columns, false)
	return b
}

// SetGroupBy replaces the columns of the GROUP BY clause.
func (b *SelectBuilder) SetGroupBy(columns ...string) *SelectBuilder {
	b.groupbys = util.Assign(b.groupbys, columns, true)
	return b
}

// OrderBy adds columns to the ORDER BY clause. The order applies to
// all the columns, and replaces the order of previous calls.
//
//	b.OrderBy(sqlq.OrderAsc, "name", "surname") // ORDER BY name, surname ASC
func (b *SelectBuilder) OrderBy(order Order, columns ...string) *SelectBuilder {
	b.order.Order = order
	b.order.Columns = util.Assign(b.order.Columns, columns, false)
	return b
}

// SetOrderBy replaces the columns and the order of the ORDER BY clause.
func (b *SelectBuilder) SetOrderBy(order Order, columns ...string) *SelectBuilder {
	b.order.Order = order
	b.order.Columns = util.Assign(b.order.Columns, columns, true)
	return b
}

// Limit set the limit, 0 removes it.
func (b *SelectBuilder) Limit(limit int64) *SelectBuilder {
	b.limit = limit
	return b
}

// Offset set the offset. Once set, the OFFSET clause is rendered even for 0.
func (b *SelectBuilder) Offset(offset int64) *SelectBuilder {
	b.offset = offset
	b.hasOffset = true
	return b
}

// Debug enables debug mode which prints the interpolated query to stdout
// on each Build().
func (b *SelectBuilder) Debug(name ...string) *SelectBuilder {
	b.debugger.Debug(name...)
	return b
}
