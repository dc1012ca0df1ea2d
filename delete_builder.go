package sqlq

import (
	"github.com/qjebbs/go-sqlq/internal/clauses"
	"github.com/qjebbs/go-sqlq/internal/util"
)

var _ Builder = (*DeleteBuilder)(nil)

// DeleteBuilder is the DELETE statement builder.
type DeleteBuilder struct {
	table string
	joins []joinItem      // joined tables in order.
	where *Conditions     // where conditions, joined with AND.
	order clauses.OrderBy // order by columns and their shared direction.
	limit int64           // limit count, 0 for none

	debugger
}

// NewDelete returns a new DeleteBuilder deleting from table.
func NewDelete(table string) *DeleteBuilder {
	return &DeleteBuilder{
		table: table,
	}
}

// Where merges conditions into the WHERE clause. e.g.:
//
//	b.Where(sqlq.Cond("id", 1))
func (b *DeleteBuilder) Where(c *Conditions) *DeleteBuilder {
	b.where = b.where.assign(c, false)
	return b
}

// SetWhere replaces the conditions of the WHERE clause.
func (b *DeleteBuilder) SetWhere(c *Conditions) *DeleteBuilder {
	b.where = b.where.assign(c, true)
	return b
}

// WhereEquals is a helper func similar to Where(), which adds a simple equality condition.
func (b *DeleteBuilder) WhereEquals(column string, value any) *DeleteBuilder {
	return b.Where(Cond(column, value))
}

// WhereIn adds a where IN condition like `t.id IN (1,2,3)`
func (b *DeleteBuilder) WhereIn(column string, list any) *DeleteBuilder {
	return b.Where(new(Conditions).SetOp(column, "IN", list))
}

// Join appends a joined table.
func (b *DeleteBuilder) Join(kind JoinKind, table string, on *JoinOn) *DeleteBuilder {
	b.joins = util.Assign(b.joins, []joinItem{{kind, table, on}}, false)
	return b
}

// SetJoin replaces all the joined tables with the given one.
func (b *DeleteBuilder) SetJoin(kind JoinKind, table string, on *JoinOn) *DeleteBuilder {
	b.joins = util.Assign(b.joins, []joinItem{{kind, table, on}}, true)
	return b
}

// OrderBy adds columns to the ORDER BY clause, the order applies to all of them.
func (b *DeleteBuilder) OrderBy(order Order, columns ...string) *DeleteBuilder {
	b.order.Order = order
	b.order.Columns = util.Assign(b.order.Columns, columns, false)
	return b
}

// SetOrderBy replaces the columns and the order of the ORDER BY clause.
func (b *DeleteBuilder) SetOrderBy(order Order, columns ...string) *DeleteBuilder {
	b.order.Order = order
	b.order.Columns = util.Assign(b.order.Columns, columns, true)
	return b
}

// Limit set the limit, 0 removes it.
func (b *DeleteBuilder) Limit(limit int64) *DeleteBuilder {
	b.limit = limit
	return b
}

// Debug enables debug mode which prints the interpolated query to stdout
// on each Build().
func (b *DeleteBuilder) Debug(name ...string) *DeleteBuilder {
	b.debugger.Debug(name...)
	return b
}
