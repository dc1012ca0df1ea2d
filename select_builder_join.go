package sqlq

import "github.com/qjebbs/go-sqlq/internal/util"

// Join appends a joined table.
//
//	b.Join(sqlq.InnerJoin, "t2", sqlq.On("t1.id", "t2.t1_id"))
func (b *SelectBuilder) Join(kind JoinKind, table string, on *JoinOn) *SelectBuilder {
	b.joins = util.Assign(b.joins, []joinItem{{kind, table, on}}, false)
	return b
}

// SetJoin replaces all the joined tables with the given one.
func (b *SelectBuilder) SetJoin(kind JoinKind, table string, on *JoinOn) *SelectBuilder {
	b.joins = util.Assign(b.joins, []joinItem{{kind, table, on}}, true)
	return b
}

// InnerJoin appends an inner join table.
func (b *SelectBuilder) InnerJoin(table string, on *JoinOn) *SelectBuilder {
	return b.Join(InnerJoin, table, on)
}

// LeftJoin appends a left join table.
func (b *SelectBuilder) LeftJoin(table string, on *JoinOn) *SelectBuilder {
	return b.Join(LeftJoin, table, on)
}

// RightJoin appends a right join table.
func (b *SelectBuilder) RightJoin(table string, on *JoinOn) *SelectBuilder {
	return b.Join(RightJoin, table, on)
}

// CrossJoin appends a cross join table.
func (b *SelectBuilder) CrossJoin(table string) *SelectBuilder {
	return b.Join(CrossJoin, table, nil)
}
