package sqlq

import "github.com/qjebbs/go-sqlq/internal/util"

// Join appends a joined table, rendered before SET:
//
//	UPDATE t1 INNER JOIN t2 ON (t1.id = t2.t1_id) SET ...
//
// It's the MySQL form, see BuildContext for dialect checks.
func (b *UpdateBuilder) Join(kind JoinKind, table string, on *JoinOn) *UpdateBuilder {
	b.joins = util.Assign(b.joins, []joinItem{{kind, table, on}}, false)
	return b
}

// SetJoin replaces all the joined tables with the given one.
func (b *UpdateBuilder) SetJoin(kind JoinKind, table string, on *JoinOn) *UpdateBuilder {
	b.joins = util.Assign(b.joins, []joinItem{{kind, table, on}}, true)
	return b
}

// InnerJoin appends an inner join table.
func (b *UpdateBuilder) InnerJoin(table string, on *JoinOn) *UpdateBuilder {
	return b.Join(InnerJoin, table, on)
}

// LeftJoin appends a left join table.
func (b *UpdateBuilder) LeftJoin(table string, on *JoinOn) *UpdateBuilder {
	return b.Join(LeftJoin, table, on)
}

// RightJoin appends a right join table.
func (b *UpdateBuilder) RightJoin(table string, on *JoinOn) *UpdateBuilder {
	return b.Join(RightJoin, table, on)
}

// CrossJoin appends a cross join table.
func (b *UpdateBuilder) CrossJoin(table string) *UpdateBuilder {
	return b.Join(CrossJoin, table, nil)
}
