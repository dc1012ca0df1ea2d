package sqlq

// Where merges conditions into the WHERE clause. e.g.:
//
//	b.Where(sqlq.Cond("id", 1))
//
// A key already present keeps its position and takes the new value.
func (b *SelectBuilder) Where(c *Conditions) *SelectBuilder {
	b.where = b.where.assign(c, false)
	return b
}

// SetWhere replaces the conditions of the WHERE clause.
func (b *SelectBuilder) SetWhere(c *Conditions) *SelectBuilder {
	b.where = b.where.assign(c, true)
	return b
}

// WhereEquals is a helper func similar to Where(), which adds a simple equality condition.
func (b *SelectBuilder) WhereEquals(column string, value any) *SelectBuilder {
	return b.Where(Cond(column, value))
}

// WhereIn adds a where IN condition like `t.id IN (1,2,3)`
func (b *SelectBuilder) WhereIn(column string, list any) *SelectBuilder {
	return b.Where(new(Conditions).SetOp(column, "IN", list))
}

// WhereNotIn adds a where NOT IN condition like `t.id NOT IN (1,2,3)`
func (b *SelectBuilder) WhereNotIn(column string, list any) *SelectBuilder {
	return b.Where(new(Conditions).SetOp(column, "NOT IN", list))
}
