package sqlq

// Where merges conditions into the WHERE clause. e.g.:
//
//	b.Where(sqlq.Cond("id", 1))
func (b *UpdateBuilder) Where(c *Conditions) *UpdateBuilder {
	b.where = b.where.assign(c, false)
	return b
}

// SetWhere replaces the conditions of the WHERE clause.
func (b *UpdateBuilder) SetWhere(c *Conditions) *UpdateBuilder {
	b.where = b.where.assign(c, true)
	return b
}

// WhereEquals is a helper func similar to Where(), which adds a simple equality condition.
func (b *UpdateBuilder) WhereEquals(column string, value any) *UpdateBuilder {
	return b.Where(Cond(column, value))
}

// WhereIn adds a where IN condition like `t.id IN (1,2,3)`
func (b *UpdateBuilder) WhereIn(column string, list any) *UpdateBuilder {
	return b.Where(new(Conditions).SetOp(column, "IN", list))
}
