package sqlq

var _ Builder = (*UpdateBuilder)(nil)

// UpdateBuilder is the UPDATE statement builder.
type UpdateBuilder struct {
	table  string
	values *Values     // SET columns and values, in order.
	joins  []joinItem  // joined tables in order.
	where  *Conditions // where conditions, joined with AND.
	limit  int64       // limit count, 0 for none

	debugger
}

// NewUpdate returns a new UpdateBuilder setting values on table.
// It fails with ErrMissingFields if values is empty.
func NewUpdate(table string, values *Values) (*UpdateBuilder, error) {
	if err := values.check("update", table); err != nil {
		return nil, err
	}
	b := &UpdateBuilder{table: table}
	return b.SetValues(values), nil
}

// Values merges columns and values into the SET clause.
// A column already present keeps its position and takes the new value.
func (b *UpdateBuilder) Values(values *Values) *UpdateBuilder {
	b.values = b.values.assign(values, false)
	return b
}

// SetValues replaces the columns and values of the SET clause.
func (b *UpdateBuilder) SetValues(values *Values) *UpdateBuilder {
	b.values = b.values.assign(values, true)
	return b
}

// Set sets a single column, it's equivalent to b.Values(sqlq.Vals(column, value)).
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	return b.Values(Vals(column, value))
}

// Limit set the limit, 0 removes it.
func (b *UpdateBuilder) Limit(limit int64) *UpdateBuilder {
	b.limit = limit
	return b
}

// Debug enables debug mode which prints the interpolated query to stdout
// on each Build().
func (b *UpdateBuilder) Debug(name ...string) *UpdateBuilder {
	b.debugger.Debug(name...)
	return b
}
