package sqlq

var _ Builder = (*InsertBuilder)(nil)

// InsertBuilder is the INSERT statement builder.
type InsertBuilder struct {
	table  string
	values *Values // columns and values to insert, in order.

	debugger
}

// NewInsert returns a new InsertBuilder writing values into table.
// It fails with ErrMissingFields if values is empty.
func NewInsert(table string, values *Values) (*InsertBuilder, error) {
	if err := values.check("insert", table); err != nil {
		return nil, err
	}
	b := &InsertBuilder{table: table}
	return b.SetValues(values), nil
}

// Values merges columns and values to insert.
// A column already present keeps its position and takes the new value.
func (b *InsertBuilder) Values(values *Values) *InsertBuilder {
	b.values = b.values.assign(values, false)
	return b
}

// SetValues replaces the columns and values to insert.
func (b *InsertBuilder) SetValues(values *Values) *InsertBuilder {
	b.values = b.values.assign(values, true)
	return b
}

// Debug enables debug mode which prints the interpolated query to stdout
// on each Build().
func (b *InsertBuilder) Debug(name ...string) *InsertBuilder {
	b.debugger.Debug(name...)
	return b
}
