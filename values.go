package sqlq

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/internal/util"
)

// Values is an ordered set of column values to write
// in an INSERT or UPDATE statement.
//
// Setting an existing column replaces its value but keeps its position,
// so columns and values always line up.
type Values struct {
	m   util.OrderedMap[any]
	err error
}

// Vals returns new Values from column-value pairs:
//
//	sqlq.Vals("name", "dan", "surname", "rogers")
func Vals(pairs ...any) *Values {
	v := &Values{}
	if len(pairs)%2 != 0 {
		v.err = fmt.Errorf("odd number of arguments (%d) to Vals", len(pairs))
		return v
	}
	for i := 0; i < len(pairs); i += 2 {
		column, ok := pairs[i].(string)
		if !ok {
			v.err = fmt.Errorf("column #%d is %T, not string", i/2, pairs[i])
			return v
		}
		v.Set(column, pairs[i+1])
	}
	return v
}

// Set sets the value of a column.
func (v *Values) Set(column string, value any) *Values {
	if column == "" && v.err == nil {
		v.err = fmt.Errorf("empty column name")
	}
	v.m.Set(column, value)
	return v
}

// Merge sets every value of other into v, in other's order.
func (v *Values) Merge(other *Values) *Values {
	if other == nil {
		return v
	}
	v.m.Merge(&other.m)
	if v.err == nil {
		v.err = other.err
	}
	return v
}

// Len returns the number of columns.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return v.m.Len()
}

// Columns returns the columns in order.
func (v *Values) Columns() []string {
	if v == nil {
		return nil
	}
	return v.m.Keys()
}

// Args returns the values in column order.
func (v *Values) Args() []any {
	if v == nil {
		return nil
	}
	return v.m.Values()
}

func (v *Values) assign(other *Values, override bool) *Values {
	r := &Values{}
	if !override {
		r.Merge(v)
	}
	return r.Merge(other)
}

// check reports whether v can be written by statement.
func (v *Values) check(statement, table string) error {
	if v.Len() == 0 {
		return fmt.Errorf("%w: cannot create an %s statement on %s without fields and values", ErrMissingFields, statement, table)
	}
	if v.err != nil {
		return fmt.Errorf("%s %s: %w", statement, table, v.err)
	}
	return nil
}
