package clauses

import (
	"fmt"
	"strings"
)

// OrderBy represents a SQL ORDER BY clause, one direction
// applies to all of its columns.
type OrderBy struct {
	Columns []string
	Order   Order
}

// Order is the sorting order.
type Order uint

// orders
const (
	OrderAsc Order = iota
	OrderAscNullsFirst
	OrderAscNullsLast
	OrderDesc
	OrderDescNullsFirst
	OrderDescNullsLast
)

var orders = []string{
	"ASC",
	"ASC NULLS FIRST",
	"ASC NULLS LAST",
	"DESC",
	"DESC NULLS FIRST",
	"DESC NULLS LAST",
}

// String returns the SQL keywords of the order.
func (o Order) String() string {
	if o > OrderDescNullsLast {
		return fmt.Sprintf("Order(%d)", uint(o))
	}
	return orders[o]
}

// Build renders the ORDER BY clause, empty when there are no columns.
func (o *OrderBy) Build() (Fragment, error) {
	if o == nil || len(o.Columns) == 0 {
		return Fragment{}, nil
	}
	if o.Order > OrderDescNullsLast {
		return Fragment{}, fmt.Errorf("%w: %d", ErrInvalidOrder, o.Order)
	}
	return F("ORDER BY " + strings.Join(o.Columns, ", ") + " " + orders[o.Order]), nil
}
