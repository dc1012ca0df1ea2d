package sqlq

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/internal/clauses"
	"github.com/qjebbs/go-sqlq/internal/util"
)

// JoinOn is the ordered ON condition of a join. Each entry compares
// two column references, "<left> = <right>", nothing is bound as a value.
type JoinOn struct {
	m   util.OrderedMap[string]
	err error
}

// On returns a new JoinOn from left-right column pairs:
//
//	sqlq.On("t1.id", "t2.t1_id") // ON (t1.id = t2.t1_id)
func On(pairs ...string) *JoinOn {
	o := &JoinOn{}
	if len(pairs)%2 != 0 {
		o.err = fmt.Errorf("%w: odd number of arguments (%d) to On", ErrMalformedJoin, len(pairs))
		return o
	}
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i], pairs[i+1])
	}
	return o
}

// Set sets the right side compared to the left column.
func (o *JoinOn) Set(left, right string) *JoinOn {
	o.m.Set(left, right)
	return o
}

func (o *JoinOn) pairs() ([][2]string, error) {
	if o == nil {
		return nil, nil
	}
	if o.err != nil {
		return nil, o.err
	}
	r := make([][2]string, 0, o.m.Len())
	o.m.Each(func(left, right string) {
		r = append(r, [2]string{left, right})
	})
	return r, nil
}

type joinItem struct {
	kind  JoinKind
	table string
	on    *JoinOn
}

// buildJoins renders the JOIN clauses, empty for no joins.
func buildJoins(joins []joinItem) (clauses.Fragment, error) {
	if len(joins) == 0 {
		return clauses.Fragment{}, nil
	}
	built := make([]clauses.JoinClause, 0, len(joins))
	for _, j := range joins {
		on, err := j.on.pairs()
		if err != nil {
			return clauses.Fragment{}, fmt.Errorf("join %s: %w", j.table, err)
		}
		built = append(built, clauses.JoinClause{
			Kind:  j.kind,
			Table: j.table,
			On:    on,
		})
	}
	return clauses.Joins(built)
}
