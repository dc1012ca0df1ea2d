package clauses

import (
	"fmt"
	"strings"
)

// JoinKind is the kind of a JOIN clause.
type JoinKind uint

// join kinds
const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	CrossJoin
)

var joinKinds = []string{
	"INNER",
	"LEFT",
	"RIGHT",
	"CROSS",
}

// String returns the SQL keyword of the join kind.
func (k JoinKind) String() string {
	if k > CrossJoin {
		return fmt.Sprintf("JoinKind(%d)", uint(k))
	}
	return joinKinds[k]
}

// JoinClause is a single joined table. Each pair of On compares two
// column references, they are never bound as values.
type JoinClause struct {
	Kind  JoinKind
	Table string
	On    [][2]string
}

// Build renders the join.
func (j JoinClause) Build() (Fragment, error) {
	if j.Kind > CrossJoin {
		return Fragment{}, fmt.Errorf("%w: invalid join kind %d", ErrMalformedJoin, uint(j.Kind))
	}
	if j.Table == "" {
		return Fragment{}, fmt.Errorf("%w: join table name is empty", ErrMalformedJoin)
	}
	head := j.Kind.String() + " JOIN " + j.Table
	if len(j.On) == 0 {
		if j.Kind == CrossJoin {
			return F(head), nil
		}
		return Fragment{}, fmt.Errorf("%w: %s requires at least one ON condition", ErrMalformedJoin, head)
	}
	conds := make([]string, 0, len(j.On))
	for _, pair := range j.On {
		if pair[0] == "" || pair[1] == "" {
			return Fragment{}, fmt.Errorf("%w: empty column in ON condition of %s", ErrMalformedJoin, head)
		}
		conds = append(conds, pair[0]+" = "+pair[1])
	}
	return F(head + " ON (" + strings.Join(conds, " AND ") + ")"), nil
}

// Joins renders joins in order, separated by a single space.
func Joins(joins []JoinClause) (Fragment, error) {
	fragments := make([]Fragment, 0, len(joins))
	for _, j := range joins {
		f, err := j.Build()
		if err != nil {
			return Fragment{}, err
		}
		fragments = append(fragments, f)
	}
	return Join(" ", fragments...), nil
}
