package clauses

import (
	"fmt"
	"strings"

	"github.com/qjebbs/go-sqlq/internal/util"
)

// Conjunction joins the conditions of a Group.
type Conjunction string

// conjunctions
const (
	And Conjunction = "AND"
	Or  Conjunction = "OR"
)

// Condition is a parsed condition, either a single comparison
// or a nested group.
type Condition struct {
	Column string
	Op     string // empty for equality
	Value  any
	Group  *Group
	Err    error // parse error, reported at render time
}

// Group is a list of conditions joined with the same conjunction.
type Group struct {
	Conj  Conjunction
	Items []Condition
}

// ParseKey splits a condition key into its column and operator.
//
//	"id"        -> ("id", "")
//	"id >"      -> ("id", ">")
//	"name LIKE" -> ("name", "LIKE")
func ParseKey(key string) (column, op string, err error) {
	if key == "" {
		return "", "", fmt.Errorf("%w: empty key", ErrMalformedCondition)
	}
	if strings.TrimSpace(key) != key {
		return "", "", fmt.Errorf("%w: key %q has surrounding spaces", ErrMalformedCondition, key)
	}
	column, op, found := strings.Cut(key, " ")
	if !found {
		return key, "", nil
	}
	if op == "" || strings.Contains(op, " ") {
		return "", "", fmt.Errorf("%w: key %q must be '<column>' or '<column> <operator>'", ErrMalformedCondition, key)
	}
	return column, op, nil
}

// GroupConjunction reports which conjunction a key opens when its
// value is a nested group. Keys starting with "OR" open an OR group,
// keys starting with "AND" an AND group, case-insensitively.
func GroupConjunction(key string) (Conjunction, bool) {
	upper := strings.ToUpper(key)
	switch {
	case strings.HasPrefix(upper, string(Or)):
		return Or, true
	case strings.HasPrefix(upper, string(And)):
		return And, true
	}
	return "", false
}

// Where renders the top level group as a WHERE clause. The caller
// omits the clause for an empty group.
func Where(g *Group) (Fragment, error) {
	f, err := renderItems(g)
	if err != nil {
		return Fragment{}, err
	}
	return Prefix("WHERE", f), nil
}

func renderItems(g *Group) (Fragment, error) {
	if g == nil || len(g.Items) == 0 {
		return Fragment{}, fmt.Errorf("%w: empty condition group", ErrMalformedCondition)
	}
	fragments := make([]Fragment, 0, len(g.Items))
	for _, c := range g.Items {
		f, err := renderCondition(c)
		if err != nil {
			return Fragment{}, err
		}
		fragments = append(fragments, f)
	}
	return Join(" "+string(g.Conj)+" ", fragments...), nil
}

func renderCondition(c Condition) (Fragment, error) {
	if c.Err != nil {
		return Fragment{}, c.Err
	}
	if c.Group != nil {
		f, err := renderItems(c.Group)
		if err != nil {
			return Fragment{}, err
		}
		return Wrap(f), nil
	}
	if list, ok := util.ListValues(c.Value); ok {
		return renderIn(c, list)
	}
	switch strings.ToUpper(c.Op) {
	case "IN", "NOT IN":
		return Fragment{}, fmt.Errorf("%w: operator %q of %q requires a list", ErrMalformedCondition, c.Op, c.Column)
	}
	if c.Op == "" {
		return F(c.Column+" = ?", c.Value), nil
	}
	return F(c.Column+" "+c.Op+" ?", c.Value), nil
}

func renderIn(c Condition, list []any) (Fragment, error) {
	op := strings.ToUpper(c.Op)
	switch op {
	case "":
		op = "IN"
	case "IN", "NOT IN":
	default:
		return Fragment{}, fmt.Errorf("%w: operator %q of %q does not accept a list", ErrMalformedCondition, c.Op, c.Column)
	}
	if len(list) == 0 {
		return Fragment{}, fmt.Errorf("%w: empty list for %q", ErrMalformedCondition, c.Column)
	}
	placeholders := strings.Join(util.Repeat("?", len(list)), ", ")
	return F(fmt.Sprintf("%s %s (%s)", c.Column, op, placeholders), list...), nil
}
