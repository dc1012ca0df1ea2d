package sqlq

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/internal/clauses"
	"github.com/qjebbs/go-sqlq/internal/util"
)

// maxGroupDepth bounds the nesting of condition groups, which also
// stops a group that contains itself.
const maxGroupDepth = 32

var errGroupDepth = fmt.Errorf("%w: conditions nested deeper than %d", ErrMalformedCondition, maxGroupDepth)

// Conditions is an ordered set of WHERE conditions, joined with AND.
//
// A key is either "<column>", rendered as "<column> = ?", or
// "<column> <operator>", rendered as "<column> <operator> ?":
//
//	sqlq.Cond("id", 1)           // id = ?
//	sqlq.Cond("id >", 25)        // id > ?
//	sqlq.Cond("name LIKE", "%a") // name LIKE ?
//
// A list value (any slice or array, except []byte) renders as IN:
//
//	sqlq.Cond("id", []int{1, 2, 3}) // id IN (?, ?, ?)
//
// A key starting with "OR", case-insensitively, whose value is another
// *Conditions renders the nested conditions as a parenthesized disjunction.
// Since keys are unique, use distinct keys like "OR1", "or_name" for
// several groups, or call Or():
//
//	sqlq.Cond(
//		"surname", "rogers",
//		"OR", sqlq.Cond("id", 1, "name", "dan"),
//	) // surname = ? AND (id = ? OR name = ?)
//
// Within any group, a key starting with "AND" whose value is a *Conditions
// opens a nested conjunction. A key like "Order_date" with a plain value is
// an ordinary column.
//
// Setting an existing key replaces its value but keeps its position.
type Conditions struct {
	m   util.OrderedMap[*condEntry]
	err error
}

type condEntry struct {
	column string
	op     string
	value  any
	sub    *Conditions
	conj   clauses.Conjunction
	err    error
}

// Cond returns new Conditions from key-value pairs:
//
//	sqlq.Cond("id", 1, "name LIKE", "%og%")
func Cond(pairs ...any) *Conditions {
	c := &Conditions{}
	if len(pairs)%2 != 0 {
		c.err = fmt.Errorf("%w: odd number of arguments (%d) to Cond", ErrMalformedCondition, len(pairs))
		return c
	}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			c.err = fmt.Errorf("%w: key #%d is %T, not string", ErrMalformedCondition, i/2, pairs[i])
			return c
		}
		c.Set(key, pairs[i+1])
	}
	return c
}

// Set sets a condition by key.
func (c *Conditions) Set(key string, value any) *Conditions {
	c.m.Set(key, newCondEntry(key, value))
	return c
}

// SetOp sets a condition with an explicit operator, which is
// needed for operators containing spaces:
//
//	c.SetOp("name", "NOT LIKE", "%og%") // name NOT LIKE ?
//	c.SetOp("id", "NOT IN", []int{1, 2}) // id NOT IN (?, ?)
//
// It's keyed as "<column> <op>".
func (c *Conditions) SetOp(column, op string, value any) *Conditions {
	e := &condEntry{column: column, op: op, value: value}
	if column == "" || op == "" {
		e.err = fmt.Errorf("%w: SetOp(%q, %q) requires both column and operator", ErrMalformedCondition, column, op)
	}
	c.m.Set(column+" "+op, e)
	return c
}

// Or appends a disjunction group under a generated key.
func (c *Conditions) Or(group *Conditions) *Conditions {
	return c.Set(c.freeKey("OR"), group)
}

// And appends a nested conjunction group under a generated key.
// It's useful inside an OR group.
func (c *Conditions) And(group *Conditions) *Conditions {
	return c.Set(c.freeKey("AND"), group)
}

// Merge sets every condition of other into c, in other's order.
// Nested groups are copied.
func (c *Conditions) Merge(other *Conditions) *Conditions {
	if other == nil {
		return c
	}
	c.mergeDepth(other, 0)
	return c
}

// mergeDepth copies the entries of other into c, nested groups included,
// so that later changes of other don't reach c.
func (c *Conditions) mergeDepth(other *Conditions, depth int) {
	if depth > maxGroupDepth {
		c.err = errGroupDepth
		return
	}
	other.m.Each(func(key string, e *condEntry) {
		if e.sub != nil {
			cp := *e
			cp.sub = &Conditions{}
			cp.sub.mergeDepth(e.sub, depth+1)
			e = &cp
		}
		c.m.Set(key, e)
	})
	if c.err == nil {
		c.err = other.err
	}
}

// Len returns the number of conditions.
func (c *Conditions) Len() int {
	if c == nil {
		return 0
	}
	return c.m.Len()
}

// Keys returns the condition keys in order.
func (c *Conditions) Keys() []string {
	if c == nil {
		return nil
	}
	return c.m.Keys()
}

func (c *Conditions) freeKey(prefix string) string {
	for i := c.Len(); ; i++ {
		key := fmt.Sprintf("%s#%d", prefix, i)
		if _, ok := c.m.Get(key); !ok {
			return key
		}
	}
}

// assign merges other into a copy of c, or replaces it when override is set.
func (c *Conditions) assign(other *Conditions, override bool) *Conditions {
	r := &Conditions{}
	if !override {
		r.Merge(c)
	}
	return r.Merge(other)
}

func newCondEntry(key string, value any) *condEntry {
	var sub *Conditions
	switch v := value.(type) {
	case *Conditions:
		if v == nil {
			return &condEntry{err: fmt.Errorf("%w: nil conditions under key %q", ErrMalformedCondition, key)}
		}
		sub = v
	case Conditions:
		sub = &v
	}
	if sub != nil {
		conj, ok := clauses.GroupConjunction(key)
		if !ok {
			return &condEntry{err: fmt.Errorf(
				"%w: nested conditions under key %q, which starts with neither OR nor AND",
				ErrMalformedCondition, key,
			)}
		}
		return &condEntry{sub: sub, conj: conj}
	}
	column, op, err := clauses.ParseKey(key)
	return &condEntry{column: column, op: op, value: value, err: err}
}

// group converts c into the renderable form.
func (c *Conditions) group(conj clauses.Conjunction, depth int) (*clauses.Group, error) {
	if depth > maxGroupDepth {
		return nil, errGroupDepth
	}
	if c.err != nil {
		return nil, c.err
	}
	g := &clauses.Group{Conj: conj}
	var err error
	c.m.Each(func(_ string, e *condEntry) {
		if err != nil {
			return
		}
		item := clauses.Condition{
			Column: e.column,
			Op:     e.op,
			Value:  e.value,
			Err:    e.err,
		}
		if e.sub != nil {
			item.Group, err = e.sub.group(e.conj, depth+1)
		}
		g.Items = append(g.Items, item)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// buildWhere renders the WHERE clause, empty for no conditions.
func buildWhere(c *Conditions) (clauses.Fragment, error) {
	if c.Len() == 0 {
		if c != nil && c.err != nil {
			return clauses.Fragment{}, c.err
		}
		return clauses.Fragment{}, nil
	}
	g, err := c.group(clauses.And, 0)
	if err != nil {
		return clauses.Fragment{}, err
	}
	return clauses.Where(g)
}
