package clauses

import (
	"fmt"
	"strings"
)

// PrefixedList represents a SQL clause that consists of literal elements
// prefixed with a clause keyword, e.g., GROUP BY.
type PrefixedList struct {
	prefix    string
	separator string
}

// NewPrefixedList creates a new PrefixedList.
func NewPrefixedList(clause, separator string) *PrefixedList {
	return &PrefixedList{
		prefix:    clause,
		separator: separator,
	}
}

// Build renders the elements, empty when there are none.
func (b *PrefixedList) Build(elements []string) Fragment {
	if len(elements) == 0 {
		return Fragment{}
	}
	joined := strings.Join(elements, b.separator)
	if b.prefix == "" {
		return F(joined)
	}
	return F(b.prefix + " " + joined)
}

// Limit renders a LIMIT or OFFSET clause with a literal count.
func Limit(keyword string, n int64) (Fragment, error) {
	if n < 0 {
		return Fragment{}, fmt.Errorf("%w: negative %s %d", ErrInvalidLimit, keyword, n)
	}
	return F(fmt.Sprintf("%s %d", keyword, n)), nil
}
