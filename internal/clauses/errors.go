package clauses

import "errors"

var (
	// ErrMalformedCondition is returned for condition keys or values
	// that cannot be rendered unambiguously.
	ErrMalformedCondition = errors.New("malformed condition")
	// ErrMalformedJoin is returned for joins that cannot be rendered.
	ErrMalformedJoin = errors.New("malformed join")
	// ErrInvalidLimit is returned for negative LIMIT or OFFSET values.
	ErrInvalidLimit = errors.New("invalid limit")
	// ErrInvalidOrder is returned for an unknown sort order.
	ErrInvalidOrder = errors.New("invalid order")
)
