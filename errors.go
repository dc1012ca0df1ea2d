package sqlq

import (
	"errors"

	"github.com/qjebbs/go-sqlq/internal/clauses"
)

var (
	// ErrMissingFields is returned when an insert or update statement
	// has no fields and values to write.
	ErrMissingFields = errors.New("missing fields")

	// ErrUnsupported is returned by BuildContext when the statement uses
	// a form the dialect does not support, e.g. UPDATE ... JOIN on PostgreSQL.
	ErrUnsupported = errors.New("unsupported by dialect")

	// ErrMalformedCondition is returned for condition keys or values
	// that cannot be rendered unambiguously, e.g. an empty key.
	ErrMalformedCondition = clauses.ErrMalformedCondition

	// ErrMalformedJoin is returned for joins that cannot be rendered.
	ErrMalformedJoin = clauses.ErrMalformedJoin

	// ErrInvalidLimit is returned for negative LIMIT or OFFSET values.
	ErrInvalidLimit = clauses.ErrInvalidLimit

	// ErrInvalidOrder is returned for an unknown sort order passed to OrderBy.
	ErrInvalidOrder = clauses.ErrInvalidOrder
)
