package sqlq_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/qjebbs/go-sqlq"
)

func TestDeleteBuilder(t *testing.T) {
	testCases := []struct {
		name      string
		b         *sqlq.DeleteBuilder
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "where merged",
			b: sqlq.NewDelete("sessions").
				WhereEquals("user_id", 1).
				Where(sqlq.Cond("expires_at <", "2024-01-01")),
			wantQuery: "DELETE FROM sessions WHERE user_id = ? AND expires_at < ?",
			wantArgs:  []any{1, "2024-01-01"},
		},
		{
			name: "where replaced",
			b: sqlq.NewDelete("sessions").
				WhereIn("id", []int{1, 2}).
				SetWhere(sqlq.Cond("id", 3)),
			wantQuery: "DELETE FROM sessions WHERE id = ?",
			wantArgs:  []any{3},
		},
		{
			name: "clause order",
			b: sqlq.NewDelete("logs").
				Limit(100).
				OrderBy(sqlq.OrderAsc, "created_at").
				Where(sqlq.Cond("level", "debug")).
				Join(sqlq.LeftJoin, "apps", sqlq.On("apps.id", "logs.app_id")),
			wantQuery: "DELETE FROM logs LEFT JOIN apps ON (apps.id = logs.app_id) WHERE level = ? ORDER BY created_at ASC LIMIT 100",
			wantArgs:  []any{"debug"},
		},
		{
			name: "order replaced, join replaced",
			b: sqlq.NewDelete("logs").
				OrderBy(sqlq.OrderAsc, "a").
				SetOrderBy(sqlq.OrderDesc, "b").
				Join(sqlq.InnerJoin, "x", sqlq.On("x.id", "logs.x_id")).
				SetJoin(sqlq.InnerJoin, "y", sqlq.On("y.id", "logs.y_id")),
			wantQuery: "DELETE FROM logs INNER JOIN y ON (y.id = logs.y_id) ORDER BY b DESC",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := tc.b.Build()
			if err != nil {
				t.Fatal(err)
			}
			if query != tc.wantQuery {
				t.Errorf("got query %q, want %q", query, tc.wantQuery)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("got args %#v, want %#v", args, tc.wantArgs)
			}
		})
	}
}

func TestDeleteBuilderNegativeLimit(t *testing.T) {
	_, err := sqlq.NewDelete("t").Limit(-1).SQL()
	if !errors.Is(err, sqlq.ErrInvalidLimit) {
		t.Errorf("got error %v, want %v", err, sqlq.ErrInvalidLimit)
	}
}
