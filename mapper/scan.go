package mapper

import (
	"context"
	"database/sql"
)

// scan queries the rows and scans each of them with fn.
func scan[T any](ctx context.Context, db QueryAble, query string, args []any, debugger *debugger, fn ScanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	debugger.onExec(err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		dest, fields := fn()
		err = scanRow(rows, fields...)
		if err != nil {
			debugger.onScan(err)
			return nil, err
		}
		results = append(results, dest)
	}
	if err := rows.Err(); err != nil {
		debugger.onScan(err)
		return nil, err
	}
	return results, nil
}

// scanRow scans a single row to dest, unlike rows.Scan(), it drops the extra columns.
func scanRow(rows *sql.Rows, dest ...any) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	nBlackholes := len(cols) - len(dest)
	bh := &blackhole{}
	for i := 0; i < nBlackholes; i++ {
		dest = append(dest, bh)
	}
	return rows.Scan(dest...)
}

type blackhole struct{}

func (b *blackhole) Scan(_ any) error { return nil }
