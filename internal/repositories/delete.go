package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// deleteByID deletes one row of table by primary key. Deleting a missing id affects zero
// rows and is not an error. table is always a package constant, never user input.
func deleteByID(ctx context.Context, db sqlx.ExecerContext, table string, id int64) (int64, error) {
	query := `DELETE FROM ` + table + ` WHERE id = $1`
	args := []any{id}

	res, err := db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}
