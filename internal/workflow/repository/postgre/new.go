package postgre

import (
	"database/sql"

	"github.com/google/uuid"

	pkgLog "solosync/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a PostgreSQL-backed workflow repository.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

// op builds a log prefix for the given method name.
func (r *implRepository) op(method string) string {
	return "workflow.repository.postgre." + method
}

func newID() string {
	return uuid.NewString()
}

// paginate appends LIMIT/OFFSET placeholders starting at idx.
func paginate(query string, args []any, limit, offset int) (string, []any) {
	idx := len(args) + 1
	if limit > 0 {
		query += " LIMIT $" + itoa(idx)
		args = append(args, limit)
		idx++
	}
	if offset > 0 {
		query += " OFFSET $" + itoa(idx)
		args = append(args, offset)
	}
	return query, args
}
