package sqlite

import (
	"database/sql"
	"fmt"

	"plant-care-management/internal/care/repository"
	"plant-care-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the care domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("care/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("care/repository/sqlite.%s", method)
}
