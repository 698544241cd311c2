package sqlite

import (
	"database/sql"
	"fmt"

	"plant-care-management/internal/suggestion/repository"
	"plant-care-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the suggestion domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("suggestion/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("suggestion/repository/sqlite.%s", method)
}
