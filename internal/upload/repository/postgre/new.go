package postgre

import (
	"database/sql"

	"partner-dashboard-srv/internal/upload/repository"
	"partner-dashboard-srv/pkg/log"

	"github.com/lib/pq"
)

const tableName = "upload_history"

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	table string
}

// New creates the upload history repository. An empty schema means public.
func New(db *sql.DB, schema string, l log.Logger) repository.HistoryRepository {
	return &implRepository{
		db:    db,
		l:     l,
		table: qualifiedTable(schema),
	}
}

func qualifiedTable(schema string) string {
	if schema == "" {
		schema = "public"
	}
	return pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(tableName)
}
