package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/geoattend/internal/dbx"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/employees"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/locations"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/sessions"
)

// RepositoryManager vends repositories bound to either the pool or an open
// transaction, so services choose the scope of each unit of work.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Employees(db dbx.DBTX) employees.Repository
	Locations(db dbx.DBTX) locations.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
