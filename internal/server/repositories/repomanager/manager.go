package repomanager

import (
	"context"
	"database/sql"

	"github.com/clientdesk/clientdesk/internal/dbx"
	"github.com/clientdesk/clientdesk/internal/server/repositories/clients"
	"github.com/clientdesk/clientdesk/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Clients(db dbx.DBTX) clients.Repository
}
