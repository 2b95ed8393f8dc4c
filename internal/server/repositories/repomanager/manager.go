package repomanager

import (
	"context"
	"database/sql"

	"github.com/mealsnap/mealsnap/internal/dbx"
	"github.com/mealsnap/mealsnap/internal/server/repositories/meals"
	"github.com/mealsnap/mealsnap/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code against either the pool or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Meals(db dbx.DBTX) meals.Repository
}
