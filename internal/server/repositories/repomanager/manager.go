package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/versa/internal/dbx"
	"github.com/dmitrijs2005/versa/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/versa/internal/server/repositories/ledger"
	"github.com/dmitrijs2005/versa/internal/server/repositories/posts"
)

// RepositoryManager hands out repositories bound to a DBTX, so the same
// repository works on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Posts(db dbx.DBTX) posts.Repository
	Ledger(db dbx.DBTX) ledger.Repository
}
