// Package ledger stores the credit journal: one row per debit or refund,
// written in the same transaction as the balance change it records.
package ledger

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/versa/internal/dbx"
	"github.com/dmitrijs2005/versa/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, entry *models.CreditEntry) (*models.CreditEntry, error) {
	query :=
		`INSERT INTO credit_entries (account_id, post_id, kind, amount, balance_after)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`

	e := *entry
	err := r.db.QueryRowContext(ctx, query,
		e.AccountID, e.PostID, string(e.Kind), e.Amount, e.BalanceAfter).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &e, nil
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID string) ([]models.CreditEntry, error) {
	query :=
		`SELECT id, account_id, post_id, kind, amount, balance_after, created_at
		 FROM credit_entries
		 WHERE account_id = $1
		 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	res := make([]models.CreditEntry, 0)
	for rows.Next() {
		var (
			e    models.CreditEntry
			kind string
		)
		if err := rows.Scan(&e.ID, &e.AccountID, &e.PostID, &kind, &e.Amount, &e.BalanceAfter, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.Kind = models.CreditKind(kind)
		res = append(res, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return res, nil
}
