package ledger

import (
	"context"

	"github.com/dmitrijs2005/versa/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, entry *models.CreditEntry) (*models.CreditEntry, error)
	ListByAccount(ctx context.Context, accountID string) ([]models.CreditEntry, error)
}
