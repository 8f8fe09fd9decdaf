package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/dmitrijs2005/versa/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TokenVerifier returns the account id a valid token was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Guard resolves the caller behind an authorization header and decides
// what that caller may do.
type Guard struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenVerifier
}

func NewGuard(db *sql.DB, m repomanager.RepositoryManager, tokens TokenVerifier) *Guard {
	return &Guard{db: db, repomanager: m, tokens: tokens}
}

// Authenticate parses "Bearer <token>", verifies the token and loads the
// account it names.
func (g *Guard) Authenticate(ctx context.Context, header string) (*models.Account, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, common.ErrMissingToken
	}
	if !strings.HasPrefix(header, common.BearerPrefix) {
		return nil, common.ErrTokenInvalid
	}

	token := strings.TrimSpace(header[len(common.BearerPrefix):])
	if token == "" {
		return nil, common.ErrTokenInvalid
	}

	accountID, err := g.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	// a well-signed token for an id that cannot exist
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, common.ErrAccountNotFound
	}

	account, err := g.repomanager.Accounts(g.db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}

	return account, nil
}

// AuthorizePostMutation allows admins and the post's owner.
func (g *Guard) AuthorizePostMutation(account *models.Account, post *models.Post) error {
	if account == nil || post == nil {
		return common.ErrForbidden
	}
	if account.IsAdmin() || account.ID == post.OwnerID {
		return nil
	}
	return common.ErrForbidden
}

func (g *Guard) RequireAdmin(account *models.Account) error {
	if !account.IsAdmin() {
		return common.ErrForbidden
	}
	return nil
}
