// Package services contains server-side business logic: accounts and
// sign-in, request authorization, and the credit-metered post lifecycle.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/cryptox"
	"github.com/dmitrijs2005/versa/internal/logging"
	"github.com/dmitrijs2005/versa/internal/server/config"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/dmitrijs2005/versa/internal/server/repositories/repomanager"
)

// TokenIssuer mints session tokens for an account id.
type TokenIssuer interface {
	Issue(accountID string) (string, error)
}

// AuthResult is returned by every successful sign-in path.
type AuthResult struct {
	Token   string
	Account *models.Account
}

type AccountService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	tokens         TokenIssuer
	log            logging.Logger
	defaultCredits int
	hashParams     cryptox.Params
	dummyHash      string
}

type AccountOption func(*AccountService)

// WithPasswordParams overrides the argon2id cost parameters.
func WithPasswordParams(p cryptox.Params) AccountOption {
	return func(s *AccountService) { s.hashParams = p }
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer, cfg *config.Config, log logging.Logger, opts ...AccountOption) *AccountService {
	s := &AccountService{
		db:             db,
		repomanager:    m,
		tokens:         tokens,
		log:            log.With("module", "accounts"),
		defaultCredits: cfg.DefaultCredits,
		hashParams:     cryptox.DefaultParams,
	}
	for _, o := range opts {
		o(s)
	}
	s.dummyHash = cryptox.HashPassword(common.GenerateRandByteArray(16), s.hashParams)
	return s
}

// NormalizeEmail trims and lower-cases an address; all lookups use this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a password account with the default balance and signs it in.
func (s *AccountService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	return s.create(ctx, email, password, models.RoleUser)
}

// CreateAdmin creates an administrator with a password. It is used by the
// bootstrap tool, never by the public API.
func (s *AccountService) CreateAdmin(ctx context.Context, email, password string) (*models.Account, error) {
	res, err := s.create(ctx, email, password, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return res.Account, nil
}

// MinPasswordLen is the shortest password accepted for a new account,
// whichever surface creates it.
const MinPasswordLen = 8

func (s *AccountService) create(ctx context.Context, email, password string, role models.Role) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || len(password) < MinPasswordLen {
		return nil, common.ErrInvalidInput
	}

	hash := cryptox.HashPassword([]byte(password), s.hashParams)

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.Create(ctx, &models.Account{
		Email:        email,
		PasswordHash: &hash,
		Credits:      s.defaultCredits,
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.log.Info(ctx, "account registered", "account_id", account.ID, "role", account.Role)

	return s.signIn(account)
}

// Login checks email and password. Every failure is reported as
// common.ErrInvalidCredentials; the actual reason is only logged.
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// same work as a real check so response time does not reveal the email
			_, _ = cryptox.VerifyPassword(s.dummyHash, []byte(password))
			s.log.Warn(ctx, "login failed", "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}

	if account.PasswordHash == nil {
		_, _ = cryptox.VerifyPassword(s.dummyHash, []byte(password))
		s.log.Warn(ctx, "login failed", "reason", "no password set", "account_id", account.ID)
		return nil, common.ErrInvalidCredentials
	}

	ok, err := cryptox.VerifyPassword(*account.PasswordHash, []byte(password))
	if err != nil {
		s.log.Error(ctx, "stored password hash unreadable", "account_id", account.ID, "error", err)
		return nil, common.ErrInvalidCredentials
	}
	if !ok {
		s.log.Warn(ctx, "login failed", "reason", "wrong password", "account_id", account.ID)
		return nil, common.ErrInvalidCredentials
	}

	return s.signIn(account)
}

// LoginExternal signs in the owner of an email verified by an identity
// provider, creating the account on first use. The bool reports creation.
func (s *AccountService) LoginExternal(ctx context.Context, email string) (*AuthResult, bool, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, false, common.ErrUpstreamIdentity
	}

	repo := s.repomanager.Accounts(s.db)
	account, created, err := repo.GetOrCreateByEmail(ctx, &models.Account{
		Email:   email,
		Credits: s.defaultCredits,
		Role:    models.RoleUser,
	})
	if err != nil {
		return nil, false, fmt.Errorf("error resolving external account: %w", err)
	}

	if created {
		s.log.Info(ctx, "account created from identity provider", "account_id", account.ID)
	}

	res, err := s.signIn(account)
	if err != nil {
		return nil, false, err
	}
	return res, created, nil
}

// Me returns the caller as resolved by Guard.Authenticate.
func (s *AccountService) Me(ctx context.Context, account *models.Account) (*models.Account, error) {
	if account == nil {
		return nil, common.ErrAccountNotFound
	}
	return account, nil
}

// Credits returns the caller's credit journal, oldest first.
func (s *AccountService) Credits(ctx context.Context, account *models.Account) ([]models.CreditEntry, error) {
	if account == nil {
		return nil, common.ErrAccountNotFound
	}
	entries, err := s.repomanager.Ledger(s.db).ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing credits: %w", err)
	}
	return entries, nil
}

func (s *AccountService) signIn(account *models.Account) (*AuthResult, error) {
	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &AuthResult{Token: token, Account: account}, nil
}
