package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/dbx"
	"github.com/dmitrijs2005/versa/internal/server/models"
)

const columns = `id, email, password_hash, credits, role, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanAccount(row interface{ Scan(...any) error }) (*models.Account, error) {
	var (
		a    models.Account
		hash sql.NullString
		role string
	)
	if err := row.Scan(&a.ID, &a.Email, &hash, &a.Credits, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if hash.Valid {
		a.PasswordHash = &hash.String
	}
	a.Role = models.Role(role)
	return &a, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// Create inserts a new account. A duplicate email yields common.ErrEmailTaken.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (email, password_hash, credits, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING ` + columns

	a, err := scanAccount(r.db.QueryRowContext(ctx, query,
		account.Email, nullable(account.PasswordHash), account.Credits, string(account.Role)))

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT ` + columns + ` FROM accounts
		 WHERE lower(email) = lower($1)`

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query :=
		`SELECT ` + columns + ` FROM accounts
		 WHERE id = $1`

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

// GetOrCreateByEmail inserts account unless one with the same email exists,
// and returns the stored row. The bool reports whether a row was inserted.
// Concurrent callers for the same email converge on a single row.
func (r *PostgresRepository) GetOrCreateByEmail(ctx context.Context, account *models.Account) (*models.Account, bool, error) {
	query :=
		`INSERT INTO accounts (email, password_hash, credits, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT DO NOTHING
		 RETURNING ` + columns

	a, err := scanAccount(r.db.QueryRowContext(ctx, query,
		account.Email, nullable(account.PasswordHash), account.Credits, string(account.Role)))

	switch {
	case err == nil:
		return a, true, nil
	case errors.Is(err, sql.ErrNoRows):
		existing, err := r.GetByEmail(ctx, account.Email)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	default:
		return nil, false, fmt.Errorf("db error: %w", err)
	}
}

// AdjustCredits adds delta (which may be negative) to the balance in a single
// conditional statement. A change that would make the balance negative
// touches nothing and returns common.ErrInsufficientCredits; an unknown id
// returns common.ErrorNotFound.
func (r *PostgresRepository) AdjustCredits(ctx context.Context, id string, delta int) (*models.Account, error) {
	query :=
		`UPDATE accounts SET credits = credits + $2, updated_at = now()
		 WHERE id = $1 AND credits + $2 >= 0
		 RETURNING ` + columns

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id, delta))
	if err == nil {
		return a, nil
	}

	if dbx.IsCheckViolation(err) {
		return nil, common.ErrInsufficientCredits
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM accounts WHERE id = $1`, id).Scan(&one)
	switch {
	case err == nil:
		return nil, common.ErrInsufficientCredits
	case errors.Is(err, sql.ErrNoRows):
		return nil, common.ErrorNotFound
	default:
		return nil, fmt.Errorf("db error: %w", err)
	}
}
