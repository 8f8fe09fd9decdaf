package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/dbx"
	"github.com/dmitrijs2005/versa/internal/server/models"
)

const columns = `id, owner_id, content, credits_used, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Content, &p.CreditsUsed, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`INSERT INTO posts (owner_id, content, credits_used)
		 VALUES ($1, $2, $3)
		 RETURNING ` + columns

	p, err := scanPost(r.db.QueryRowContext(ctx, query, post.OwnerID, post.Content, post.CreditsUsed))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query :=
		`SELECT ` + columns + ` FROM posts
		 WHERE id = $1`

	return r.one(ctx, query, id)
}

// UpdateContent replaces the content and refreshes updated_at.
// credits_used is never written after insert.
func (r *PostgresRepository) UpdateContent(ctx context.Context, id, content string) (*models.Post, error) {
	query :=
		`UPDATE posts SET content = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + columns

	return r.one(ctx, query, id, content)
}

// Delete removes the post and returns the deleted row, so the caller learns
// the owner and the amount to refund. Only one of several concurrent deletes
// receives the row; the rest get common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Post, error) {
	query :=
		`DELETE FROM posts
		 WHERE id = $1
		 RETURNING ` + columns

	return r.one(ctx, query, id)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	query :=
		`SELECT ` + columns + ` FROM posts
		 WHERE owner_id = $1
		 ORDER BY created_at DESC, id`

	return r.list(ctx, query, ownerID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	query :=
		`SELECT ` + columns + ` FROM posts
		 ORDER BY created_at DESC, id`

	return r.list(ctx, query)
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	res := make([]models.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		res = append(res, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return res, nil
}
