// Package services contains application services for the versa CLI.
// This file defines the session service: register, login, logout and
// restoring a saved session from the local store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/versa/internal/client/client"
	"github.com/dmitrijs2005/versa/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/dbx"
)

const (
	keyToken = "token"
	keyEmail = "email"
)

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Register, Login: authenticate against the server and persist the token.
//   - Restore: load a saved token; a stale one is discarded.
//   - Logout: forget the token locally (tokens are stateless server-side).
//   - Me: current account view.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte) (*client.User, error)
	Login(ctx context.Context, email string, password []byte) (*client.User, error)
	Restore(ctx context.Context) (*client.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*client.User, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (a *authService) Register(ctx context.Context, email string, password []byte) (*client.User, error) {
	s, err := a.client.Register(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.saveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &s.User, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*client.User, error) {
	s, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.saveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &s.User, nil
}

// saveSession stores token and email in one transaction and arms the client.
func (a *authService) saveSession(ctx context.Context, s *client.Session) error {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)
		if err := repo.Set(ctx, keyToken, []byte(s.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyEmail, []byte(s.User.Email))
	})
	if err != nil {
		return err
	}
	a.client.SetToken(s.Token)
	return nil
}

// Restore re-arms the client with a saved token and checks it against the
// server. Rejected tokens are removed; ErrNotLoggedIn means no usable session.
func (a *authService) Restore(ctx context.Context) (*client.User, error) {
	token, err := a.getMetadataRepo(a.db).Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, client.ErrNotLoggedIn
	}

	a.client.SetToken(string(token))

	user, err := a.client.Me(ctx)
	if err != nil {
		if isAuthError(err) {
			_ = a.Logout(ctx)
			return nil, client.ErrNotLoggedIn
		}
		return nil, err
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	return a.getMetadataRepo(a.db).Clear(ctx)
}

func (a *authService) Me(ctx context.Context) (*client.User, error) {
	return a.client.Me(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func isAuthError(err error) bool {
	return errors.Is(err, common.ErrTokenExpired) ||
		errors.Is(err, common.ErrTokenInvalid) ||
		errors.Is(err, common.ErrMissingToken) ||
		errors.Is(err, common.ErrAccountNotFound)
}
