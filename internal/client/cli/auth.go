package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/versa/internal/client/client"
	"github.com/dmitrijs2005/versa/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errEmptyEmail = errors.New("email must not be empty")

// readCredentials prompts for email and password. The caller wipes the
// returned password.
func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	if email == "" {
		return "", nil, errEmptyEmail
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register creates an account and signs in with it.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	user, err := a.authService.Register(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome, %s! You have %d credits.\n", user.Email, user.Credits)
	return nil
}

// Login signs in with email and password. The token is kept in the local
// store so the next run starts signed in.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Signed in as %s (%d credits)\n", user.Email, user.Credits)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	user, err := a.authService.Me(ctx)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "%s\trole=%s\tcredits=%d\tid=%s\n", user.Email, user.Role, user.Credits, user.ID)
	return nil
}
