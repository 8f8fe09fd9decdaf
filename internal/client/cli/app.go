package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/versa/internal/client/client"
	"github.com/dmitrijs2005/versa/internal/client/config"
	"github.com/dmitrijs2005/versa/internal/client/services"
	"github.com/dmitrijs2005/versa/internal/filex"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	postService services.PostService
	user        *client.User
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error preparing database location: %w", err)
	}

	repos, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewVersaClient(c.ServerEndpointAddr)
	if err != nil {
		_ = repos.DB.Close()
		return nil, err
	}

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, repos.DB),
		postService: services.NewPostService(apiClient),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores a saved session if possible and blocks in the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	fmt.Fprintln(a.out, "Welcome to versa CLI (type 'help' for commands)")

	rctx, cancel := a.callCtx(ctx)
	user, err := a.authService.Restore(rctx)
	cancel()
	switch {
	case err == nil:
		a.user = user
		fmt.Fprintf(a.out, "Signed in as %s (%d credits)\n", user.Email, user.Credits)
	case errors.Is(err, client.ErrNotLoggedIn):
	default:
		fmt.Fprintf(a.out, "Could not restore session: %v\n", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %d)", a.user.Email, a.user.Credits)
}

// callCtx bounds a single server call by the configured timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
