// Package server initializes and runs the versa server: it opens the
// database, applies migrations, wires the services and serves the HTTP and
// gRPC transports until the process is told to stop.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/versa/internal/logging"
	"github.com/dmitrijs2005/versa/internal/server/auth"
	"github.com/dmitrijs2005/versa/internal/server/config"
	"github.com/dmitrijs2005/versa/internal/server/httpapi"
	"github.com/dmitrijs2005/versa/internal/server/identity"
	"github.com/dmitrijs2005/versa/internal/server/observability"
	"github.com/dmitrijs2005/versa/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/versa/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/versa/internal/server/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *http.Server
	grpcServer *gs.GRPCServer
}

// OpenDB connects to PostgreSQL and applies pending migrations.
func OpenDB(ctx context.Context, dsn string, m repomanager.RepositoryManager) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	m := repomanager.NewPostgresRepositoryManager()

	db, err := OpenDB(ctx, c.DatabaseDSN, m)
	if err != nil {
		return nil, err
	}

	app, err := newApp(c, db, m, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// newApp wires services and transports on top of an open database.
func newApp(c *config.Config, db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) (*App, error) {
	tokens, err := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	metrics := observability.NewMetrics()

	accountService := services.NewAccountService(db, m, tokens, c, logger)
	guard := services.NewGuard(db, m, tokens)
	postService := services.NewPostService(db, m, guard, metrics, logger)

	var provider identity.Provider
	if c.GoogleEnabled() {
		provider = identity.NewGoogleProvider(c.GoogleClientID, c.GoogleClientSecret, c.GoogleRedirectURL)
	} else {
		logger.Info(context.Background(), "Google sign-in disabled: client credentials not set")
	}

	api := httpapi.NewServer(accountService, postService, guard, provider, metrics, httpapi.Options{
		AllowedOrigins:      c.AllowedOrigins,
		DefaultPostCost:     c.DefaultPostCost,
		FrontendCallbackURL: c.FrontendCallbackURL,
		FrontendLoginURL:    c.FrontendLoginURL,
		Development:         c.Environment == config.EnvDevelopment,
	}, logger)

	httpServer := &http.Server{
		Addr:              c.EndpointAddrHTTP,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, accountService, postService, guard, metrics, c.DefaultPostCost)

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		httpServer: httpServer,
		grpcServer: grpcServer,
	}, nil
}

// Run serves both transports until ctx is cancelled, SIGINT/SIGTERM is
// received, or one of them fails. The database is closed on return.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting app...", "config", app.config.String())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info(ctx, "Starting HTTP server", "address", app.httpServer.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		app.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.httpServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		if err := app.grpcServer.Run(ctx); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}
