// Command admin creates an administrator account directly in the database.
//
//	admin -email root@example.com
//
// The password is prompted for unless -password is given. Database and
// signing settings are read the same way the server reads them.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/flagx"
	"github.com/dmitrijs2005/versa/internal/logging"
	"github.com/dmitrijs2005/versa/internal/server"
	"github.com/dmitrijs2005/versa/internal/server/auth"
	"github.com/dmitrijs2005/versa/internal/server/config"
	"github.com/dmitrijs2005/versa/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/versa/internal/server/services"
	"golang.org/x/term"
)

var errNoEmail = errors.New("-email is required")

func parseArgs(args []string) (email, password string) {
	fs := flag.NewFlagSet("admin", flag.ExitOnError)
	fs.StringVar(&email, "email", "", "administrator email")
	fs.StringVar(&password, "password", "", "administrator password (prompted if empty)")
	_ = fs.Parse(flagx.FilterArgs(args, "email", "password"))
	return email, password
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// admin bundles what run needs from the outside world.
type admin struct {
	args     []string
	out      io.Writer
	logOut   io.Writer
	config   func() *config.Config
	password func() (string, error)
	openDB   func(ctx context.Context, dsn string, m repomanager.RepositoryManager) (*sql.DB, error)
}

func run(ctx context.Context, a admin) error {
	email, password := parseArgs(a.args)
	if email == "" {
		return errNoEmail
	}

	cfg := a.config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if password == "" {
		var err error
		if password, err = a.password(); err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
	}
	if len(password) < services.MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", services.MinPasswordLen)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, a.logOut)

	tokens, err := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	if err != nil {
		return err
	}

	m := repomanager.NewPostgresRepositoryManager()
	db, err := a.openDB(ctx, cfg.DatabaseDSN, m)
	if err != nil {
		return err
	}
	defer db.Close()

	account, err := services.NewAccountService(db, m, tokens, cfg, logger).CreateAdmin(ctx, email, password)
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}

	fmt.Fprintf(a.out, "admin %s created (id=%s)\n", account.Email, account.ID)
	return nil
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := run(ctx, admin{
		args:     os.Args[1:],
		out:      os.Stdout,
		logOut:   os.Stderr,
		config:   config.LoadConfig,
		password: readPassword,
		openDB:   server.OpenDB,
	})
	if err != nil {
		cancel()
		log.Fatal(err)
	}
}
