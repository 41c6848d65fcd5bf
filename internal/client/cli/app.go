package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	log         logging.Logger
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens local storage and builds the API client and auth store
// described by c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.StorageDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "dsn", c.StorageDSN, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, client.WithLogger(log))
	as := services.NewAuthService(apiClient, localstorage.NewSQLiteRepository(db), log)

	return &App{
		config:      c,
		authService: as,
		log:         log,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores the saved session and serves the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close(ctx)

	unsubscribe := a.authService.Subscribe(func(s services.State) {
		a.log.Debug(ctx, "auth state changed",
			"authenticated", s.IsAuthenticated(), "loading", s.Loading, "error", s.Error.String())
	})
	defer unsubscribe()

	if err := a.authService.Initialize(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	fmt.Fprintln(a.out, "Storefront CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

// Close releases the API client and the local database.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.authService != nil {
		errs = append(errs, a.authService.Close(ctx))
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if email := a.authService.User().Email(); email != "" {
		return fmt.Sprintf("(%s)", email)
	}
	return "(logged in)"
}
