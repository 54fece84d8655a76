package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/eaterapp/eaterauth/internal/authorize"
	"github.com/eaterapp/eaterauth/internal/config"
	"github.com/eaterapp/eaterauth/internal/credstore"
	"github.com/eaterapp/eaterauth/internal/demoauth"
	"github.com/eaterapp/eaterauth/internal/filex"
	"github.com/eaterapp/eaterauth/internal/logging"
	"github.com/eaterapp/eaterauth/internal/session"
)

// App wires the Eater client pieces together: the encrypted credential store,
// the session manager over it, the demo authenticator, and the request
// builder. It owns the interactive loop in Run.
type App struct {
	config     *config.Config
	sessions   *session.Manager
	authorizer *authorize.Builder
	db         *sql.DB
	reader     *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	for _, p := range []string{c.KeyFilePath, c.StoragePath} {
		if err := filex.EnsureParentDir(p); err != nil {
			return nil, err
		}
	}

	key, err := loadDeviceKey(c.KeyFilePath, c.Namespace)
	if err != nil {
		log.Printf("error loading device key: %s", err.Error())
		return nil, err
	}

	db, err := credstore.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	store, err := credstore.NewSQLiteStore(db, c.Namespace, key)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	auth := demoauth.New(key, c.TokenTTL)
	sessions := session.NewManager(store, auth, logger, c.MinSecretLength)

	return &App{
		config:     c,
		sessions:   sessions,
		authorizer: authorize.NewBuilder(sessions),
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	log.Println("Welcome to Eater CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated(context.Background())
}

// getStatus renders the prompt segment, e.g. "(demo)" when demo is signed in.
func (a *App) getStatus() string {
	s, err := a.sessions.CurrentSession(context.Background())
	if err != nil || s == nil {
		return ""
	}
	if s.DisplayName != "" {
		return fmt.Sprintf("(%s)", s.DisplayName)
	}
	return fmt.Sprintf("(%s)", s.UserID)
}
