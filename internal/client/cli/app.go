package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/akazakov/jobtrack/internal/client/client"
	"github.com/akazakov/jobtrack/internal/client/config"
	"github.com/akazakov/jobtrack/internal/client/models"
	"github.com/akazakov/jobtrack/internal/client/services"
	"github.com/akazakov/jobtrack/internal/client/session"
	"github.com/akazakov/jobtrack/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It holds the wired services, the
// current session (nil when logged out), and the jobs list view.
type App struct {
	config   *config.Config
	auth     services.AuthService
	jobs     services.JobService
	session  *models.Session
	listView *ListView
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
}

// NewApp opens the local state database and wires the services against
// the configured record store.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenStore(ctx, c.StorePath)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	sessions := session.NewManager(db)
	apiClient := client.NewRESTClient(c.APIBaseURL, c.RequestTimeout, log)

	app := &App{
		config: c,
		auth:   services.NewAuthService(apiClient, sessions, log),
		jobs:   services.NewJobService(apiClient, sessions, log),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}
	app.listView = NewListView(app.jobs.List)
	return app, nil
}

// Run resumes a stored session when one is still valid, then blocks in
// the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if sess, err := a.auth.Resume(ctx); err == nil && sess != nil {
		a.session = sess
		fmt.Fprintf(a.out, "Welcome back, %s\n", sess.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return "guest"
	}
	return a.session.Username
}
