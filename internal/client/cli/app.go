package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/clientdesk/clientdesk/internal/client/clients"
	"github.com/clientdesk/clientdesk/internal/client/config"
	"github.com/clientdesk/clientdesk/internal/client/gateway"
	"github.com/clientdesk/clientdesk/internal/client/repositories/metadata"
	"github.com/clientdesk/clientdesk/internal/client/session"
	"github.com/clientdesk/clientdesk/internal/client/storage"
	"github.com/clientdesk/clientdesk/internal/client/workflow"
)

// App wires the CLI together: configuration, the local token store, the HTTP
// gateway, and the screen workflows. It also acts as the workflow.Confirmer
// for destructive actions, prompting the user on the terminal.
type App struct {
	config   *config.Config
	db       *sql.DB
	session  *session.Manager
	list     *workflow.ListWorkflow
	create   *workflow.CreateClientWorkflow
	register *workflow.RegisterUserWorkflow
	reader   *bufio.Reader

	// createDraft keeps the last submitted create-form values so a failed
	// submission can be retried without retyping.
	createDraft workflow.Draft
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	meta := metadata.NewSQLiteRepository(db)
	api := gateway.New(c.ServerBaseURL, session.Tokens(meta), c.RequestTimeout)
	svc := clients.NewService(api)

	app := &App{
		config:  c,
		db:      db,
		session: session.NewManager(api, meta),
		reader:  bufio.NewReader(os.Stdin),
	}
	app.list = workflow.NewListWorkflow(svc, app)
	app.create = workflow.NewCreateClientWorkflow(svc)
	app.register = workflow.NewRegisterUserWorkflow(svc)

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	printlnFn("Welcome to ClientDesk CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn(context.Background())
}

// Confirm implements workflow.Confirmer by asking a yes/no question on the
// terminal. Anything other than "y" or "yes" counts as a refusal.
func (a *App) Confirm(prompt string) bool {
	answer, err := GetSimpleText(a.reader, prompt+" (y/n)", os.Stdout)
	if err != nil {
		return false
	}
	switch answer {
	case "y", "Y", "yes":
		return true
	}
	return false
}
