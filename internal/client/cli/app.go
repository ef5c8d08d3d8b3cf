package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/snsclone/internal/client/async"
	"github.com/dmitrijs2005/snsclone/internal/client/client"
	"github.com/dmitrijs2005/snsclone/internal/client/config"
	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/client/services"
	"github.com/dmitrijs2005/snsclone/internal/client/session"
	"github.com/dmitrijs2005/snsclone/internal/client/state"
	"github.com/dmitrijs2005/snsclone/internal/client/views"
	"github.com/dmitrijs2005/snsclone/internal/client/workflows"
	"github.com/dmitrijs2005/snsclone/internal/filex"
	"github.com/dmitrijs2005/snsclone/internal/logging"
)

// flowRunner is the workflow surface the commands drive. *workflows.Flows
// satisfies it; tests substitute a recorder.
type flowRunner interface {
	Boot(ctx context.Context) workflows.Report
	Login(ctx context.Context, creds models.Credentials) workflows.Report
	Register(ctx context.Context, creds models.Credentials) workflows.Report
	Logout(ctx context.Context) workflows.Report
	Refresh(ctx context.Context) workflows.Report
	UpdateProfile(ctx context.Context, img *models.Image) workflows.Report
	SubmitPost(ctx context.Context, p models.NewPost) workflows.Report
	SubmitComment(ctx context.Context, text string, postID int64) workflows.Report
	ToggleLike(ctx context.Context, postID int64) workflows.Report
}

// identity exposes the session details shown by "profile".
type identity interface {
	Email() string
}

type App struct {
	config    *config.Config
	flows     flowRunner
	authSlice *state.AuthSlice
	postSlice *state.PostSlice
	identity  identity
	logger    logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	closers   []func() error
}

// NewApp opens the local database and wires every layer of the client.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sess := session.New(db)
	api, err := client.NewHTTPClient(c.APIURL, sess, logger, client.WithTimeout(c.RequestTimeout))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	gateway := async.NewGateway(logger)
	authSlice, postSlice := state.NewAuthSlice(), state.NewPostSlice()
	as := services.NewAuthService(api, gateway, authSlice, sess)
	ps := services.NewPostService(api, gateway, postSlice)

	app := &App{
		config:    c,
		flows:     workflows.New(sess, as, ps, authSlice, postSlice, logger),
		authSlice: authSlice,
		postSlice: postSlice,
		identity:  sess,
		logger:    logger,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
	app.closers = append(app.closers, db.Close)
	if z, ok := logger.(*logging.ZapLogger); ok {
		app.closers = append(app.closers, z.Sync)
	}
	return app, nil
}

// Run restores the session and serves the REPL until the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	fmt.Fprintln(a.out, "Welcome to SNS clone CLI (type 'help' for commands)")
	a.printReport(a.flows.Boot(ctx))
	if a.authSlice.Snapshot().OpenSignIn {
		fmt.Fprintln(a.out, "Please login or register.")
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

func (a *App) close() {
	for _, fn := range a.closers {
		if err := fn(); err != nil {
			a.logger.Debug(context.Background(), "close failed", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return views.IsSignedIn(a.authSlice.Snapshot())
}

// status renders the prompt decoration: my nickname and a loading marker.
func (a *App) status() string {
	auth, posts := a.authSlice.Snapshot(), a.postSlice.Snapshot()

	parts := make([]string, 0, 2)
	if auth.MyProfile.NickName != "" {
		parts = append(parts, auth.MyProfile.NickName)
	}
	if auth.IsLoadingAuth || posts.IsLoadingPost {
		parts = append(parts, "(loading)")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
