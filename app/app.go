package app

import (
	"context"

	"log/slog"

	"github.com/aurelia-jewels/reports-manager/config"
	httpapi "github.com/aurelia-jewels/reports-manager/internal/api/http"
	"github.com/aurelia-jewels/reports-manager/internal/apisrv/admin"
	"github.com/aurelia-jewels/reports-manager/internal/apisrv/auth"
	"github.com/aurelia-jewels/reports-manager/internal/backend"
	"github.com/aurelia-jewels/reports-manager/internal/dependency"
	"github.com/aurelia-jewels/reports-manager/internal/reportsnapshot"
	"github.com/aurelia-jewels/reports-manager/internal/session"
	"github.com/aurelia-jewels/reports-manager/internal/store"
)

// App is the main application
type App struct {
	hs       *httpapi.Server
	db       dependency.Repository
	snapshot *reportsnapshot.Worker
	c        *config.Config
	done     chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting reports manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	ses := session.New(a.c.BackendToken)
	source := backend.New(&a.c.Backend, ses)

	authS, err := auth.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create new auth server",
			slog.String("err", err.Error()),
		)
		return err
	}

	adminS := admin.New(source, a.db.Snapshots())

	a.snapshot = reportsnapshot.New(&a.c.Snapshot, source, a.db.Snapshots())
	if err := a.snapshot.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start snapshot worker",
			slog.String("err", err.Error()),
		)
		return err
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err := a.hs.Start(ctx, adminS, authS); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.snapshot != nil {
		_ = a.snapshot.Stop()
	}
	if a.hs != nil {
		_ = a.hs.Stop(ctx)
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
