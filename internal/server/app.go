// Package server initializes and runs the TaskKeeper server: it builds the
// storage backend, the auth primitives and the services, serves the HTTP API
// and shuts everything down on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/gin-gonic/gin"

	hs "github.com/dmitrijs2005/taskkeeper/internal/server/http"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	manager  repomanager.RepositoryManager
	denylist *auth.Denylist
	server   *hs.HTTPServer
}

// newPostgresManager is a seam for tests.
var newPostgresManager = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
	return repomanager.NewPostgresRepositoryManager(ctx, dsn)
}

// NewApp wires every component from cfg. Any failure here is a startup
// failure: the caller is expected to exit.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.New(cfg.LogFormat, os.Stdout)
	gin.SetMode(gin.ReleaseMode)

	hasher, err := auth.NewPasswordHasher(cfg.PasswordHashAlgorithm, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher error: %w", err)
	}
	tokens := auth.NewTokenManager([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)

	manager, err := newRepositoryManager(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{config: cfg, logger: logger, manager: manager}

	// The guard and the service take interfaces; a nil *Denylist must not
	// leak into them as a non-nil interface value.
	var (
		revoker services.Revoker
		opts    = hs.Options{AllowedOrigins: cfg.AllowedOrigins}
	)
	if cfg.TokenRevocation {
		dl, err := auth.NewDenylist(ctx, cfg.AccessTokenValidityDuration)
		if err != nil {
			manager.Close()
			return nil, err
		}
		app.denylist = dl
		revoker = dl
		opts.Revoked = dl
	}

	us := services.NewUserService(manager.Users(), hasher, tokens, revoker)
	ts := services.NewTaskService(manager.Tasks())
	app.server = hs.NewHTTPServer(cfg.EndpointAddrHTTP, logger, us, ts, tokens, opts)

	logger.Info(ctx, "App initialized",
		"storage", cfg.StorageType,
		"password_hash", cfg.PasswordHashAlgorithm,
		"token_validity", cfg.AccessTokenValidityDuration.String(),
		"token_revocation", cfg.TokenRevocation,
	)
	return app, nil
}

func newRepositoryManager(ctx context.Context, cfg *config.Config) (repomanager.RepositoryManager, error) {
	if cfg.StorageType == config.StorageMemory {
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	m, err := newPostgresManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := m.RunMigrations(ctx); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", sig.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled or a signal arrives, then releases the
// storage and the revocation cache.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(ctx, cancelFunc)

	err := app.server.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "HTTP server error", "error", err)
	}

	app.close(ctx)
	return err
}

func (app *App) close(ctx context.Context) {
	if app.denylist != nil {
		if err := app.denylist.Close(); err != nil {
			app.logger.Warn(ctx, "denylist close error", "error", err)
		}
	}
	if err := app.manager.Close(); err != nil {
		app.logger.Warn(ctx, "storage close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
