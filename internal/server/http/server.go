// Package http exposes the TaskKeeper JSON API over gin.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// TokenVerifier is satisfied by *auth.TokenManager.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RevocationChecker is satisfied by *auth.Denylist.
type RevocationChecker interface {
	IsRevoked(tokenID string) bool
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	users    *services.UserService
	tasks    *services.TaskService
	verifier TokenVerifier
	revoked  RevocationChecker
	engine   *gin.Engine
}

// Options carries the optional parts of the server setup.
type Options struct {
	// AllowedOrigins restricts CORS; empty allows any origin.
	AllowedOrigins []string
	// Revoked, when set, lets the session guard reject logged-out tokens.
	Revoked RevocationChecker
}

func NewHTTPServer(address string, l logging.Logger, us *services.UserService, ts *services.TaskService,
	verifier TokenVerifier, opts Options) *HTTPServer {

	s := &HTTPServer{
		address:  address,
		logger:   l.With("module", "http_server"),
		users:    us,
		tasks:    ts,
		verifier: verifier,
		revoked:  opts.Revoked,
	}
	s.engine = s.routes(opts.AllowedOrigins)
	return s
}

// Handler returns the configured router, ready to be served or tested.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) routes(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.Use(cors.New(corsConfig(allowedOrigins)))

	r.GET("/ping", s.ping)
	r.POST("/register", s.register)
	r.POST("/login", s.login)

	authorized := r.Group("/", s.RequireAuth())
	authorized.POST("/logout", s.logout)
	authorized.GET("/tasks", s.listTasks)
	authorized.POST("/tasks", s.createTask)
	authorized.PUT("/tasks/:id", s.completeTask)
	authorized.DELETE("/tasks/:id", s.deleteTask)

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
