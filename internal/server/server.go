// Package server wires configuration, storage, services, middleware
// and routes into a runnable HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ryukh1003/blog/internal/config"
	"github.com/ryukh1003/blog/internal/server/auth"
	"github.com/ryukh1003/blog/internal/server/engagement"
	"github.com/ryukh1003/blog/internal/server/feed"
	"github.com/ryukh1003/blog/internal/server/handlers"
	"github.com/ryukh1003/blog/internal/server/middleware"
	"github.com/ryukh1003/blog/internal/server/storage/sqlite"
	"github.com/ryukh1003/blog/internal/server/token"
)

const shutdownTimeout = 10 * time.Second

// App holds the assembled server and its owned resources.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	storage *sqlite.Storage
	server  *http.Server
}

// NewApp constructs the full server: storage is opened and migrated
// here, services are injected explicitly, and the store connection is
// owned by the App until Close. A missing signing secret fails here,
// before anything listens.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := newLogger(cfg.LogLevel)

	codec, err := token.NewCodec(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("token codec init: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("storage init: %w", err)
	}

	creds := auth.NewService(logger, store)
	toggle := engagement.NewService(logger, store)
	feedSvc := feed.NewService(logger, store)

	authHandler := handlers.NewAuthHandler(logger, creds, codec)
	postHandler := handlers.NewPostHandler(logger, store, store, store, feedSvc)
	engagementHandler := handlers.NewEngagementHandler(logger, toggle)
	commentHandler := handlers.NewCommentHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store.DB())

	authLimiter := middleware.RateLimitMiddleware(cfg.AuthRate, cfg.AuthWindow, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", postHandler.Index)
	mux.HandleFunc("GET /getPosts", postHandler.GetPosts)
	mux.HandleFunc("POST /write", postHandler.Write)
	mux.HandleFunc("GET /detail/{id}", postHandler.Detail)
	mux.HandleFunc("POST /edit", postHandler.Edit)
	mux.HandleFunc("POST /delete/{id}", postHandler.Delete)
	mux.HandleFunc("GET /personal/{userid}", postHandler.Personal)
	mux.HandleFunc("POST /comment/{id}", commentHandler.Comment)
	mux.HandleFunc("POST /like/{id}", engagementHandler.Like)
	mux.Handle("POST /signup", authLimiter(http.HandlerFunc(authHandler.Signup)))
	mux.Handle("POST /login", authLimiter(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET /logout", authHandler.Logout)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Session resolution runs innermost so every handler sees the
	// auth context; recovery runs outermost so nothing escapes it.
	var handler http.Handler = mux
	handler = middleware.SessionMiddleware(logger, codec, creds)(handler)
	handler = middleware.TimeoutMiddleware(cfg.StoreTimeout)(handler)
	handler = middleware.LoggingMiddleware(logger)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &App{
		cfg:     cfg,
		logger:  logger,
		storage: store,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Run serves HTTP until the context is canceled or SIGINT/SIGTERM
// arrives, then shuts down gracefully and closes the store.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errC := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.String("addr", a.cfg.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		a.storage.Close()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("graceful shutdown failed", slog.Any("error", err))
	}

	return a.storage.Close()
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
