package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/appsdothingsiguess/portfoliosite/pkg/config"
	"github.com/appsdothingsiguess/portfoliosite/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// Server serves the static build over HTTP.
type Server struct {
	cfg    config.ServerConfig
	assets *router.Handler
	mux    chi.Router
	logger *zap.Logger
}

// New checks the serving root and wires the router. Nothing is bound yet.
func New(cfg config.ServerConfig, logger *zap.Logger) (s *Server, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var assets *router.Handler
	assets, err = router.New(router.Options{
		Root:          cfg.Root,
		EntryDocument: cfg.EntryDocument,
		MaxAge:        cfg.CacheMaxAge,
	}, logger.Named("router"))
	if err != nil {
		return s, err
	}

	s = &Server{
		cfg:    cfg,
		assets: assets,
		logger: logger,
	}
	s.mux = s.buildRouter()
	return s, err
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// buildRouter constructs the chi router and its middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// Every path belongs to the asset router, including "/".
	r.Handle("/*", s.assets)

	return r
}

// Run binds the configured port and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) (err error) {
	var ln net.Listener
	ln, err = net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		err = errors.Wrapf(err, "failed to listen on %s", s.cfg.Addr())
		return err
	}

	err = s.Serve(ctx, ln)
	return err
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) (err error) {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("serving",
		zap.String("addr", ln.Addr().String()),
		zap.String("root", s.cfg.Root),
		zap.String("entry_document", s.assets.EntryPath()),
	)

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
			return err
		}
		err = errors.Wrap(err, "server stopped")
		return err

	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		err = errors.Wrap(err, "graceful shutdown failed")
		return err
	}

	<-errCh
	return err
}
