// Package server boots the application and owns the HTTP lifecycle. Both
// launchers (plain serve and the desktop window) build on the same Server,
// so route logic exists exactly once.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/routes"
	"github.com/ibomiri431-oss/metra-feer/config"
	_ "github.com/ibomiri431-oss/metra-feer/database/migrations"
	"github.com/ibomiri431-oss/metra-feer/database/seeders"
	"github.com/ibomiri431-oss/metra-feer/pkg/cache"
	"github.com/ibomiri431-oss/metra-feer/pkg/database"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
	"github.com/ibomiri431-oss/metra-feer/pkg/metrics"
	"github.com/ibomiri431-oss/metra-feer/pkg/middleware"
	"github.com/ibomiri431-oss/metra-feer/pkg/migration"
	"github.com/ibomiri431-oss/metra-feer/pkg/reqid"
	"github.com/ibomiri431-oss/metra-feer/pkg/router"
	"github.com/ibomiri431-oss/metra-feer/pkg/storage"
)

type Server struct {
	DB     *gorm.DB
	Router *router.Router
	http   *http.Server
}

// Boot loads configuration and brings up every subsystem: database,
// migrations, seed data, cache, storage and the optional Mongo log sink.
// Cache and log-sink failures degrade to warnings; everything else is
// fatal.
func Boot() (*Server, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: config: %w", err)
	}

	db, err := database.Connect()
	if err != nil {
		return nil, err
	}

	if err := migration.NewRunner(db).Run(); err != nil {
		return nil, err
	}
	if err := seeders.RunAll(db); err != nil {
		return nil, fmt.Errorf("server: seed: %w", err)
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, caching disabled", "error", err)
	}
	storage.Connect()

	if uri := config.LogMongoURI(); uri != "" {
		if _, err := logger.EnableMongoSink(uri); err != nil {
			logger.Warn("server: mongo log sink disabled", "error", err)
		}
	}

	s := &Server{DB: db}
	s.Router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)

	routes.Register(r, routes.New(s.DB))
	return r
}

// Addr returns the listen address, e.g. ":5000".
func (s *Server) Addr() string {
	return ":" + config.AppPort()
}

// Start blocks serving HTTP until Shutdown is called or the listener
// fails.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("http server listening", "addr", s.Addr(), "env", config.AppEnv())
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
