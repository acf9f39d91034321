package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nothingbetterhealth/nbh-site/internal/assets"
	"github.com/nothingbetterhealth/nbh-site/internal/db"
	"github.com/nothingbetterhealth/nbh-site/internal/site"
	"github.com/nothingbetterhealth/nbh-site/internal/waitlist"
)

// Config holds server configuration.
type Config struct {
	Addr     string // listen address, e.g. ":8080"
	AllowAll bool   // allow all CORS origins (dev mode)

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Images under PublicDir are served at /images/, filtered by the
	// asset include/exclude patterns.
	PublicDir string
	Include   []string
	Exclude   []string
}

// Server serves the rendered site, the live locations filter and the
// waitlist API.
type Server struct {
	cfg        Config
	site       *site.Site
	db         *db.DB
	waitlist   *waitlist.Store
	log        zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for the given site. The database backs the
// waitlist endpoints.
func New(cfg Config, st *site.Site, database *db.DB, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		site:     st,
		db:       database,
		waitlist: waitlist.NewStore(database),
		log:      logger,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(hlog.NewHandler(s.log))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(middleware.RealIP)
	r.Use(hlog.RemoteAddrHandler("ip"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The live filter socket outlives any request timeout.
	r.Get("/ws/locations", s.handleLocationsSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Handle("/static/*", site.StaticHandler())
		if s.cfg.PublicDir != "" {
			r.Handle("/images/*", assets.Handler(s.cfg.PublicDir, s.cfg.Include, s.cfg.Exclude))
		}

		s.registerPages(r)

		r.Get("/locations.json", s.handleLocationIndex)
		r.Get("/api/locations", s.handleLocations)
		r.Post("/api/alerts/{key}/dismiss", s.handleDismissAlert)
		waitlist.RegisterRoutes(r, s.waitlist, waitlist.CatalogTargets{Catalog: s.site.Catalog})
	})

	r.NotFound(s.page(func(r *http.Request) site.Page {
		return s.site.NotFound(r.URL.Path)
	}))

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port. It returns nil once
// Shutdown has been called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run starts the server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() { errc <- s.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errc
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
