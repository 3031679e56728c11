// Package ui exposes the index pipeline over HTTP for the dashboard: file
// intake, weight edits with cheap rescoring, the ranked record set, and
// validation diagnostics. Handlers only shuttle data; all pipeline
// semantics live in domain/index.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/semaphore"

	"techindex/domain/index"
	"techindex/internal"
)

// App represents the dashboard API application
type App struct {
	router   *chi.Mux
	session  *Session
	validate *validator.Validate
	uploads  *semaphore.Weighted
	log      *internal.Logger
	port     string
}

// Config holds API application configuration
type Config struct {
	Port string
	// MaxConcurrentUploads bounds how many datasets may be mid-validation
	// at once; further uploads are rejected rather than queued.
	MaxConcurrentUploads int64
	// Weights seeds the session; nil means index.DefaultWeights.
	Weights index.Weights
	Logger  *internal.Logger
}

// NewApp creates a new dashboard API application
func NewApp(config Config) *App {
	if config.Port == "" {
		config.Port = "8080"
	}
	if config.MaxConcurrentUploads < 1 {
		config.MaxConcurrentUploads = 4
	}
	if config.Weights == nil {
		config.Weights = index.DefaultWeights()
	}
	if config.Logger == nil {
		config.Logger = internal.DefaultLogger
	}

	app := &App{
		router:   chi.NewRouter(),
		session:  NewSession(config.Weights),
		validate: validator.New(),
		uploads:  semaphore.NewWeighted(config.MaxConcurrentUploads),
		log:      config.Logger,
		port:     config.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	a.router.Post("/api/datasets/upload", a.handleUpload)
	a.router.Get("/api/records", a.handleRecords)
	a.router.Get("/api/weights", a.handleGetWeights)
	a.router.Put("/api/weights", a.handlePutWeights)
	a.router.Get("/api/report", a.handleReport)
	a.router.Get("/api/summary", a.handleSummary)
	a.router.Get("/api/sectors", a.handleSectors)

	a.router.Get("/report.html", a.handleReportHTML)
}

// Session returns the server's pipeline session.
func (a *App) Session() *Session {
	return a.session
}

// Router exposes the handler tree for embedding and tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server; it blocks until the listener fails.
func (a *App) Start() error {
	a.log.Info("tech index API listening on :%s", a.port)
	return http.ListenAndServe(":"+a.port, a.router)
}
