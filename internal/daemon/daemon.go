package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daykeep/daykeep/internal/api"
	"github.com/daykeep/daykeep/internal/app/budget"
	"github.com/daykeep/daykeep/internal/app/engagement"
	"github.com/daykeep/daykeep/internal/app/water"
	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/identity"
	_ "github.com/daykeep/daykeep/internal/infra/metrics" // Register Prometheus metrics
	"github.com/daykeep/daykeep/internal/infra/sqlite"
)

// App is the daykeep runtime. It wires the keyed store, identity, and the
// three engine services together.
type App struct {
	Config     Config
	DB         *sqlite.DB
	Session    *identity.Session
	Engagement *engagement.Service
	Budget     *budget.Service
	Water      *water.Service
	Server     *api.Server
}

// New creates an App using the on-disk config.
func New() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with the given configuration.
func NewWithConfig(cfg Config) (*App, error) {
	db, err := sqlite.Open(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	session := identity.NewSession(db)
	clock := domain.SystemClock{}

	a := &App{
		Config:     cfg,
		DB:         db,
		Session:    session,
		Engagement: engagement.NewService(db, session, clock),
		Budget:     budget.NewService(db, session, clock),
		Water:      water.NewService(db, session, clock),
	}

	srv := api.NewServer(a.Session, a.Engagement, a.Budget, a.Water)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}
	a.Server = srv

	return a, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (a *App) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.API.Host, a.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      a.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = a.DB.Close()
	}()

	fmt.Printf("daykeep serving on http://%s\n", addr)
	if a.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all app resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
