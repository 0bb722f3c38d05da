package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/mwantia/fabric/pkg/container"
	"github.com/skinhelper/catalog/internal/api"
	config "github.com/skinhelper/catalog/internal/config/server"
	"github.com/skinhelper/catalog/pkg/db/store"
	"github.com/skinhelper/catalog/pkg/log"
)

type CatalogServer struct {
	mutex sync.RWMutex
	wait  sync.WaitGroup

	cfg   *config.BaseServerConfig
	sc    *container.ServiceContainer
	log   log.LoggerService
	store *store.SQLiteStore
	http  *http.Server
}

func NewServer(cfg *config.BaseServerConfig) *CatalogServer {
	return &CatalogServer{
		cfg: cfg,
		sc:  container.NewServiceContainer(),
		log: log.NewLoggerService("skinhelper", cfg.Log),
	}
}

func (cs *CatalogServer) setupServices() error {
	errs := container.Errors{}

	cs.log.Debug("Registering 'LoggerService'...")
	errs.Add(container.Register[log.LoggerServiceImpl](cs.sc,
		container.With[log.LoggerService](),
		container.WithInstance(cs.log)))

	cs.log.Debug("Registering 'CatalogStore'...")
	errs.Add(container.Register[store.SQLiteStore](cs.sc,
		container.With[store.CatalogStore](),
		container.WithInstance(cs.store)))

	return errs.Errors()
}

func (cs *CatalogServer) setupStore(ctx context.Context) error {
	st, err := store.NewSQLiteStore(store.SQLiteConfig{
		Path: cs.cfg.Metadata.SQLite.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}
	if err := st.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to catalog store: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate catalog store: %w", err)
	}

	cs.store = st
	return nil
}

func (cs *CatalogServer) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	cs.mutex.Lock()

	if err := cs.setupStore(ctx); err != nil {
		cs.mutex.Unlock()
		return err
	}
	if err := cs.setupServices(); err != nil {
		cs.mutex.Unlock()
		return err
	}

	cs.http = &http.Server{
		Addr:         cs.cfg.Http.Address,
		Handler:      api.NewRouter(cs.store, cs.log),
		ReadTimeout:  parseDuration(cs.cfg.Http.ReadTimeout, 15*time.Second),
		WriteTimeout: parseDuration(cs.cfg.Http.WriteTimeout, 15*time.Second),
	}

	failed := make(chan error, 1)
	cs.wait.Add(1)
	go func() {
		defer cs.wait.Done()
		cs.log.Info("Listening on '%s'...", cs.cfg.Http.Address)
		if err := cs.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	cs.mutex.Unlock()

	select {
	case err := <-failed:
		cs.store.Close()
		return err
	case <-ctx.Done():
	}

	timeout, err := time.ParseDuration(cs.cfg.ShutdownTimeout)
	if err != nil {
		// Set default of 60 seconds if error
		timeout = 60 * time.Second
	}

	shutdown, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := cs.http.Shutdown(shutdown); err != nil {
		cs.log.Error("Failed to shut down http server: %v", err)
	}
	if err := cs.store.Close(); err != nil {
		cs.log.Error("Failed to close catalog store: %v", err)
	}

	if err := cs.sc.Cleanup(shutdown); err != nil {
		return fmt.Errorf("failed to complete service container cleanup: %w", err)
	}

	cs.wait.Wait()
	return nil
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}
