package app

import (
	"errors"
	"fmt"
	"sync"

	"jsonplaceholder/core/config"
	"jsonplaceholder/core/database"
	"jsonplaceholder/core/executor"
	"jsonplaceholder/core/remote"
	"jsonplaceholder/core/settings"
	"jsonplaceholder/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the application context.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	DB        *gorm.DB
	Executors *executor.Executors
	Remote    *remote.Client
	Settings  *settings.Store

	closeOnce sync.Once
	closeErr  error
}

// New connects the database and builds every shared component.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := remote.NewClient(cfg.Remote, logger.Named("remote"))
	if err != nil {
		return nil, err
	}

	backend, err := NewSettingsBackend(cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Debug("Connected to cache database",
		zap.String("driver", db.Dialector.Name()))

	return &App{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Executors: executor.New(cfg.Executor, logger.Named("executor")),
		Remote:    client,
		Settings:  settings.NewStore(backend, logger.Named("settings")),
	}, nil
}

// NewSettingsBackend picks the settings backend from configuration.
func NewSettingsBackend(cfg *config.Config) (settings.Backend, error) {
	switch cfg.Settings.Backend {
	case "file", "":
		return settings.NewFileBackend(cfg.Settings.Path), nil
	case "object":
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return settings.NewObjectBackend(client, cfg.Storage.Bucket, cfg.Settings.Object), nil
	default:
		return nil, fmt.Errorf("unsupported settings backend %q", cfg.Settings.Backend)
	}
}

// Close drains the worker pools and closes the database. Safe to call twice.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.Executors.Shutdown()

		var errs []error
		if err := database.Close(a.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		if err := a.Logger.Sync(); err != nil {
			a.Logger.Debug("Logger sync failed", zap.Error(err))
		}
		a.closeErr = errors.Join(errs...)
	})
	return a.closeErr
}
