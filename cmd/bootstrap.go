package cmd

import (
	"fmt"

	"jsonplaceholder/core/app"
	"jsonplaceholder/core/config"
	"jsonplaceholder/core/logger"
	"jsonplaceholder/core/refresh"
	"jsonplaceholder/feature/albums"
	"jsonplaceholder/feature/posts"
	"jsonplaceholder/feature/users"

	"go.uber.org/zap"
)

// repositories holds one repository per resource.
type repositories struct {
	app *app.App

	Posts  *posts.Repository
	Users  *users.Repository
	Albums *albums.Repository
}

// bootstrap loads configuration and builds the application context.
func bootstrap() (*app.App, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a, err := app.New(cfg, l)
	if err != nil {
		_ = l.Sync()
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return a, nil
}

// openRepositories migrates the cache tables and builds the repositories.
func openRepositories(a *app.App) (*repositories, error) {
	p, err := posts.NewRepository(a)
	if err != nil {
		return nil, err
	}
	u, err := users.NewRepository(a)
	if err != nil {
		return nil, err
	}
	al, err := albums.NewRepository(a)
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("Repositories ready", zap.Strings("resources", []string{posts.Path, users.Path, albums.Path}))
	return &repositories{app: a, Posts: p, Users: u, Albums: al}, nil
}

// syncers lists the repositories in refresh order.
func (r *repositories) syncers() []refresh.Syncer {
	return []refresh.Syncer{r.Posts, r.Users, r.Albums}
}
