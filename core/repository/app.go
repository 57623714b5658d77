package repository

import (
	"jsonplaceholder/core/app"
	"jsonplaceholder/core/reconcile"
	"jsonplaceholder/core/remote"
	"jsonplaceholder/core/store"

	"go.uber.org/zap"
)

// FromApp builds a repository cached in the app database and backed by the
// remote collection at path. The list is fetched only while the cache is empty.
func FromApp[ID comparable, M any, PT interface {
	*M
	reconcile.Entity[ID]
}](a *app.App, path string) (*Repository[ID, PT], error) {
	logger := a.Logger.Named(path)

	st, err := store.NewGormStore[ID, M, PT](a.DB, logger)
	if err != nil {
		return nil, err
	}

	repo := New(Params[ID, PT]{
		Name:           path,
		Store:          st,
		Remote:         remote.NewEndpoint[ID, PT](a.Remote, path),
		Executors:      a.Executors,
		Logger:         logger,
		ShouldReadList: OnlyWhenEmpty[PT],
	})
	logger.Debug("Repository ready", zap.String("table", path))
	return repo, nil
}
