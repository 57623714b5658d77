package repository

import (
	"jsonplaceholder/core/executor"
	"jsonplaceholder/core/reconcile"
	"jsonplaceholder/core/store"

	"go.uber.org/zap"
)

// Repository exposes the five engine operations for one entity type.
type Repository[ID comparable, T reconcile.Entity[ID]] struct {
	*reconcile.Engine[ID, T]
}

// Params wires a Repository.
type Params[ID comparable, T reconcile.Entity[ID]] struct {
	Name      string
	Store     store.Store[ID, T]
	Remote    reconcile.Endpoint[ID, T]
	Executors *executor.Executors
	Logger    *zap.Logger

	// ShouldReadList decides whether the cached list is refetched.
	ShouldReadList func(cached []T) bool
	// OnNetworkFailure is forwarded to the engine.
	OnNetworkFailure func(err error)
}

// New creates a repository.
func New[ID comparable, T reconcile.Entity[ID]](p Params[ID, T]) *Repository[ID, T] {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	onFailure := p.OnNetworkFailure
	if onFailure == nil {
		onFailure = func(err error) {
			logger.Warn("Remote unreachable", zap.String("resource", p.Name), zap.Error(err))
		}
	}

	engine := reconcile.New[ID, T](p.Name, p.Store, p.Remote, p.Executors, reconcile.Options[T]{
		ShouldReadList:   p.ShouldReadList,
		OnNetworkFailure: onFailure,
		Logger:           logger,
	})
	return &Repository[ID, T]{Engine: engine}
}

// OnlyWhenEmpty fetches the list from the network only while nothing is cached.
func OnlyWhenEmpty[T any](cached []T) bool {
	return len(cached) == 0
}
