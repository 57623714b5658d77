package reconcile

import (
	"go.uber.org/zap"
)

// Options customizes an Engine. Zero fields take their defaults.
type Options[T any] struct {
	// ShouldRead decides whether a cached record is refetched. Defaults to always.
	ShouldRead func(cached T) bool

	// ShouldReadList decides whether the cached list is refetched. Defaults to always.
	ShouldReadList func(cached []T) bool

	// OnNetworkFailure is called for every transport failure, before the error
	// is emitted. Defaults to a no-op.
	OnNetworkFailure func(err error)

	// Fatal receives contract violations and local store failures.
	// Defaults to logging at panic level, which panics.
	Fatal func(err error)

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Always is the default refetch policy.
func Always[V any](V) bool {
	return true
}

func (o Options[T]) withDefaults() Options[T] {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.ShouldRead == nil {
		o.ShouldRead = Always[T]
	}
	if o.ShouldReadList == nil {
		o.ShouldReadList = Always[[]T]
	}
	if o.OnNetworkFailure == nil {
		o.OnNetworkFailure = func(error) {}
	}
	if o.Fatal == nil {
		logger := o.Logger
		o.Fatal = func(err error) {
			logger.Panic("Reconcile contract violated", zap.Error(err))
		}
	}
	return o
}
