package reconcile

import "context"

// Endpoint is the remote side of one entity type.
//
// A returned error means no response was reached (transport failure).
// Any response that did arrive, successful or not, is returned without error.
type Endpoint[ID comparable, T any] interface {
	Create(ctx context.Context, entity T) (*Response[T], error)
	Read(ctx context.Context, id ID) (*Response[T], error)
	ReadList(ctx context.Context) (*Response[[]T], error)
	Update(ctx context.Context, id ID, entity T) (*Response[T], error)
	Delete(ctx context.Context, id ID) (*Response[struct{}], error)
}

// EndpointFuncs adapts plain functions to an Endpoint.
// Calling an operation whose function is nil panics.
type EndpointFuncs[ID comparable, T any] struct {
	CreateFunc   func(ctx context.Context, entity T) (*Response[T], error)
	ReadFunc     func(ctx context.Context, id ID) (*Response[T], error)
	ReadListFunc func(ctx context.Context) (*Response[[]T], error)
	UpdateFunc   func(ctx context.Context, id ID, entity T) (*Response[T], error)
	DeleteFunc   func(ctx context.Context, id ID) (*Response[struct{}], error)
}

func (f EndpointFuncs[ID, T]) Create(ctx context.Context, entity T) (*Response[T], error) {
	return f.CreateFunc(ctx, entity)
}

func (f EndpointFuncs[ID, T]) Read(ctx context.Context, id ID) (*Response[T], error) {
	return f.ReadFunc(ctx, id)
}

func (f EndpointFuncs[ID, T]) ReadList(ctx context.Context) (*Response[[]T], error) {
	return f.ReadListFunc(ctx)
}

func (f EndpointFuncs[ID, T]) Update(ctx context.Context, id ID, entity T) (*Response[T], error) {
	return f.UpdateFunc(ctx, id, entity)
}

func (f EndpointFuncs[ID, T]) Delete(ctx context.Context, id ID) (*Response[struct{}], error) {
	return f.DeleteFunc(ctx, id)
}
