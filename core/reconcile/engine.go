package reconcile

import (
	"context"
	"errors"
	"fmt"

	"jsonplaceholder/core/executor"
	"jsonplaceholder/core/store"

	"go.uber.org/zap"
)

var errPoolClosed = errors.New("executor pool is shut down")

// Engine reconciles a local store with a remote endpoint for one entity type.
//
// Every operation makes exactly one remote call and returns a Stream whose
// first emission is Loading. The local store is written only after a
// successful remote response, always on the disk pool, and every emission
// happens on the main pool.
type Engine[ID comparable, T Entity[ID]] struct {
	name   string
	store  store.Store[ID, T]
	remote Endpoint[ID, T]
	exec   *executor.Executors
	opts   Options[T]
	logger *zap.Logger
}

// New creates an engine. The name only appears in logs and errors.
func New[ID comparable, T Entity[ID]](
	name string,
	st store.Store[ID, T],
	remote Endpoint[ID, T],
	exec *executor.Executors,
	opts Options[T],
) *Engine[ID, T] {
	opts = opts.withDefaults()
	return &Engine[ID, T]{
		name:   name,
		store:  st,
		remote: remote,
		exec:   exec,
		opts:   opts,
		logger: opts.Logger.With(zap.String("resource", name)),
	}
}

// Name returns the resource name.
func (e *Engine[ID, T]) Name() string {
	return e.name
}

// Create sends a new entity to the remote endpoint.
//
// A successful response whose body carries an id is cached and emitted as is.
// Otherwise, such as for an empty or id-less body, the response must carry a
// Location header whose last path segment becomes the entity id; the entity
// is then cached and emitted.
func (e *Engine[ID, T]) Create(ctx context.Context, entity T) *Stream[T] {
	s := newStream[T](ctx, e.exec.Main)
	var zero T
	var noID ID
	e.emit(s, Loading(zero))

	// The call outlives an unsubscribe; only its emissions are dropped.
	callCtx := context.WithoutCancel(ctx)
	e.network(s, func() {
		resp, err := e.remote.Create(callCtx, entity)
		switch {
		case err != nil:
			e.networkFailure(s, "create", err)
		case !resp.Successful():
			e.finish(s, Error(entity, serverMessage(resp)))
		case resp.HasBody && resp.Body.GetID() != noID:
			e.persist(s, func() error { return e.store.Insert(callCtx, resp.Body) }, Success(resp.Body))
		default:
			location, ok := resp.Location()
			if !ok {
				e.fail(s, fmt.Errorf("%s: %w (status %d)", e.name, ErrMissingLocation, resp.StatusCode))
				return
			}
			id, err := ParseIdentifier[ID](location)
			if err != nil {
				e.fail(s, fmt.Errorf("%s: %w", e.name, err))
				return
			}
			entity.SetID(id)
			e.persist(s, func() error { return e.store.Insert(callCtx, entity) }, Success(entity))
		}
	})

	return s
}

// Update replaces the remote entity and caches the server's version.
func (e *Engine[ID, T]) Update(ctx context.Context, id ID, entity T) *Stream[T] {
	s := newStream[T](ctx, e.exec.Main)
	e.emit(s, Loading(entity))

	callCtx := context.WithoutCancel(ctx)
	e.network(s, func() {
		resp, err := e.remote.Update(callCtx, id, entity)
		switch {
		case err != nil:
			e.networkFailure(s, "update", err)
		case resp.Successful() && resp.HasBody:
			e.persist(s, func() error { return e.store.Update(callCtx, resp.Body) }, Success(resp.Body))
		default:
			var data T
			if resp.HasBody {
				data = resp.Body
			}
			e.finish(s, Error(data, serverMessage(resp)))
		}
	})

	return s
}

// Delete removes the entity remotely, then from the cache.
func (e *Engine[ID, T]) Delete(ctx context.Context, entity T) *Stream[T] {
	s := newStream[T](ctx, e.exec.Main)
	var zero T
	e.emit(s, Loading(zero))

	callCtx := context.WithoutCancel(ctx)
	e.network(s, func() {
		resp, err := e.remote.Delete(callCtx, entity.GetID())
		switch {
		case err != nil:
			e.networkFailure(s, "delete", err)
		case resp.Successful():
			e.persist(s, func() error { return e.store.Delete(callCtx, entity) }, Success(entity))
		default:
			e.finish(s, Error(zero, serverMessage(resp)))
		}
	})

	return s
}

// Read watches one entity, refetching it first when ShouldRead allows.
// The stream mirrors cache changes until it is closed.
func (e *Engine[ID, T]) Read(ctx context.Context, id ID) *Stream[T] {
	return runMerge(ctx, e, mergeSource[T]{
		op:     "read",
		query:  func() store.Live[T] { return e.store.Query(id) },
		should: e.opts.ShouldRead,
		fetch:  func(ctx context.Context) (*Response[T], error) { return e.remote.Read(ctx, id) },
		save:   func(ctx context.Context, v T) error { return e.store.Insert(ctx, v) },
	})
}

// ReadList watches all entities, refetching them first when ShouldReadList allows.
func (e *Engine[ID, T]) ReadList(ctx context.Context) *Stream[[]T] {
	return runMerge(ctx, e, mergeSource[[]T]{
		op:     "read list",
		query:  e.store.QueryAll,
		should: e.opts.ShouldReadList,
		fetch:  e.remote.ReadList,
		save:   func(ctx context.Context, v []T) error { return e.store.Insert(ctx, v...) },
	})
}

// Sync fetches the remote list once and upserts it, returning the number of records.
// It bypasses streams and is meant for background refresh.
func (e *Engine[ID, T]) Sync(ctx context.Context) (int, error) {
	type result struct {
		resp *Response[[]T]
		err  error
	}

	fetched := make(chan result, 1)
	if !e.exec.NetworkIO.Execute(func() {
		resp, err := e.remote.ReadList(ctx)
		fetched <- result{resp, err}
	}) {
		return 0, errPoolClosed
	}

	var res result
	select {
	case res = <-fetched:
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	if res.err != nil {
		e.opts.OnNetworkFailure(res.err)
		return 0, fmt.Errorf("failed to sync %s: %w", e.name, res.err)
	}
	if !res.resp.Successful() {
		return 0, fmt.Errorf("failed to sync %s: %s", e.name, serverMessage(res.resp))
	}
	if !res.resp.HasBody {
		return 0, nil
	}

	saved := make(chan error, 1)
	if !e.exec.DiskIO.Execute(func() {
		saved <- e.store.Insert(ctx, res.resp.Body...)
	}) {
		return 0, errPoolClosed
	}

	select {
	case err := <-saved:
		if err != nil {
			return 0, fmt.Errorf("failed to sync %s: %w", e.name, err)
		}
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	e.logger.Debug("Synced", zap.Int("count", len(res.resp.Body)))
	return len(res.resp.Body), nil
}

func (e *Engine[ID, T]) emit(s *Stream[T], r Resource[T]) {
	e.exec.Main.Execute(func() { s.push(r) })
}

// finish emits the terminal state and completes the stream.
func (e *Engine[ID, T]) finish(s *Stream[T], r Resource[T]) {
	e.exec.Main.Execute(func() {
		s.push(r)
		s.complete()
	})
}

func (e *Engine[ID, T]) network(s *Stream[T], call func()) {
	if !e.exec.NetworkIO.Execute(call) {
		e.fail(s, fmt.Errorf("%s: %w", e.name, errPoolClosed))
	}
}

func (e *Engine[ID, T]) networkFailure(s *Stream[T], op string, err error) {
	e.logger.Warn("Remote call failed", zap.String("op", op), zap.Error(err))
	e.exec.Main.Execute(func() {
		e.opts.OnNetworkFailure(err)
		var zero T
		s.push(Error(zero, err.Error()))
		s.complete()
	})
}

// persist runs write on the disk pool and emits r once it is done.
func (e *Engine[ID, T]) persist(s *Stream[T], write func() error, r Resource[T]) {
	ok := e.exec.DiskIO.Execute(func() {
		if err := write(); err != nil {
			e.fail(s, fmt.Errorf("%s: failed to write local store: %w", e.name, err))
			return
		}
		e.finish(s, r)
	})
	if !ok {
		e.fail(s, fmt.Errorf("%s: %w", e.name, errPoolClosed))
	}
}

func (e *Engine[ID, T]) fail(s *Stream[T], err error) {
	fatal(e.exec.Main, e.logger, e.opts.Fatal, err, s.complete)
}

// fatal hands err to the fatal handler on the main pool, then runs after.
func fatal(main *executor.Pool, logger *zap.Logger, handler func(error), err error, after func()) {
	logger.Error("Unrecoverable reconcile error", zap.Error(err))
	run := func() {
		defer after()
		handler(err)
	}
	if !main.Execute(run) {
		run()
	}
}
