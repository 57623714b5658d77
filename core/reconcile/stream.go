package reconcile

import (
	"context"
	"sync"

	"jsonplaceholder/core/executor"
)

// Stream delivers the Resource emissions of one operation.
//
// Emissions are queued without bound and handed to C in order. Mutations
// complete after their terminal emission and C is closed. Reads keep mirroring
// the cache until Close is called or the context passed to the operation ends.
type Stream[T any] struct {
	main *executor.Pool

	out    chan Resource[T]
	signal chan struct{}
	done   chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	stop   func() bool

	mu        sync.Mutex
	queue     []Resource[T]
	completed bool
	closed    bool
	onClose   []func()

	once sync.Once
}

func newStream[T any](ctx context.Context, main *executor.Pool) *Stream[T] {
	sctx, cancel := context.WithCancel(ctx)
	s := &Stream[T]{
		main:   main,
		out:    make(chan Resource[T]),
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
		ctx:    sctx,
		cancel: cancel,
	}
	s.stop = context.AfterFunc(sctx, s.Close)
	go s.pump()
	return s
}

// C returns the emission channel. It is closed when the stream completes or is closed.
func (s *Stream[T]) C() <-chan Resource[T] {
	return s.out
}

// Done is closed once the consumer has unsubscribed.
func (s *Stream[T]) Done() <-chan struct{} {
	return s.done
}

// Close unsubscribes. Pending emissions are dropped and every store
// subscription held on behalf of the stream is detached.
func (s *Stream[T]) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.queue = nil
		hooks := s.onClose
		s.onClose = nil
		s.mu.Unlock()

		close(s.done)
		s.cancel()

		if len(hooks) > 0 {
			s.runOnMain(func() {
				for _, h := range hooks {
					h()
				}
			})
		}
	})
}

// Terminal waits for the first success or error emission.
func (s *Stream[T]) Terminal(ctx context.Context) (Resource[T], error) {
	for {
		select {
		case <-ctx.Done():
			return Resource[T]{}, ctx.Err()
		case r, ok := <-s.out:
			if !ok {
				return Resource[T]{}, ErrStreamClosed
			}
			if r.Terminal() {
				return r, nil
			}
		}
	}
}

// lifetime is cancelled when the stream is closed or completes.
func (s *Stream[T]) lifetime() context.Context {
	return s.ctx
}

// push queues an emission. Called on the main pool.
func (s *Stream[T]) push(r Resource[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.completed {
		return
	}
	s.queue = append(s.queue, r)
	s.wake()
}

// complete closes C once the queued emissions are delivered. Called on the main pool.
func (s *Stream[T]) complete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed = true
	s.wake()
}

// whenClosed registers a hook that runs on the main pool when the consumer unsubscribes.
func (s *Stream[T]) whenClosed(hook func()) {
	s.mu.Lock()
	if !s.closed {
		s.onClose = append(s.onClose, hook)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.runOnMain(hook)
}

func (s *Stream[T]) wake() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *Stream[T]) runOnMain(fn func()) {
	if !s.main.Execute(fn) {
		fn()
	}
}

func (s *Stream[T]) next() (r Resource[T], ok bool, finished bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) > 0 {
		r = s.queue[0]
		s.queue[0] = Resource[T]{}
		s.queue = s.queue[1:]
		return r, true, false
	}
	return r, false, s.completed
}

func (s *Stream[T]) pump() {
	defer close(s.out)
	defer s.cancel()
	defer s.stop()

	for {
		r, ok, finished := s.next()
		if ok {
			select {
			case s.out <- r:
			case <-s.done:
				return
			}
			continue
		}
		if finished {
			return
		}

		select {
		case <-s.signal:
		case <-s.done:
			return
		}
	}
}
