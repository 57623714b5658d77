package reconcile

import (
	"context"
	"fmt"

	"jsonplaceholder/core/executor"
	"jsonplaceholder/core/store"

	"go.uber.org/zap"
)

// phase is the state of one read invocation.
//
//	awaitingCache ──should==false──▶ fresh
//	      │
//	      └──should==true──▶ awaitingNetwork ──▶ mirroring
//
// Any phase moves to stopped when the stream is closed.
type phase int

const (
	awaitingCache phase = iota
	fresh
	awaitingNetwork
	mirroring
	stopped
)

func (p phase) String() string {
	switch p {
	case awaitingCache:
		return "awaiting_cache"
	case fresh:
		return "fresh"
	case awaitingNetwork:
		return "awaiting_network"
	case mirroring:
		return "mirroring"
	case stopped:
		return "stopped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// mergeSource binds a read to its cache query and remote call.
type mergeSource[V any] struct {
	op     string
	query  func() store.Live[V]
	should func(cached V) bool
	fetch  func(ctx context.Context) (*Response[V], error)
	save   func(ctx context.Context, v V) error
}

// merge combines a live cache query with at most one remote read.
// All fields are owned by the main pool.
type merge[V any] struct {
	src    mergeSource[V]
	stream *Stream[V]
	exec   *executor.Executors
	opts   mergeHooks
	logger *zap.Logger

	phase phase
	sub   *subscription
}

type mergeHooks struct {
	onNetworkFailure func(error)
	fatal            func(error)
}

func runMerge[ID comparable, T Entity[ID], V any](ctx context.Context, e *Engine[ID, T], src mergeSource[V]) *Stream[V] {
	s := newStream[V](ctx, e.exec.Main)
	m := &merge[V]{
		src:    src,
		stream: s,
		exec:   e.exec,
		opts: mergeHooks{
			onNetworkFailure: e.opts.OnNetworkFailure,
			fatal:            e.opts.Fatal,
		},
		logger: e.logger.With(zap.String("op", src.op)),
	}
	if !e.exec.Main.Execute(m.start) {
		fatal(e.exec.Main, e.logger, e.opts.Fatal, fmt.Errorf("%s: %w", e.name, errPoolClosed), s.complete)
	}
	return s
}

func (m *merge[V]) start() {
	var zero V
	m.stream.push(Loading(zero))
	m.stream.whenClosed(m.stop)

	m.phase = awaitingCache
	m.sub = attach(m.exec.Main, m.src.query(), m.onCache)
}

func (m *merge[V]) transition(to phase) {
	m.logger.Debug("Read transition", zap.Stringer("from", m.phase), zap.Stringer("to", to))
	m.phase = to
}

// onCache handles the first cache value.
func (m *merge[V]) onCache(cached V) {
	if m.phase != awaitingCache {
		return
	}
	m.sub.detach()

	if !m.src.should(cached) {
		m.transition(fresh)
		m.mirror(Success[V])
		return
	}

	m.transition(awaitingNetwork)
	m.sub = attach(m.exec.Main, m.src.query(), func(v V) {
		m.stream.push(Loading(v))
	})

	ctx := m.stream.lifetime()
	ok := m.exec.NetworkIO.Execute(func() {
		resp, err := m.src.fetch(ctx)
		m.exec.Main.Execute(func() { m.onNetwork(resp, err) })
	})
	if !ok {
		m.abort(errPoolClosed)
	}
}

// onNetwork handles the single remote result.
func (m *merge[V]) onNetwork(resp *Response[V], err error) {
	if m.phase != awaitingNetwork {
		return
	}
	m.sub.detach()
	m.sub = nil

	switch {
	case err != nil:
		m.logger.Warn("Remote call failed", zap.Error(err))
		m.opts.onNetworkFailure(err)
		msg := err.Error()
		m.mirror(func(v V) Resource[V] { return Error(v, msg) })
	case resp.Successful() && resp.HasBody:
		// Cache writes are not tied to the subscription.
		ctx := context.WithoutCancel(m.stream.lifetime())
		ok := m.exec.DiskIO.Execute(func() {
			if err := m.src.save(ctx, resp.Body); err != nil {
				m.exec.Main.Execute(func() { m.abort(fmt.Errorf("failed to write local store: %w", err)) })
				return
			}
			m.exec.Main.Execute(func() {
				if m.phase == awaitingNetwork {
					m.mirror(Success[V])
				}
			})
		})
		if !ok {
			m.abort(errPoolClosed)
		}
	case resp.Successful():
		m.mirror(Success[V])
	default:
		msg := serverMessage(resp)
		m.mirror(func(v V) Resource[V] { return Error(v, msg) })
	}
}

// mirror emits wrap(v) for every cache value until the stream is closed.
func (m *merge[V]) mirror(wrap func(V) Resource[V]) {
	if m.phase != fresh {
		m.transition(mirroring)
	}
	m.sub = attach(m.exec.Main, m.src.query(), func(v V) {
		m.stream.push(wrap(v))
	})
}

func (m *merge[V]) stop() {
	if m.phase == stopped {
		return
	}
	m.transition(stopped)
	if m.sub != nil {
		m.sub.detach()
		m.sub = nil
	}
}

// abort stops the read and reports err as fatal. Runs on the main pool.
func (m *merge[V]) abort(err error) {
	m.stop()
	fatal(m.exec.Main, m.logger, m.opts.fatal, fmt.Errorf("%s: %w", m.src.op, err), m.stream.complete)
}

// subscription forwards a live query onto the main pool until detached.
type subscription struct {
	detached bool // main pool only
	close    func()
}

func attach[V any](main *executor.Pool, live store.Live[V], onValue func(V)) *subscription {
	sub := &subscription{close: live.Close}
	go func() {
		for v := range live.C() {
			main.Execute(func() {
				if !sub.detached {
					onValue(v)
				}
			})
		}
	}()
	return sub
}

func (s *subscription) detach() {
	if s.detached {
		return
	}
	s.detached = true
	s.close()
}
