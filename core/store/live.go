package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// hub fans store mutations out to every live query of one store.
type hub struct {
	name   string
	logger *zap.Logger

	mu       sync.RWMutex
	watchers map[string]dirtyMarker // watcher id -> watcher

	gen atomic.Uint64
	sf  singleflight.Group
}

type dirtyMarker interface {
	markDirty()
}

func newHub(name string, logger *zap.Logger) *hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &hub{
		name:     name,
		logger:   logger,
		watchers: make(map[string]dirtyMarker),
	}
}

// notify bumps the mutation generation and schedules a reload for every watcher.
func (h *hub) notify() {
	h.gen.Add(1)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, w := range h.watchers {
		w.markDirty()
	}
}

// load coalesces identical queries issued against the same generation.
func (h *hub) load(key string, fn func() (any, error)) (any, error) {
	sfKey := fmt.Sprintf("%s@%d", key, h.gen.Load())
	v, err, _ := h.sf.Do(sfKey, fn)
	return v, err
}

func (h *hub) add(id string, w dirtyMarker) {
	h.mu.Lock()
	h.watchers[id] = w
	h.mu.Unlock()
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	delete(h.watchers, id)
	h.mu.Unlock()
}

// Watchers returns the number of open live queries.
func (h *hub) Watchers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers)
}

type watcher[V any] struct {
	id    string
	key   string
	hub   *hub
	query func(ctx context.Context) (V, error)

	out   chan V
	dirty chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// watch registers a live query and schedules its first load.
func watch[V any](h *hub, key string, query func(ctx context.Context) (V, error)) Live[V] {
	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher[V]{
		id:     uuid.New().String(),
		key:    key,
		hub:    h,
		query:  query,
		out:    make(chan V, 1),
		dirty:  make(chan struct{}, 1),
		ctx:    ctx,
		cancel: cancel,
	}

	h.add(w.id, w)
	w.markDirty()
	go w.run()

	return w
}

func (w *watcher[V]) C() <-chan V {
	return w.out
}

func (w *watcher[V]) Close() {
	w.once.Do(func() {
		w.hub.remove(w.id)
		w.cancel()
	})
}

func (w *watcher[V]) markDirty() {
	select {
	case w.dirty <- struct{}{}:
	default:
	}
}

func (w *watcher[V]) run() {
	defer close(w.out)

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.dirty:
		}

		// The load is shared with other watchers of the same key, so it
		// must not observe this watcher's cancellation.
		v, err := w.hub.load(w.key, func() (any, error) {
			return w.query(context.Background())
		})
		if err != nil {
			if w.ctx.Err() != nil {
				return
			}
			w.hub.logger.Error("Live query failed",
				zap.String("store", w.hub.name),
				zap.String("key", w.key),
				zap.Error(err))
			continue
		}

		// Replace any value the reader has not picked up yet.
		select {
		case <-w.out:
		default:
		}
		val, _ := v.(V)
		select {
		case w.out <- val:
		case <-w.ctx.Done():
			return
		}
	}
}
