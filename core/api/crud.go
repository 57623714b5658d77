package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jsonplaceholder/core/logger"
	"jsonplaceholder/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Service is the set of operations a resource exposes.
type Service[ID comparable, T reconcile.Entity[ID]] interface {
	Create(ctx context.Context, entity T) *reconcile.Stream[T]
	Read(ctx context.Context, id ID) *reconcile.Stream[T]
	ReadList(ctx context.Context) *reconcile.Stream[[]T]
	Update(ctx context.Context, id ID, entity T) *reconcile.Stream[T]
	Delete(ctx context.Context, entity T) *reconcile.Stream[T]
}

// DefaultTimeout bounds a request that waits for a terminal envelope.
const DefaultTimeout = 30 * time.Second

// DefaultHeartbeat is how often an idle watch writes an empty line. A write
// to a closed connection is what ends the watch of a client that went away.
const DefaultHeartbeat = 15 * time.Second

// CRUD serves one resource.
type CRUD[ID comparable, T reconcile.Entity[ID]] struct {
	svc     Service[ID, T]
	newT    func() T
	logger    *zap.Logger
	timeout   time.Duration
	heartbeat time.Duration
}

// NewCRUD creates a handler. newT returns an empty entity to decode into.
func NewCRUD[ID comparable, T reconcile.Entity[ID]](svc Service[ID, T], newT func() T, logger *zap.Logger) *CRUD[ID, T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CRUD[ID, T]{svc: svc, newT: newT, logger: logger, timeout: DefaultTimeout, heartbeat: DefaultHeartbeat}
}

// WithTimeout overrides DefaultTimeout.
func (h *CRUD[ID, T]) WithTimeout(d time.Duration) *CRUD[ID, T] {
	h.timeout = d
	return h
}

// WithHeartbeat overrides DefaultHeartbeat.
func (h *CRUD[ID, T]) WithHeartbeat(d time.Duration) *CRUD[ID, T] {
	h.heartbeat = d
	return h
}

// RegisterRoutes mounts the routes on router.
func (h *CRUD[ID, T]) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleList)
	router.Get("/:id", h.HandleGet)
	router.Post("/", h.HandleCreate)
	router.Put("/:id", h.HandleUpdate)
	router.Delete("/:id", h.HandleDelete)
}

func (h *CRUD[ID, T]) HandleList(c *fiber.Ctx) error {
	return respond(h, c, h.svc.ReadList(context.Background()))
}

func (h *CRUD[ID, T]) HandleGet(c *fiber.Ctx) error {
	id, err := h.id(c)
	if err != nil {
		return badRequest(c, err)
	}
	return respond(h, c, h.svc.Read(context.Background(), id))
}

func (h *CRUD[ID, T]) HandleCreate(c *fiber.Ctx) error {
	entity, err := h.body(c)
	if err != nil {
		return badRequest(c, err)
	}
	return respond(h, c, h.svc.Create(context.Background(), entity))
}

func (h *CRUD[ID, T]) HandleUpdate(c *fiber.Ctx) error {
	id, err := h.id(c)
	if err != nil {
		return badRequest(c, err)
	}
	entity, err := h.body(c)
	if err != nil {
		return badRequest(c, err)
	}
	entity.SetID(id)
	return respond(h, c, h.svc.Update(context.Background(), id, entity))
}

func (h *CRUD[ID, T]) HandleDelete(c *fiber.Ctx) error {
	id, err := h.id(c)
	if err != nil {
		return badRequest(c, err)
	}
	entity := h.newT()
	entity.SetID(id)
	return respond(h, c, h.svc.Delete(context.Background(), entity))
}

func (h *CRUD[ID, T]) id(c *fiber.Ctx) (ID, error) {
	id, err := reconcile.ParseID[ID](c.Params("id"))
	if err != nil {
		return id, fmt.Errorf("invalid path id: %w", err)
	}
	return id, nil
}

func (h *CRUD[ID, T]) body(c *fiber.Ctx) (T, error) {
	entity := h.newT()
	if len(c.Body()) == 0 {
		return entity, errors.New("request body is required")
	}
	if err := json.Unmarshal(c.Body(), entity); err != nil {
		return entity, err
	}
	return entity, nil
}

// respond answers with the first terminal envelope of s, or streams every
// envelope when the request asks to watch.
func respond[ID comparable, T reconcile.Entity[ID], V any](h *CRUD[ID, T], c *fiber.Ctx, s *reconcile.Stream[V]) error {
	l := logger.WithRayID(h.logger, c)

	if c.QueryBool("watch") && c.Method() == fiber.MethodGet {
		watch(c, s, c.QueryInt("max"), h.heartbeat, l)
		return nil
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	r, err := s.Terminal(ctx)
	if err != nil {
		l.Warn("Operation did not finish", zap.String("path", c.Path()), zap.Error(err))
		var zero V
		return c.Status(fiber.StatusGatewayTimeout).JSON(reconcile.Error(zero, "operation timed out"))
	}
	return c.Status(StatusCode(r.Status)).JSON(r)
}

// watch streams envelopes as NDJSON. Idle periods are filled with empty
// lines every heartbeat. The stream is closed when a write fails because the
// client went away, when limit envelopes were written, when the stream
// completes or when the server shuts down.
func watch[V any](c *fiber.Ctx, s *reconcile.Stream[V], limit int, heartbeat time.Duration, l *zap.Logger) {
	c.Set(fiber.HeaderContentType, "application/x-ndjson")
	c.Set(fiber.HeaderCacheControl, "no-cache")

	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	shutdown := c.Context().Done()
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer s.Close()

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		enc := json.NewEncoder(w)
		written := 0
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				if err := w.WriteByte('\n'); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					l.Debug("Watch client disconnected", zap.Error(err))
					return
				}
			case r, ok := <-s.C():
				if !ok {
					return
				}
				if err := enc.Encode(r); err != nil {
					l.Debug("Watch encode failed", zap.Error(err))
					return
				}
				if err := w.Flush(); err != nil {
					l.Debug("Watch client disconnected", zap.Error(err))
					return
				}
				ticker.Reset(heartbeat)
				written++
				if limit > 0 && written >= limit {
					return
				}
			}
		}
	})
}

// StatusCode maps an envelope status to the HTTP status of its response.
func StatusCode(s reconcile.Status) int {
	switch s {
	case reconcile.StatusSuccess:
		return fiber.StatusOK
	case reconcile.StatusLoading:
		return fiber.StatusAccepted
	default:
		return fiber.StatusBadGateway
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(reconcile.Error[any](nil, err.Error()))
}
