package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"jsonplaceholder/core/reconcile"

	"github.com/gofiber/fiber/v2"
)

// Endpoint is the REST adapter for one collection, e.g. /posts.
//
//	POST   /{path}        create
//	GET    /{path}/{id}   read
//	GET    /{path}        read list
//	PUT    /{path}/{id}   update
//	DELETE /{path}/{id}   delete
type Endpoint[ID comparable, T any] struct {
	client *Client
	path   string
}

// NewEndpoint binds a collection path to a client.
func NewEndpoint[ID comparable, T any](client *Client, path string) *Endpoint[ID, T] {
	return &Endpoint[ID, T]{client: client, path: path}
}

func (e *Endpoint[ID, T]) Create(ctx context.Context, entity T) (*reconcile.Response[T], error) {
	raw, err := e.client.Do(ctx, fiber.MethodPost, e.client.URL(e.path), entity)
	if err != nil {
		return nil, err
	}
	return decode[T](raw), nil
}

func (e *Endpoint[ID, T]) Read(ctx context.Context, id ID) (*reconcile.Response[T], error) {
	raw, err := e.client.Do(ctx, fiber.MethodGet, e.member(id), nil)
	if err != nil {
		return nil, err
	}
	return decode[T](raw), nil
}

func (e *Endpoint[ID, T]) ReadList(ctx context.Context) (*reconcile.Response[[]T], error) {
	raw, err := e.client.Do(ctx, fiber.MethodGet, e.client.URL(e.path), nil)
	if err != nil {
		return nil, err
	}
	return decode[[]T](raw), nil
}

func (e *Endpoint[ID, T]) Update(ctx context.Context, id ID, entity T) (*reconcile.Response[T], error) {
	raw, err := e.client.Do(ctx, fiber.MethodPut, e.member(id), entity)
	if err != nil {
		return nil, err
	}
	return decode[T](raw), nil
}

func (e *Endpoint[ID, T]) Delete(ctx context.Context, id ID) (*reconcile.Response[struct{}], error) {
	raw, err := e.client.Do(ctx, fiber.MethodDelete, e.member(id), nil)
	if err != nil {
		return nil, err
	}
	resp := decode[struct{}](raw)
	resp.HasBody = false
	return resp, nil
}

func (e *Endpoint[ID, T]) member(id ID) string {
	return e.client.URL(e.path, fmt.Sprint(id))
}

// decode builds a reconcile response. A successful payload that is empty,
// null or not valid JSON for T is treated as absent.
func decode[T any](raw *RawResponse) *reconcile.Response[T] {
	resp := &reconcile.Response[T]{
		StatusCode: raw.StatusCode,
		Header:     raw.Header,
		Reason:     raw.Reason,
	}

	if resp.Successful() {
		payload := bytes.TrimSpace(raw.Body)
		if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
			return resp
		}
		if err := json.Unmarshal(payload, &resp.Body); err != nil {
			var zero T
			resp.Body = zero
			return resp
		}
		resp.HasBody = true
		return resp
	}

	// The service answers most errors with an empty object.
	if payload := bytes.TrimSpace(raw.Body); !bytes.Equal(payload, []byte("{}")) {
		resp.ErrorBody = string(payload)
	}
	return resp
}
