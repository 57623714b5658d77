package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	ID    int64  `json:"id,omitempty"`
	Title string `json:"title"`
}

func newTestEndpoint(t *testing.T, handler http.HandlerFunc) *Endpoint[int64, *post] {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 5}, nil)
	require.NoError(t, err)
	return NewEndpoint[int64, *post](client, "posts")
}

func TestEndpoint_Create(t *testing.T) {
	t.Run("BodyResponse", func(t *testing.T) {
		ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/posts", r.URL.Path)
			assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

			var in post
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			in.ID = 101
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(in)
		})

		resp, err := ep.Create(context.Background(), &post{Title: "hello"})
		require.NoError(t, err)
		assert.True(t, resp.Successful())
		assert.True(t, resp.HasBody)
		assert.Equal(t, &post{ID: 101, Title: "hello"}, resp.Body)
	})

	t.Run("LocationOnly", func(t *testing.T) {
		ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", "/posts/42")
			w.WriteHeader(http.StatusCreated)
		})

		resp, err := ep.Create(context.Background(), &post{Title: "hello"})
		require.NoError(t, err)
		assert.False(t, resp.HasBody)
		loc, found := resp.Location()
		assert.True(t, found)
		assert.Equal(t, "/posts/42", loc)
	})

	t.Run("NullBodyIsAbsent", func(t *testing.T) {
		ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, "null")
		})

		resp, err := ep.Create(context.Background(), &post{Title: "hello"})
		require.NoError(t, err)
		assert.False(t, resp.HasBody)
		assert.Nil(t, resp.Body)
	})
}

func TestEndpoint_Read(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/posts/7", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":7,"title":"seven"}`)
		})

		resp, err := ep.Read(context.Background(), 7)
		require.NoError(t, err)
		assert.True(t, resp.HasBody)
		assert.Equal(t, "seven", resp.Body.Title)
	})

	t.Run("NotFoundEmptyObject", func(t *testing.T) {
		ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, "{}")
		})

		resp, err := ep.Read(context.Background(), 7)
		require.NoError(t, err)
		assert.False(t, resp.Successful())
		assert.Equal(t, "", resp.ErrorBody)
		assert.Equal(t, "Not Found", resp.Reason)
	})

	t.Run("ServerErrorBody", func(t *testing.T) {
		ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "database exploded\n")
		})

		resp, err := ep.Read(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "database exploded", resp.ErrorBody)
	})
}

func TestEndpoint_ReadList(t *testing.T) {
	ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"title":"a"},{"id":2,"title":"b"}]`)
	})

	resp, err := ep.ReadList(context.Background())
	require.NoError(t, err)
	require.True(t, resp.HasBody)
	assert.Len(t, resp.Body, 2)
	assert.Equal(t, int64(2), resp.Body[1].ID)
}

func TestEndpoint_UpdateAndDelete(t *testing.T) {
	ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/3", r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			_, _ = w.Write(body)
		case http.MethodDelete:
			_, _ = io.WriteString(w, "{}")
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	updated, err := ep.Update(context.Background(), 3, &post{ID: 3, Title: "three"})
	require.NoError(t, err)
	assert.Equal(t, "three", updated.Body.Title)

	deleted, err := ep.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, deleted.Successful())
	assert.False(t, deleted.HasBody)
}

func TestEndpoint_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 1}, nil)
	require.NoError(t, err)
	ep := NewEndpoint[int64, *post](client, "posts")

	resp, err := ep.Read(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestClient_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	ep := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-time.After(2 * time.Second):
		}
	})
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := ep.ReadList(ctx)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"Valid", "https://jsonplaceholder.typicode.com", false},
		{"MissingScheme", "jsonplaceholder.typicode.com", true},
		{"Garbage", "://", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(Config{BaseURL: tt.baseURL}, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://jsonplaceholder.typicode.com/posts/1", c.URL("posts", "1"))
		})
	}
}
