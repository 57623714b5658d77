package posts_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"jsonplaceholder/core/app"
	"jsonplaceholder/core/database"
	"jsonplaceholder/core/reconcile"
	"jsonplaceholder/feature/posts"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `[
  {"userId": 1, "id": 1, "title": "sunt aut facere", "body": "quia et suscipit"},
  {"userId": 1, "id": 2, "title": "qui est esse", "body": "est rerum tempore"}
]`

func newRemote(t *testing.T, listCalls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/posts":
			listCalls.Add(1)
			_, _ = io.WriteString(w, fixture)
		case r.Method == http.MethodPost && r.URL.Path == "/posts":
			var in map[string]any
			_ = json.NewDecoder(r.Body).Decode(&in)
			in["id"] = 101
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(in)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, "{}")
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewPost_ToPost(t *testing.T) {
	p := posts.NewPost{Title: "t", Body: "b"}.ToPost()
	assert.Equal(t, &posts.Post{Title: "t", Body: "b"}, p)
}

func TestRepository_ReadListCachesOnce(t *testing.T) {
	var calls atomic.Int32
	a := app.NewTestApp(t, newRemote(t, &calls).URL)

	repo, err := posts.NewRepository(a)
	require.NoError(t, err)

	for range 2 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		s := repo.ReadList(ctx)
		r, err := s.Terminal(ctx)
		s.Close()
		cancel()

		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusSuccess, r.Status)
		require.Len(t, r.Data, 2)
		assert.Equal(t, "qui est esse", r.Data[1].Title)
	}
	assert.Equal(t, int32(1), calls.Load())

	reports, err := database.Inspect(a.DB, &posts.Post{})
	require.NoError(t, err)
	assert.True(t, reports[0].OK())
}

func TestFeature_Routes(t *testing.T) {
	var calls atomic.Int32
	a := app.NewTestApp(t, newRemote(t, &calls).URL)

	repo, err := posts.NewRepository(a)
	require.NoError(t, err)
	f := posts.NewFeature(a, repo)
	assert.Equal(t, "posts", f.Name())

	server := fiber.New()
	require.NoError(t, f.Load(server))

	req := httptest.NewRequest("POST", "/posts", strings.NewReader(`{"userId":1,"title":"hello","body":"world"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env reconcile.Resource[*posts.Post]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, reconcile.StatusSuccess, env.Status)
	assert.Equal(t, int64(101), env.Data.ID)
	assert.Equal(t, "hello", env.Data.Title)

	resp, err = server.Test(httptest.NewRequest("GET", "/posts/999", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
