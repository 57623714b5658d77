package rayid_test

import (
	"net/http/httptest"
	"testing"

	"jsonplaceholder/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(rayid.Get(c))
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(rayid.Header)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
}

func TestRayID_Propagated(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "upstream-7")

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-7", resp.Header.Get(rayid.Header))
}
