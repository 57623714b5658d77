package reconcile

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	const location = "https://jsonplaceholder.typicode.com/posts/123"

	t.Run("Int32", func(t *testing.T) {
		id, err := ParseIdentifier[int32](location)
		require.NoError(t, err)
		assert.Equal(t, int32(123), id)
	})

	t.Run("Int64", func(t *testing.T) {
		id, err := ParseIdentifier[int64](location)
		require.NoError(t, err)
		assert.Equal(t, int64(123), id)
	})

	t.Run("String", func(t *testing.T) {
		id, err := ParseIdentifier[string](location)
		require.NoError(t, err)
		assert.Equal(t, "123", id)
	})

	t.Run("BareSegment", func(t *testing.T) {
		id, err := ParseIdentifier[int64]("77")
		require.NoError(t, err)
		assert.Equal(t, int64(77), id)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := ParseIdentifier[float64](location)
		assert.ErrorIs(t, err, ErrUnsupportedIdentifier)

		_, err = ParseIdentifier[uint](location)
		assert.ErrorIs(t, err, ErrUnsupportedIdentifier)
	})

	t.Run("Malformed", func(t *testing.T) {
		tests := []struct {
			name     string
			location string
			parse    func(string) error
		}{
			{"NotANumber", "/posts/abc", func(l string) error { _, err := ParseIdentifier[int64](l); return err }},
			{"Int32Overflow", "/posts/4294967296", func(l string) error { _, err := ParseIdentifier[int32](l); return err }},
			{"TrailingSlash", "/posts/", func(l string) error { _, err := ParseIdentifier[string](l); return err }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.ErrorIs(t, tt.parse(tt.location), ErrMalformedLocation)
			})
		}
	})
}

func TestParseID(t *testing.T) {
	id, err := ParseID[int64]("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID[int64]("abc")
	assert.ErrorIs(t, err, ErrMalformedID)
	assert.NotErrorIs(t, err, ErrMalformedLocation)
	assert.EqualError(t, err, `malformed identifier "abc": invalid syntax`)

	_, err = ParseID[int32]("4294967296")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = ParseID[string]("")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = ParseID[float32]("1")
	assert.ErrorIs(t, err, ErrUnsupportedIdentifier)
}

func TestResource(t *testing.T) {
	assert.Equal(t, "Unknown error", Error(1, "").Message)
	assert.Equal(t, "boom", Error(1, "boom").Message)
	assert.False(t, Loading(1).Terminal())
	assert.True(t, Success(1).Terminal())
	assert.True(t, Error(1, "x").Terminal())
}

func TestResponse(t *testing.T) {
	t.Run("Successful", func(t *testing.T) {
		for code, want := range map[int]bool{199: false, 200: true, 201: true, 204: true, 299: true, 300: false, 404: false} {
			r := &Response[int]{StatusCode: code}
			assert.Equal(t, want, r.Successful(), "status %d", code)
		}
	})

	t.Run("LocationIsCaseInsensitive", func(t *testing.T) {
		r := &Response[int]{Header: http.Header{"LOCATION": []string{"/x/1"}}}
		loc, found := r.Location()
		assert.True(t, found)
		assert.Equal(t, "/x/1", loc)

		_, found = (&Response[int]{}).Location()
		assert.False(t, found)
	})

	t.Run("ServerMessagePrecedence", func(t *testing.T) {
		assert.Equal(t, "body", serverMessage(&Response[int]{StatusCode: 500, Reason: "Internal Server Error", ErrorBody: "body"}))
		assert.Equal(t, "Internal Server Error", serverMessage(&Response[int]{StatusCode: 500, Reason: "Internal Server Error", ErrorBody: "  "}))
		assert.Equal(t, "500", serverMessage(&Response[int]{StatusCode: 500}))
	})
}
