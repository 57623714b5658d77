package storage_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"jsonplaceholder/core/storage"
	"jsonplaceholder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"ValidConfig", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Region: "us-east-1"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := mocks.NewClient(t)
		m.On("BucketExists", ctx, "b").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "b"))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := mocks.NewClient(t)
		m.On("BucketExists", ctx, "b").Return(false, nil)
		m.On("MakeBucket", ctx, "b", minio.MakeBucketOptions{}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "b"))
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := mocks.NewClient(t)
		m.On("BucketExists", ctx, "b").Return(false, errors.New("denied"))

		assert.ErrorContains(t, storage.EnsureBucket(ctx, m, "b"), "denied")
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: minio.NoSuchKey}))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: minio.NoSuchBucket}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
	assert.False(t, storage.IsNotFound(nil))
}

func TestIsNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("read settings: %w", minio.ErrorResponse{Code: minio.NoSuchKey})
	assert.True(t, storage.IsNotFound(err))
}
