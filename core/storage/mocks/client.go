// Package mocks provides testify mocks for the storage package.
package mocks

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of storage.Client.
type Client struct {
	mock.Mock
}

// NewClient returns a mock whose expectations are asserted when t ends.
func NewClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *Client {
	m := &Client{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Object wraps data as the body returned by GetObject.
func Object(data []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(data))
}

// NotFound is the error the server returns for a missing key or bucket.
func NotFound(code string) error {
	return minio.ErrorResponse{Code: code, StatusCode: 404}
}

func (m *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	args := m.Called(ctx, bucket)
	return args.Bool(0), args.Error(1)
}

func (m *Client) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	return m.Called(ctx, bucket, opts).Error(0)
}

func (m *Client) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucket, object, reader, size, opts)
	info, _ := args.Get(0).(minio.UploadInfo)
	return info, args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucket, object string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucket, object, opts)
	body, _ := args.Get(0).(io.ReadCloser)
	return body, args.Error(1)
}

func (m *Client) RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error {
	return m.Called(ctx, bucket, object, opts).Error(0)
}
