package settings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jsonplaceholder/core/storage"

	"github.com/minio/minio-go/v7"
)

// Backend reads and writes the raw document. Read returns nil data and no
// error when the document does not exist yet.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Remove(ctx context.Context) error
}

// FileBackend keeps the document in a local file.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return data, nil
}

func (b *FileBackend) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

func (b *FileBackend) Remove(_ context.Context) error {
	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove settings file: %w", err)
	}
	return nil
}

// ObjectBackend keeps the document as an object in a storage bucket.
type ObjectBackend struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectBackend creates a backend for bucket/object.
func NewObjectBackend(client storage.Client, bucket, object string) *ObjectBackend {
	return &ObjectBackend{client: client, bucket: bucket, object: object}
}

func (b *ObjectBackend) Read(ctx context.Context) ([]byte, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, b.object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings object: %w", err)
	}
	defer obj.Close()

	// minio reports a missing key lazily, on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings object: %w", err)
	}
	return data, nil
}

func (b *ObjectBackend) Write(ctx context.Context, data []byte) error {
	if err := storage.EnsureBucket(ctx, b.client, b.bucket); err != nil {
		return err
	}
	_, err := b.client.PutObject(ctx, b.bucket, b.object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/x-protobuf"})
	if err != nil {
		return fmt.Errorf("failed to put settings object: %w", err)
	}
	return nil
}

func (b *ObjectBackend) Remove(ctx context.Context) error {
	err := b.client.RemoveObject(ctx, b.bucket, b.object, minio.RemoveObjectOptions{})
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("failed to remove settings object: %w", err)
	}
	return nil
}
