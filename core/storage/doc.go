// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface used by the
// settings object backend. Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - EnsureBucket: creates the target bucket on first write.
//   - IsNotFound: recognizes missing bucket and missing key errors.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "jsonplaceholder")
package storage
