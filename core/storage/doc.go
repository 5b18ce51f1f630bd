// Package storage provides an abstraction layer for the report archive.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the comparison export path needs: ensuring the archive bucket
// exists, uploading generated report bundles, and listing or removing old
// ones. This abstraction supports both AWS S3 and self-hosted MinIO
// instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config)
package storage
