// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that built index files can be published to,
// and fetched from, an S3 compatible bucket. Both AWS S3 and self-hosted MinIO
// instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
