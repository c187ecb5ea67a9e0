// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO, AWS S3,
// DigitalOcean Spaces, ArvanCloud).
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the collaborator contract this service needs from an
// object store: single-shot put, presigned transfer URLs, delete, in-bucket
// copy, and region discovery for public-URL construction.
type ObjectStorage interface {
	// Put streams data to the store under the given key as one atomic write.
	// size must be the exact byte count of reader.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// PresignedPut returns a time-limited URL granting a single PUT of the
	// object at key. When contentType is non-empty the signature covers the
	// Content-Type header, so the eventual upload must send the same value.
	PresignedPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)

	// PresignedGet returns a time-limited URL granting read access to key.
	PresignedGet(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Delete removes the object identified by key.
	Delete(ctx context.Context, key string) error

	// Copy duplicates the object at srcKey to dstKey within the bucket.
	Copy(ctx context.Context, srcKey, dstKey string) error

	// BucketRegion returns the region the bucket lives in. An empty string
	// means the store did not report one.
	BucketRegion(ctx context.Context) (string, error)

	// Bucket returns the bucket name this store is bound to.
	Bucket() string
}
