package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements ObjectStorage using a MinIO (or any S3-compatible)
// backend.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates a MinIO client and verifies that the configured
// bucket exists. Bucket provisioning is owned by the hosting application; a
// missing bucket is a startup error here, not something to create on the fly.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket, region string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}

	return &MinioStorage{
		client: client,
		bucket: bucket,
	}, nil
}

// Put streams reader to the store under key. size must be the exact byte count
// (pass -1 only if the size is genuinely unknown — the client will buffer it).
func (s *MinioStorage) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// PresignedPut returns a write-capable signed URL for key. A non-empty
// contentType is folded into the signature, binding the eventual PUT to it.
func (s *MinioStorage) PresignedPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	var u *url.URL
	var err error
	if contentType != "" {
		headers := http.Header{}
		headers.Set("Content-Type", contentType)
		u, err = s.client.PresignHeader(ctx, http.MethodPut, s.bucket, key, expiry, url.Values{}, headers)
	} else {
		u, err = s.client.PresignedPutObject(ctx, s.bucket, key, expiry)
	}
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}
	return u.String(), nil
}

// PresignedGet returns a read-capable signed URL for key.
func (s *MinioStorage) PresignedGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign get %q: %w", key, err)
	}
	return u.String(), nil
}

// Delete removes the object at key from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// Copy duplicates the object at srcKey to dstKey within the bucket.
func (s *MinioStorage) Copy(ctx context.Context, srcKey, dstKey string) error {
	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: s.bucket, Object: srcKey},
	)
	if err != nil {
		return fmt.Errorf("copy object %q to %q: %w", srcKey, dstKey, err)
	}
	return nil
}

// BucketRegion asks the store which region the bucket lives in.
func (s *MinioStorage) BucketRegion(ctx context.Context) (string, error) {
	region, err := s.client.GetBucketLocation(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("get bucket location: %w", err)
	}
	return region, nil
}

// Bucket returns the bucket name this store is bound to.
func (s *MinioStorage) Bucket() string {
	return s.bucket
}
