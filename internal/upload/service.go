// Package upload implements the file-upload layer over object storage:
// object-key construction, server-mediated and presigned uploads, access-URL
// resolution, and best-effort delete/copy helpers.
package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/filedrop/service/internal/storage"
)

const (
	// DefaultDownloadExpiry is the signed download URL lifetime used when the
	// caller does not override it: 10080 minutes (7 days).
	DefaultDownloadExpiry = 7 * 24 * time.Hour

	// defaultSignedURLExpiry applies when Options.SignedURLExpiry is unset.
	defaultSignedURLExpiry = 15 * time.Minute

	// fallbackRegion is used when the store reports an empty bucket region.
	fallbackRegion = "us-east-1"

	defaultContentType = "application/octet-stream"
)

// Options configures a Service. All fields are read-only after construction.
type Options struct {
	// Prefix is joined as the outermost segment of every object key.
	Prefix string
	// SignedURLExpiry is the lifetime of presigned upload URLs and of the
	// signed-read branch of access-URL resolution. Defaults to 15 minutes.
	SignedURLExpiry time.Duration
	// UsePublicURLs switches access-URL resolution from signed read URLs to
	// permanent public URLs. Requires the bucket to allow public reads.
	UsePublicURLs bool
}

// Service orchestrates uploads and URL resolution against an object store.
// It holds no per-request state; a single Service is shared by all requests.
type Service struct {
	store storage.ObjectStorage
	opts  Options

	// Bucket region is looked up once and memoized on success only, so a
	// transient lookup failure is retried by the next caller.
	regionMu sync.Mutex
	region   string
}

// NewService creates a Service over the given store.
func NewService(store storage.ObjectStorage, opts Options) *Service {
	if opts.SignedURLExpiry <= 0 {
		opts.SignedURLExpiry = defaultSignedURLExpiry
	}
	return &Service{store: store, opts: opts}
}

// SizeLimitError reports a declared file size above the allowed ceiling.
type SizeLimitError struct {
	Size  int64
	Limit int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("file size %.2f MB exceeds the maximum allowed size of %.2f MB",
		mebibytes(e.Size), mebibytes(e.Limit))
}

func mebibytes(n int64) float64 {
	return float64(n) / (1 << 20)
}

// checkSize rejects declared sizes over the limit before any storage call.
// A non-positive limit disables the check.
func checkSize(size, limit int64) error {
	if limit > 0 && size > limit {
		return &SizeLimitError{Size: size, Limit: limit}
	}
	return nil
}

// UploadInput describes one server-mediated upload. Body is read exactly once
// and must stay open for the duration of the call; closing it is the caller's
// responsibility.
type UploadInput struct {
	Body             io.Reader
	FileName         string
	ContentType      string
	Size             int64
	Folder           string
	CustomFileName   string
	PreserveFilename bool
	MaxFileSize      int64
}

// UploadResult is the successful outcome of a server-mediated upload.
type UploadResult struct {
	Key string
	URL string
}

// Upload streams the file into storage as a single atomic put and resolves an
// access URL for it. Size validation happens before storage is touched, and
// storage failures surface with the underlying error text; nothing is retried.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if err := checkSize(in.Size, in.MaxFileSize); err != nil {
		return nil, err
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	key := BuildKey(in.FileName, in.Folder, in.CustomFileName, in.PreserveFilename, s.opts.Prefix)

	if err := s.store.Put(ctx, key, in.Body, in.Size, contentType); err != nil {
		return nil, err
	}

	url, err := s.AccessURL(ctx, key)
	if err != nil {
		return nil, err
	}

	return &UploadResult{Key: key, URL: url}, nil
}

// SignedUploadInput describes a deferred upload the caller will perform itself
// against a presigned URL. Size is the declared size of the not-yet-transferred
// file; it is validated against MaxFileSize exactly like a direct upload.
type SignedUploadInput struct {
	FileName         string
	ContentType      string
	Size             int64
	Folder           string
	CustomFileName   string
	PreserveFilename bool
	MaxFileSize      int64
}

// SignedUpload is the outcome of PrepareSignedUpload. PublicURL is optimistic:
// it resolves the eventual object and is only valid once the caller completes
// the transfer through UploadURL.
type SignedUpload struct {
	UploadURL string
	Key       string
	PublicURL string
}

// PrepareSignedUpload builds the object key and issues a write-capable signed
// URL for it, scoped to the declared content type. Storage is not mutated; the
// object exists only after the caller performs the transfer out-of-band.
func (s *Service) PrepareSignedUpload(ctx context.Context, in SignedUploadInput) (*SignedUpload, error) {
	if err := checkSize(in.Size, in.MaxFileSize); err != nil {
		return nil, err
	}

	key := BuildKey(in.FileName, in.Folder, in.CustomFileName, in.PreserveFilename, s.opts.Prefix)

	uploadURL, err := s.store.PresignedPut(ctx, key, in.ContentType, s.opts.SignedURLExpiry)
	if err != nil {
		return nil, err
	}

	accessURL, err := s.AccessURL(ctx, key)
	if err != nil {
		return nil, err
	}

	return &SignedUpload{
		UploadURL: uploadURL,
		Key:       key,
		PublicURL: accessURL,
	}, nil
}

// AccessURL resolves the URL clients use to fetch key, switched by the
// configured public-URL policy. The same policy governs the Upload success
// path and the Copy result URL.
func (s *Service) AccessURL(ctx context.Context, key string) (string, error) {
	if s.opts.UsePublicURLs {
		return s.PublicURL(ctx, key)
	}
	return s.DownloadURL(ctx, key, s.opts.SignedURLExpiry)
}

// DownloadURL returns a time-limited signed read URL for key. A non-positive
// expiry selects DefaultDownloadExpiry.
func (s *Service) DownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultDownloadExpiry
	}
	return s.store.PresignedGet(ctx, key, expiry)
}

// PublicURL constructs the permanent public URL for key from the bucket name
// and its resolved region. It is only reachable when the bucket allows public
// reads.
func (s *Service) PublicURL(ctx context.Context, key string) (string, error) {
	region, err := s.bucketRegion(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.store.Bucket(), region, key), nil
}

// Delete removes key from storage. Deletion is best-effort cleanup: failures
// are logged for operators and swallowed to false, never raised.
func (s *Service) Delete(ctx context.Context, key string) bool {
	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("upload: delete %q failed: %v", key, err)
		return false
	}
	return true
}

// Copy duplicates srcKey to dstKey and resolves an access URL for the
// destination. On copy failure it returns (false, "") without raising. When
// the copy succeeded but URL resolution failed, it still reports success with
// an empty URL — the object was written and the caller must know.
func (s *Service) Copy(ctx context.Context, srcKey, dstKey string) (bool, string) {
	if err := s.store.Copy(ctx, srcKey, dstKey); err != nil {
		log.Printf("upload: copy %q to %q failed: %v", srcKey, dstKey, err)
		return false, ""
	}

	url, err := s.AccessURL(ctx, dstKey)
	if err != nil {
		log.Printf("upload: resolve url for copied object %q failed: %v", dstKey, err)
		return true, ""
	}
	return true, url
}

func (s *Service) bucketRegion(ctx context.Context) (string, error) {
	s.regionMu.Lock()
	defer s.regionMu.Unlock()

	if s.region != "" {
		return s.region, nil
	}

	region, err := s.store.BucketRegion(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve bucket region: %w", err)
	}
	if region == "" {
		region = fallbackRegion
	}
	s.region = region
	return region, nil
}
