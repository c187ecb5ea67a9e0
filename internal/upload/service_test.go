package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage is an in-memory ObjectStorage that records calls and fails on
// demand. Safe for concurrent use.
type fakeStorage struct {
	mu sync.Mutex

	bucket    string
	region    string
	regionErr error

	putErr        error
	presignPutErr error
	presignGetErr error
	deleteErr     error
	copyErr       error

	putKeys         []string
	putContentTypes []string
	presignPutCalls int
	regionCalls     int
	lastGetExpiry   time.Duration
	copied          [][2]string
	deleted         []string
}

func (f *fakeStorage) Put(_ context.Context, key string, reader io.Reader, _ int64, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	_, _ = io.Copy(io.Discard, reader)
	f.putKeys = append(f.putKeys, key)
	f.putContentTypes = append(f.putContentTypes, contentType)
	return nil
}

func (f *fakeStorage) PresignedPut(_ context.Context, key, contentType string, expiry time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.presignPutErr != nil {
		return "", f.presignPutErr
	}
	f.presignPutCalls++
	return fmt.Sprintf("https://storage.test/%s?verb=put&ct=%s&expiry=%s", key, contentType, expiry), nil
}

func (f *fakeStorage) PresignedGet(_ context.Context, key string, expiry time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.presignGetErr != nil {
		return "", f.presignGetErr
	}
	f.lastGetExpiry = expiry
	return fmt.Sprintf("https://storage.test/%s?verb=get&expiry=%s", key, expiry), nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) Copy(_ context.Context, srcKey, dstKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.copyErr != nil {
		return f.copyErr
	}
	f.copied = append(f.copied, [2]string{srcKey, dstKey})
	return nil
}

func (f *fakeStorage) BucketRegion(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regionCalls++
	if f.regionErr != nil {
		return "", f.regionErr
	}
	return f.region, nil
}

func (f *fakeStorage) Bucket() string {
	return f.bucket
}

func newFake() *fakeStorage {
	return &fakeStorage{bucket: "media", region: "eu-west-1"}
}

func TestUpload_RejectsOversizedFileBeforeStorage(t *testing.T) {
	fake := newFake()
	svc := NewService(fake, Options{})

	_, err := svc.Upload(context.Background(), UploadInput{
		Body:        strings.NewReader("data"),
		FileName:    "big.bin",
		Size:        2000,
		MaxFileSize: 1000,
	})

	require.Error(t, err)
	var sizeErr *SizeLimitError
	require.ErrorAs(t, err, &sizeErr)
	assert.Contains(t, err.Error(), "exceeds the maximum allowed size")
	assert.Contains(t, err.Error(), "MB")
	assert.Empty(t, fake.putKeys, "storage must not be contacted")
}

func TestSizeLimitError_FormatsBothSizesInMB(t *testing.T) {
	err := &SizeLimitError{Size: 3 << 20, Limit: 1 << 20}
	assert.Equal(t, "file size 3.00 MB exceeds the maximum allowed size of 1.00 MB", err.Error())

	half := &SizeLimitError{Size: 5<<20 + 512<<10, Limit: 2 << 20}
	assert.Equal(t, "file size 5.50 MB exceeds the maximum allowed size of 2.00 MB", half.Error())
}

func TestUpload_Success(t *testing.T) {
	fake := newFake()
	svc := NewService(fake, Options{Prefix: "uploads"})

	result, err := svc.Upload(context.Background(), UploadInput{
		Body:             strings.NewReader("hello"),
		FileName:         "report.pdf",
		ContentType:      "application/pdf",
		Size:             5,
		Folder:           "docs",
		PreserveFilename: true,
		MaxFileSize:      1 << 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "uploads/docs/report.pdf", result.Key)
	require.Len(t, fake.putKeys, 1)
	assert.Equal(t, "uploads/docs/report.pdf", fake.putKeys[0])
	assert.Equal(t, "application/pdf", fake.putContentTypes[0])

	// Signed-read policy by default, with the 15 minute default expiry.
	assert.Contains(t, result.URL, "verb=get")
	assert.Equal(t, 15*time.Minute, fake.lastGetExpiry)
}

func TestUpload_DefaultsContentType(t *testing.T) {
	fake := newFake()
	svc := NewService(fake, Options{})

	_, err := svc.Upload(context.Background(), UploadInput{
		Body:             strings.NewReader("x"),
		FileName:         "blob",
		Size:             1,
		PreserveFilename: true,
	})

	require.NoError(t, err)
	require.Len(t, fake.putContentTypes, 1)
	assert.Equal(t, "application/octet-stream", fake.putContentTypes[0])
}

func TestUpload_StorageFailureSurfacesError(t *testing.T) {
	fake := newFake()
	fake.putErr = errors.New("access denied")
	svc := NewService(fake, Options{})

	result, err := svc.Upload(context.Background(), UploadInput{
		Body:             strings.NewReader("x"),
		FileName:         "a.txt",
		Size:             1,
		PreserveFilename: true,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "access denied")
}

func TestPrepareSignedUpload_RejectsOversizedFileBeforeStorage(t *testing.T) {
	fake := newFake()
	svc := NewService(fake, Options{})

	_, err := svc.PrepareSignedUpload(context.Background(), SignedUploadInput{
		FileName:    "big.bin",
		Size:        2000,
		MaxFileSize: 1000,
	})

	require.Error(t, err)
	var sizeErr *SizeLimitError
	require.ErrorAs(t, err, &sizeErr)
	assert.Zero(t, fake.presignPutCalls, "storage must not be contacted")
}

func TestPrepareSignedUpload_PublicURLRoundTrip(t *testing.T) {
	fake := newFake()
	svc := NewService(fake, Options{Prefix: "uploads", UsePublicURLs: true})

	signed, err := svc.PrepareSignedUpload(context.Background(), SignedUploadInput{
		FileName:         "report.pdf",
		ContentType:      "application/pdf",
		Folder:           "docs",
		PreserveFilename: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "uploads/docs/report.pdf", signed.Key)
	assert.Contains(t, signed.UploadURL, "verb=put")
	assert.Contains(t, signed.UploadURL, "ct=application/pdf")
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com/uploads/docs/report.pdf", signed.PublicURL)

	// After the (simulated) out-of-band transfer, resolving the same key must
	// agree with the URL handed out at preparation time.
	resolved, err := svc.AccessURL(context.Background(), signed.Key)
	require.NoError(t, err)
	assert.Equal(t, signed.PublicURL, resolved)

	assert.Equal(t, 1, fake.regionCalls, "region lookup is memoized")
}

func TestPrepareSignedUpload_SigningFailure(t *testing.T) {
	fake := newFake()
	fake.presignPutErr = errors.New("signing key expired")
	svc := NewService(fake, Options{})

	signed, err := svc.PrepareSignedUpload(context.Background(), SignedUploadInput{
		FileName:         "a.txt",
		PreserveFilename: true,
	})

	require.Error(t, err)
	assert.Nil(t, signed)
	assert.Contains(t, err.Error(), "signing key expired")
}

func TestPublicURL_EmptyRegionFallsBack(t *testing.T) {
	fake := newFake()
	fake.region = ""
	svc := NewService(fake, Options{UsePublicURLs: true})

	url, err := svc.PublicURL(context.Background(), "docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "https://media.s3.us-east-1.amazonaws.com/docs/a.txt", url)
}

func TestPublicURL_RegionLookupFailureIsRetried(t *testing.T) {
	fake := newFake()
	fake.regionErr = errors.New("timeout")
	svc := NewService(fake, Options{UsePublicURLs: true})

	_, err := svc.PublicURL(context.Background(), "a.txt")
	require.Error(t, err)

	// A transient failure must not poison subsequent calls.
	fake.mu.Lock()
	fake.regionErr = nil
	fake.mu.Unlock()

	url, err := svc.PublicURL(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.Contains(t, url, "eu-west-1")
	assert.Equal(t, 2, fake.regionCalls)
}

func TestDownloadURL_DefaultExpiry(t *testing.T) {
	fake := newFake()
	svc := NewService(fake, Options{})

	_, err := svc.DownloadURL(context.Background(), "docs/a.txt", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDownloadExpiry, fake.lastGetExpiry)

	_, err = svc.DownloadURL(context.Background(), "docs/a.txt", 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, fake.lastGetExpiry)
}

func TestDelete_SwallowsFailures(t *testing.T) {
	fake := newFake()
	assert.True(t, NewService(fake, Options{}).Delete(context.Background(), "a.txt"))

	fake.deleteErr = errors.New("no such key")
	assert.False(t, NewService(fake, Options{}).Delete(context.Background(), "missing.txt"))
}

func TestCopy(t *testing.T) {
	t.Run("failure returns false and no url", func(t *testing.T) {
		fake := newFake()
		fake.copyErr = errors.New("no such source")
		ok, url := NewService(fake, Options{}).Copy(context.Background(), "missing.txt", "dst.txt")
		assert.False(t, ok)
		assert.Empty(t, url)
	})

	t.Run("success resolves destination url", func(t *testing.T) {
		fake := newFake()
		svc := NewService(fake, Options{UsePublicURLs: true})
		ok, url := svc.Copy(context.Background(), "src.txt", "dst.txt")
		assert.True(t, ok)
		assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com/dst.txt", url)
		require.Len(t, fake.copied, 1)
		assert.Equal(t, [2]string{"src.txt", "dst.txt"}, fake.copied[0])
	})

	t.Run("copy succeeded but resolve failed still reports success", func(t *testing.T) {
		fake := newFake()
		fake.presignGetErr = errors.New("signer down")
		ok, url := NewService(fake, Options{}).Copy(context.Background(), "src.txt", "dst.txt")
		assert.True(t, ok)
		assert.Empty(t, url)
	})
}

func TestUpload_ConcurrentDistinctKeys(t *testing.T) {
	fake := newFake()
	svc := NewService(fake, Options{Prefix: "uploads"})

	const workers = 16
	var wg sync.WaitGroup
	results := make([]string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := svc.Upload(context.Background(), UploadInput{
				Body:             strings.NewReader("x"),
				FileName:         fmt.Sprintf("file-%d.txt", i),
				Size:             1,
				PreserveFilename: true,
			})
			if err == nil {
				results[i] = result.Key
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i, key := range results {
		require.NotEmpty(t, key, "upload %d failed", i)
		assert.False(t, seen[key], "key %q produced twice", key)
		seen[key] = true
	}
	assert.Len(t, fake.putKeys, workers)
}
