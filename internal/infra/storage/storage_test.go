package storage

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

var uuidPattern = `[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		nameHint string
		fileName string
		pattern  string
	}{
		{"slugged hint", "services", "Deep Cleaning & Sanitising", "photo.JPG", `^services/deep-cleaning-and-sanitising-` + uuidPattern + `\.jpg$`},
		{"no hint", "services", "", "photo.png", `^services/image-` + uuidPattern + `\.png$`},
		{"no extension", "/services/", "AC Repair", "blob", `^services/ac-repair-` + uuidPattern + `$`},
		{"no folder", "", "Plumbing", "x.webp", `^plumbing-` + uuidPattern + `\.webp$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Regexp(t, regexp.MustCompile(tt.pattern), objectKey(tt.folder, tt.nameHint, tt.fileName))
		})
	}
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		url    string
		want   string
		wantOK bool
	}{
		{"inside base", "https://cdn.example.com/", "https://cdn.example.com/services/a.png", "services/a.png", true},
		{"other host", "https://cdn.example.com", "https://other.example.com/services/a.png", "", false},
		{"base only", "https://cdn.example.com", "https://cdn.example.com/", "", false},
		{"no base", "", "https://cdn.example.com/a.png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyFromURL(tt.base, tt.url)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlobUploader_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := NewBlobUploader(bucket, "https://cdn.example.com", testLogger())

	result, err := uploader.Upload(ctx, &service.ImageFile{
		Name:        "thumb.png",
		ContentType: "image/png",
		Reader:      strings.NewReader("png-bytes"),
	}, "services", "Home Painting")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Key, "services/home-painting-"))
	assert.Equal(t, "https://cdn.example.com/"+result.Key, result.SecureURL)

	stored, err := bucket.ReadAll(ctx, result.Key)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))

	attrs, err := bucket.Attributes(ctx, result.Key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	key, ok := uploader.KeyFromURL(result.SecureURL)
	require.True(t, ok)
	assert.Equal(t, result.Key, key)

	require.NoError(t, uploader.Delete(ctx, key))
	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting again is not an error
	assert.NoError(t, uploader.Delete(ctx, key))
}

func TestBlobUploader_UploadWithoutFile(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := NewBlobUploader(bucket, "https://cdn.example.com", testLogger())

	_, err := uploader.Upload(context.Background(), nil, "services", "x")

	assert.Error(t, err)
}

// failingReader yields data and then fails.
type failingReader struct {
	data []byte
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("connection reset by peer")
	}
	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}

func TestBlobUploader_FailedCopyLeavesNoObject(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := NewBlobUploader(bucket, "https://cdn.example.com", testLogger())

	result, err := uploader.Upload(ctx, &service.ImageFile{
		Name:        "thumb.png",
		ContentType: "image/png",
		Reader:      &failingReader{data: []byte("partial-bytes")},
	}, "services", "Home Painting")

	require.Error(t, err)
	assert.Nil(t, result)

	iter := bucket.List(nil)
	obj, err := iter.Next(ctx)
	assert.ErrorIs(t, err, io.EOF, "unexpected object %v", obj)
}

func TestMinioBaseURL(t *testing.T) {
	assert.Equal(t, "https://files.example.com", minioBaseURL(&config.MinioConfig{PublicURL: "https://files.example.com"}))
	assert.Equal(t, "http://localhost:9000/marketplace", minioBaseURL(&config.MinioConfig{Endpoint: "localhost:9000", Bucket: "marketplace"}))
	assert.Equal(t, "https://s3.example.com/b", minioBaseURL(&config.MinioConfig{Endpoint: "s3.example.com", Bucket: "b", UseSSL: true}))
}

func TestNewImageUploader(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StorageConfig
		wantErr bool
	}{
		{"memory bucket", &config.StorageConfig{Provider: "blob", BucketURL: "mem://"}, false},
		{"file bucket", &config.StorageConfig{Provider: "blob", BucketURL: "file://" + t.TempDir()}, false},
		{"unknown scheme", &config.StorageConfig{Provider: "blob", BucketURL: "ftp://bucket"}, true},
		{"minio without endpoint", &config.StorageConfig{Provider: "minio"}, true},
		{"unknown provider", &config.StorageConfig{Provider: "ipfs"}, true},
		{"not configured", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			uploader, err := NewImageUploader(UploaderParams{
				Lc:     lc,
				Config: &config.Config{Storage: tt.cfg},
				Logger: testLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, uploader)
			lc.RequireStart().RequireStop()
		})
	}
}
