package storage

import (
	"context"
	"io"
	"log/slog"

	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/util"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobUploader stores images in a gocloud.dev bucket.
type blobUploader struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// OpenBucket opens a bucket URL such as file:///var/uploads, mem:// or gs://bucket.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return bucket, nil
}

// NewBlobUploader serves objects of bucket under publicBaseURL.
func NewBlobUploader(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ImageUploader {
	return &blobUploader{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Upload writes file to the bucket under folder.
func (u *blobUploader) Upload(ctx context.Context, file *service.ImageFile, folder, nameHint string) (*service.UploadResult, error) {
	if file == nil || file.Reader == nil {
		return nil, errors.New("no image to upload")
	}

	key := objectKey(folder, nameHint, file.Name)
	// Cancelling the writer context before Close aborts the write.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := u.bucket.NewWriter(wctx, key, &blob.WriterOptions{ContentType: file.ContentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open object writer")
	}

	written, err := io.Copy(writer, file.Reader)
	if err != nil {
		cancel()
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write object")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to commit object")
	}

	u.logger.DebugContext(ctx, "Image uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(written)),
	)

	return &service.UploadResult{
		SecureURL: joinURL(u.publicBaseURL, key),
		Key:       key,
	}, nil
}

// Delete removes key. Missing objects are ignored.
func (u *blobUploader) Delete(ctx context.Context, key string) error {
	if err := u.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// KeyFromURL maps a public URL back to its object key.
func (u *blobUploader) KeyFromURL(url string) (string, bool) {
	return keyFromURL(u.publicBaseURL, url)
}
