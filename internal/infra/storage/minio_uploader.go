package storage

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioUploader stores images in an S3 compatible bucket.
type minioUploader struct {
	client  *minio.Client
	bucket  string
	baseURL string
	logger  *slog.Logger
}

// NewMinioClient creates the S3 client for cfg.
func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 25,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create S3 client")
	}

	return client, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket, region string) (created bool, err error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, errors.Wrap(err, "failed to check bucket")
	}
	if exists {
		return false, nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return false, errors.Wrap(err, "failed to create bucket")
	}

	return true, nil
}

// minioBaseURL is the public URL when configured, otherwise the path-style endpoint URL.
func minioBaseURL(cfg *config.MinioConfig) string {
	if cfg.PublicURL != "" {
		return cfg.PublicURL
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket
}

// NewMinioUploader stores objects in cfg.Bucket using client.
func NewMinioUploader(client *minio.Client, cfg *config.MinioConfig, logger *slog.Logger) service.ImageUploader {
	return &minioUploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: minioBaseURL(cfg),
		logger:  logger,
	}
}

// Upload streams file to the bucket under folder.
func (u *minioUploader) Upload(ctx context.Context, file *service.ImageFile, folder, nameHint string) (*service.UploadResult, error) {
	if file == nil || file.Reader == nil {
		return nil, errors.New("no image to upload")
	}

	size := file.Size
	if size <= 0 {
		size = -1
	}

	key := objectKey(folder, nameHint, file.Name)
	info, err := u.client.PutObject(ctx, u.bucket, key, file.Reader, size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload image")
	}

	u.logger.DebugContext(ctx, "Image uploaded to S3",
		slog.String("bucket", u.bucket),
		slog.String("key", key),
		slog.String("etag", info.ETag),
	)

	return &service.UploadResult{
		SecureURL: joinURL(u.baseURL, key),
		Key:       key,
	}, nil
}

// Delete removes key. S3 reports success for missing keys.
func (u *minioUploader) Delete(ctx context.Context, key string) error {
	if err := u.client.RemoveObject(ctx, u.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// KeyFromURL maps a public URL back to its object key.
func (u *minioUploader) KeyFromURL(url string) (string, bool) {
	return keyFromURL(u.baseURL, url)
}
