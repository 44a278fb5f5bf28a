package storage

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"go.uber.org/fx"
)

// UploaderParams holds dependencies for ImageUploader, injected by Fx
type UploaderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImageUploader creates an ImageUploader based on configuration
func NewImageUploader(params UploaderParams) (service.ImageUploader, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("storage is not configured")
	}

	switch cfg.Provider {
	case constants.StorageProviderBlob, "":
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		bucket, err := OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return bucket.Close()
			},
		})
		logger.Info("Using blob storage for images", slog.String("bucket_url", cfg.BucketURL))

		return NewBlobUploader(bucket, cfg.PublicBaseURL, logger), nil

	case constants.StorageProviderMinio:
		if cfg.Minio == nil || cfg.Minio.Endpoint == "" || cfg.Minio.Bucket == "" {
			return nil, errors.New("minio endpoint and bucket are required for minio provider")
		}

		client, err := NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				created, err := EnsureBucket(ctx, client, cfg.Minio.Bucket, cfg.Minio.Region)
				if err != nil {
					return err
				}
				logger.Info("S3 storage initialized",
					slog.String("endpoint", cfg.Minio.Endpoint),
					slog.String("bucket", cfg.Minio.Bucket),
					slog.Bool("bucket_created", created),
				)

				return nil
			},
		})

		return NewMinioUploader(client, cfg.Minio, logger), nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
