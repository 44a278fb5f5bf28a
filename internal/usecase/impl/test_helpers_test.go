package impl

import (
	"io"
	"log/slog"

	"marketplace/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			ReviewPageSize:  5,
			ThumbnailFolder: "services",
		},
		Mail: &config.MailConfig{
			Subject: "Email Verification - Rehaabit",
		},
	}
}
