package service

import (
	"context"
	"io"
)

// ImageFile is an uploaded image as received from the client.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadResult describes a stored image.
type UploadResult struct {
	SecureURL string
	Key       string
}

// ImageUploader stores listing images in an object store.
type ImageUploader interface {
	// Upload stores file under folder. nameHint, when not empty, is slugged
	// into the object key.
	Upload(ctx context.Context, file *ImageFile, folder, nameHint string) (*UploadResult, error)

	// Delete removes the object with key. A missing object is not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL returns the object key of a URL produced by Upload.
	KeyFromURL(url string) (string, bool)
}
