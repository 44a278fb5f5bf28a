// Package usecase defines the application's business operations.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// CreateServiceInput carries the fields of a new listing.
type CreateServiceInput struct {
	Name            string
	Description     string
	TimeToComplete  string
	Price           float64
	Warranty        string
	Status          entity.ServiceStatus
	PriceStatus     entity.PriceStatus
	MetaTitle       string
	MetaDescription string
	CategoryID      uuid.UUID
	SubCategoryID   uuid.UUID
	Thumbnail       *service.ImageFile
}

// CreateServiceOutput is the stored listing and its sub-category after the append.
type CreateServiceOutput struct {
	Service            *entity.Service
	UpdatedSubCategory *entity.SubCategory
}

// UpdateServiceInput is a partial update. Thumbnail, when present, replaces the stored image.
type UpdateServiceInput struct {
	ServiceID uuid.UUID
	Fields    entity.ServiceUpdate
	Thumbnail *service.ImageFile
}

// CatalogUsecase defines the listing management use cases
type CatalogUsecase interface {
	// CreateService uploads the thumbnail, stores the listing and links it to its sub-category
	CreateService(ctx context.Context, input *CreateServiceInput) (*CreateServiceOutput, error)

	// UpdateService applies the set fields of a partial update
	UpdateService(ctx context.Context, input *UpdateServiceInput) (*entity.Service, error)

	// DeleteService unlinks and removes a listing with its cascaded collections
	DeleteService(ctx context.Context, serviceID, subCategoryID uuid.UUID) (*entity.Service, error)

	// GetService returns one listing fully expanded
	GetService(ctx context.Context, serviceID uuid.UUID) (*entity.Service, error)

	// ListServices returns every listing fully expanded
	ListServices(ctx context.Context) ([]*entity.Service, error)

	// ListPublishedServices returns Published listings
	ListPublishedServices(ctx context.Context) ([]*entity.Service, error)

	// ListPublishedUnpricedServices returns Published listings with a zero price
	ListPublishedUnpricedServices(ctx context.Context) ([]*entity.Service, error)

	// CountServices returns the number of listings
	CountServices(ctx context.Context) (int64, error)

	// GenerateShareQR renders a QR code linking to the public page of a listing
	GenerateShareQR(ctx context.Context, serviceID uuid.UUID) ([]byte, error)
}
