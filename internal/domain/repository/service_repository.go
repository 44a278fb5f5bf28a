// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrServiceNotFound is returned when no service matches the id.
	ErrServiceNotFound = errors.New("service not found")
	// ErrSubCategoryNotFound is returned when no sub-category matches the id.
	ErrSubCategoryNotFound = errors.New("sub-category not found")
)

// ServiceRepository defines the data access for service listings.
type ServiceRepository interface {
	// Create persists a new service and fills in its generated fields.
	Create(ctx context.Context, service *entity.Service) error

	// FindByID loads one service with the requested relations.
	FindByID(ctx context.Context, id uuid.UUID, expand entity.Expand) (*entity.Service, error)

	// Exists reports whether a service with the id is stored.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Find loads every service matching the filter with the requested relations.
	Find(ctx context.Context, filter entity.ServiceFilter, expand entity.Expand) ([]*entity.Service, error)

	// Update applies the set fields of update and returns the stored result.
	Update(ctx context.Context, id uuid.UUID, update *entity.ServiceUpdate) (*entity.Service, error)

	// Delete removes the service row.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of stored services.
	Count(ctx context.Context) (int64, error)
}
