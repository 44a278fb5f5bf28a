package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SubCategoryRepository maintains a sub-category's ordered list of services.
type SubCategoryRepository interface {
	// FindByID loads a sub-category. withServices expands its service list.
	FindByID(ctx context.Context, id uuid.UUID, withServices bool) (*entity.SubCategory, error)

	// AppendService adds serviceID at the end of the list. Appending an id
	// that is already listed is a no-op.
	AppendService(ctx context.Context, subCategoryID, serviceID uuid.UUID) error

	// RemoveService drops serviceID from the list. Removing an absent id is a no-op.
	RemoveService(ctx context.Context, subCategoryID, serviceID uuid.UUID) error
}
