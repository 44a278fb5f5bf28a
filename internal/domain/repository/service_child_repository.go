package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceChildRepository removes collections that hang off a service.
type ServiceChildRepository interface {
	// DeleteByServiceID removes every row of the relation owned by serviceID
	// and returns how many were removed.
	DeleteByServiceID(ctx context.Context, relation entity.Relation, serviceID uuid.UUID) (int64, error)
}
