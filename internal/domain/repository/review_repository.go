package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository reads the reviews attached to a service.
type ReviewRepository interface {
	// FindByServiceID returns all reviews of a service in creation order,
	// each with its reviewer resolved.
	FindByServiceID(ctx context.Context, serviceID uuid.UUID) ([]*entity.RatingAndReview, error)
}
