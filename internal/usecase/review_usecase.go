package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the review read use cases
type ReviewUsecase interface {
	// GetReviewPage returns one page of a listing's reviews. Pages outside the
	// range yield an empty page, not an error.
	GetReviewPage(ctx context.Context, serviceID uuid.UUID, page int) (*entity.ReviewPage, error)
}
