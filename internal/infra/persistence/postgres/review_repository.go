package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindByServiceID returns the reviews of a service oldest first, with reviewers.
func (repo *reviewRepository) FindByServiceID(ctx context.Context, serviceID uuid.UUID) ([]*entity.RatingAndReview, error) {
	var reviewModels []*model.RatingAndReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("User.Profile").
		Where("service_id = ?", serviceID).
		Order(orderByCreatedAt).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by service")
	}

	reviews := make([]*entity.RatingAndReview, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}
