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

// childModels maps each deletable relation to the model of its table.
var childModels = map[entity.Relation]any{
	entity.RelationHowDoesItWorks:   &model.HowDoesItWorkModel{},
	entity.RelationIncludes:         &model.IncludeModel{},
	entity.RelationExcludes:         &model.ExcludeModel{},
	entity.RelationFaqs:             &model.FaqModel{},
	entity.RelationRatingAndReviews: &model.RatingAndReviewModel{},
}

// serviceChildRepository implements the repository.ServiceChildRepository interface.
type serviceChildRepository struct {
	db *gorm.DB
}

// NewServiceChildRepository is the constructor for serviceChildRepository.
func NewServiceChildRepository(db *gorm.DB) repository.ServiceChildRepository {
	return &serviceChildRepository{
		db: db,
	}
}

// DeleteByServiceID removes every row of relation owned by serviceID.
func (repo *serviceChildRepository) DeleteByServiceID(ctx context.Context, relation entity.Relation, serviceID uuid.UUID) (int64, error) {
	target, ok := childModels[relation]
	if !ok {
		return 0, errors.Errorf("relation %q has no child table", relation)
	}

	result := repo.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Delete(target)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "failed to delete %s of service", relation)
	}

	return result.RowsAffected, nil
}
