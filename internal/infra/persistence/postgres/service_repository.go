package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	orderByPosition  = "position ASC"
	orderByCreatedAt = "created_at ASC"
)

// servicePreloads maps a relation to its GORM preload path.
var servicePreloads = map[entity.Relation]string{
	entity.RelationHowDoesItWorks:   "HowDoesItWorks",
	entity.RelationIncludes:         "Includes",
	entity.RelationExcludes:         "Excludes",
	entity.RelationFaqs:             "Faqs",
	entity.RelationRatingAndReviews: "RatingAndReviews",
}

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// withExpand adds one ordered preload per requested relation.
func withExpand(db *gorm.DB, expand entity.Expand) *gorm.DB {
	for _, relation := range []entity.Relation{
		entity.RelationHowDoesItWorks,
		entity.RelationIncludes,
		entity.RelationExcludes,
		entity.RelationFaqs,
	} {
		if expand.Has(relation) {
			db = db.Preload(servicePreloads[relation], func(tx *gorm.DB) *gorm.DB {
				return tx.Order(orderByPosition)
			})
		}
	}

	if expand.Has(entity.RelationRatingAndReviews) {
		db = db.Preload(servicePreloads[entity.RelationRatingAndReviews], func(tx *gorm.DB) *gorm.DB {
			return tx.Order(orderByCreatedAt)
		})
	}
	if expand.Has(entity.RelationReviewers) {
		db = db.Preload("RatingAndReviews.User").Preload("RatingAndReviews.User.Profile")
	}

	return db
}

// Create persists a new service.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubCategoryNotFound
		}

		return errors.Wrap(err, "failed to create service")
	}

	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// FindByID retrieves a service with the requested relations.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID, expand entity.Expand) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := withExpand(repo.db.WithContext(ctx), expand).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

// Exists reports whether the service is stored.
func (repo *serviceRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check service existence")
	}

	return count > 0, nil
}

// Find lists services matching filter, oldest first.
func (repo *serviceRepository) Find(ctx context.Context, filter entity.ServiceFilter, expand entity.Expand) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	query := withExpand(repo.db.WithContext(ctx), expand)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ZeroPrice {
		query = query.Where("price = ?", 0)
	}

	if err := query.Order(orderByCreatedAt).Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// Update writes the set fields and returns the stored service without relations.
func (repo *serviceRepository) Update(ctx context.Context, id uuid.UUID, update *entity.ServiceUpdate) (*entity.Service, error) {
	current, err := repo.FindByID(ctx, id, entity.ExpandNone)
	if err != nil {
		return nil, err
	}
	if update == nil || update.IsEmpty() {
		return current, nil
	}

	now := time.Now()
	columns := serviceUpdateColumns(update)
	columns["updated_at"] = now

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update service")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrServiceNotFound
	}

	update.ApplyTo(current)
	current.UpdatedAt = now

	return current, nil
}

// Delete removes the service row.
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Count returns the number of services.
func (repo *serviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}

	return count, nil
}
