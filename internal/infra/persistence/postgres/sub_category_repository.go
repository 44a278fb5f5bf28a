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

// appendServiceSQL places the service after the current last position and
// leaves an existing link untouched.
const appendServiceSQL = `INSERT INTO sub_category_services (sub_category_id, service_id, position)
SELECT ?, ?, COALESCE(MAX(position), 0) + 1 FROM sub_category_services WHERE sub_category_id = ?
ON CONFLICT (sub_category_id, service_id) DO NOTHING`

// subCategoryRepository implements the repository.SubCategoryRepository interface.
type subCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository is the constructor for subCategoryRepository.
func NewSubCategoryRepository(db *gorm.DB) repository.SubCategoryRepository {
	return &subCategoryRepository{
		db: db,
	}
}

// FindByID loads the sub-category and its ordered service ids.
func (repo *subCategoryRepository) FindByID(ctx context.Context, id uuid.UUID, withServices bool) (*entity.SubCategory, error) {
	var subCategoryM model.SubCategoryModel

	db := repo.db.WithContext(ctx)
	if err := db.Where("id = ?", id).First(&subCategoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find sub-category by ID")
	}

	var links []*model.SubCategoryServiceModel
	if err := db.Where("sub_category_id = ?", id).
		Order(orderByPosition).
		Find(&links).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load sub-category services")
	}

	subCategory := toSubCategoryDomain(&subCategoryM)
	subCategory.ServiceIDs = make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		subCategory.ServiceIDs = append(subCategory.ServiceIDs, link.ServiceID)
	}

	if !withServices {
		return subCategory, nil
	}

	services, err := repo.loadServices(db, subCategory.ServiceIDs)
	if err != nil {
		return nil, err
	}
	subCategory.Services = services

	return subCategory, nil
}

// loadServices returns the services in the order of ids, skipping ids with no row.
func (repo *subCategoryRepository) loadServices(db *gorm.DB, ids []uuid.UUID) ([]*entity.Service, error) {
	services := make([]*entity.Service, 0, len(ids))
	if len(ids) == 0 {
		return services, nil
	}

	var serviceModels []*model.ServiceModel
	if err := db.Where("id IN ?", ids).Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load sub-category service rows")
	}

	byID := make(map[uuid.UUID]*model.ServiceModel, len(serviceModels))
	for _, serviceM := range serviceModels {
		byID[serviceM.ID] = serviceM
	}
	for _, id := range ids {
		if serviceM, ok := byID[id]; ok {
			services = append(services, toServiceDomain(serviceM))
		}
	}

	return services, nil
}

// AppendService links serviceID at the end of the sub-category list.
func (repo *subCategoryRepository) AppendService(ctx context.Context, subCategoryID, serviceID uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	var count int64
	if err := db.Model(&model.SubCategoryModel{}).
		Where("id = ?", subCategoryID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check sub-category existence")
	}
	if count == 0 {
		return repository.ErrSubCategoryNotFound
	}

	if err := db.Exec(appendServiceSQL, subCategoryID, serviceID, subCategoryID).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to append service to sub-category")
	}

	return nil
}

// RemoveService unlinks serviceID from the sub-category list.
func (repo *subCategoryRepository) RemoveService(ctx context.Context, subCategoryID, serviceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("sub_category_id = ? AND service_id = ?", subCategoryID, serviceID).
		Delete(&model.SubCategoryServiceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove service from sub-category")
	}

	return nil
}
