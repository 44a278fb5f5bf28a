package impl

import (
	"context"
	"log/slog"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager       repository.TransactionManager
	serviceRepo     repository.ServiceRepository
	subCategoryRepo repository.SubCategoryRepository
	uploader        service.ImageUploader
	publisher       service.EventPublisher
	qrcodeService   service.QRCodeService
	thumbnailFolder string
	cascade         entity.CascadeScope
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ServiceRepo     repository.ServiceRepository
	SubCategoryRepo repository.SubCategoryRepository
	Uploader        service.ImageUploader
	Publisher       service.EventPublisher
	QRCodeService   service.QRCodeService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) (usecase.CatalogUsecase, error) {
	cascade := entity.DefaultCascadeScope()
	folder := ""
	if catalogCfg := params.Config.Catalog; catalogCfg != nil {
		folder = catalogCfg.ThumbnailFolder
		if catalogCfg.Cascade != nil {
			relations, err := entity.ParseRelations(catalogCfg.Cascade)
			if err != nil {
				return nil, errors.Wrap(err, "invalid catalog.cascade")
			}
			if cascade, err = entity.NewCascadeScope(relations); err != nil {
				return nil, errors.Wrap(err, "invalid catalog.cascade")
			}
		}
	}

	return &catalogService{
		txManager:       params.TxManager,
		serviceRepo:     params.ServiceRepo,
		subCategoryRepo: params.SubCategoryRepo,
		uploader:        params.Uploader,
		publisher:       params.Publisher,
		qrcodeService:   params.QRCodeService,
		thumbnailFolder: folder,
		cascade:         cascade,
		logger:          params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateCreateInput(input *usecase.CreateServiceInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		input.Price == 0 ||
		input.SubCategoryID == uuid.Nil ||
		input.CategoryID == uuid.Nil ||
		input.Thumbnail == nil {
		return domainerrors.ErrMissingRequiredFields
	}

	if input.Status != "" && !input.Status.IsValid() {
		return domainerrors.ErrInvalidStatus
	}
	if input.PriceStatus != "" && !input.PriceStatus.IsValid() {
		return domainerrors.ErrInvalidPriceStatus
	}

	return nil
}

// CreateService validates, uploads the thumbnail and stores the listing in one transaction.
func (srv *catalogService) CreateService(ctx context.Context, input *usecase.CreateServiceInput) (*usecase.CreateServiceOutput, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.subCategoryRepo.FindByID(ctx, input.SubCategoryID, false); err != nil {
		return nil, toAppError(err)
	}

	uploaded, err := srv.uploader.Upload(ctx, input.Thumbnail, srv.thumbnailFolder, input.Name)
	if err != nil {
		return nil, domainerrors.NewInternalError(errors.Wrap(err, "failed to upload thumbnail"))
	}

	newService := &entity.Service{
		ID:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		TimeToComplete:  input.TimeToComplete,
		Price:           input.Price,
		Warranty:        input.Warranty,
		Status:          input.Status,
		PriceStatus:     input.PriceStatus,
		Thumbnail:       uploaded.SecureURL,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		CategoryID:      input.CategoryID,
		SubCategoryID:   input.SubCategoryID,
	}
	if newService.Status == "" {
		newService.Status = entity.ServiceStatusDraft
	}
	if newService.PriceStatus == "" {
		newService.PriceStatus = entity.PriceStatusPriced
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ServiceRepo().Create(ctx, newService); err != nil {
			return err
		}

		return repoFactory.SubCategoryRepo().AppendService(ctx, newService.SubCategoryID, newService.ID)
	})
	if err != nil {
		srv.discardUpload(ctx, uploaded.Key)
		srv.log(ctx).Error("Failed to store service", slog.String("name", input.Name), slog.Any("error", err))

		return nil, toAppError(err)
	}

	updatedSubCategory, err := srv.subCategoryRepo.FindByID(ctx, newService.SubCategoryID, true)
	if err != nil {
		return nil, toAppError(err)
	}

	srv.log(ctx).Info("Service created", slog.String("serviceID", newService.ID.String()), slog.String("subCategoryID", newService.SubCategoryID.String()))
	srv.publish(ctx, &service.CatalogEvent{
		Type:          service.CatalogEventServiceCreated,
		ServiceID:     newService.ID.String(),
		SubCategoryID: newService.SubCategoryID.String(),
		ServiceName:   newService.Name,
		Status:        string(newService.Status),
		Thumbnail:     newService.Thumbnail,
	})

	return &usecase.CreateServiceOutput{
		Service:            newService,
		UpdatedSubCategory: updatedSubCategory,
	}, nil
}

// discardUpload removes an image whose listing could not be stored.
func (srv *catalogService) discardUpload(ctx context.Context, key string) {
	if err := srv.uploader.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Orphan thumbnail left in storage", slog.String("key", key), slog.Any("error", err))
	}
}

// UpdateService checks the listing exists before uploading, then applies the set fields.
func (srv *catalogService) UpdateService(ctx context.Context, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	if input == nil || input.ServiceID == uuid.Nil {
		return nil, domainerrors.ErrUpdateIDRequired
	}

	fields := input.Fields
	if v, ok := fields.Status.Get(); ok && !v.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}
	if v, ok := fields.PriceStatus.Get(); ok && !v.IsValid() {
		return nil, domainerrors.ErrInvalidPriceStatus
	}

	current, err := srv.serviceRepo.FindByID(ctx, input.ServiceID, entity.ExpandNone)
	if err != nil {
		return nil, toAppError(err)
	}

	if input.Thumbnail != nil {
		uploaded, err := srv.uploader.Upload(ctx, input.Thumbnail, srv.thumbnailFolder, "")
		if err != nil {
			return nil, domainerrors.NewInternalError(errors.Wrap(err, "failed to upload thumbnail"))
		}
		fields.Thumbnail = entity.Some(uploaded.SecureURL)
	}

	updated, err := srv.serviceRepo.Update(ctx, input.ServiceID, &fields)
	if err != nil {
		return nil, toAppError(err)
	}

	srv.log(ctx).Info("Service updated", slog.String("serviceID", updated.ID.String()))
	srv.publish(ctx, &service.CatalogEvent{
		Type:           service.CatalogEventServiceUpdated,
		ServiceID:      updated.ID.String(),
		SubCategoryID:  updated.SubCategoryID.String(),
		ServiceName:    updated.Name,
		Status:         string(updated.Status),
		PreviousStatus: string(current.Status),
		Thumbnail:      updated.Thumbnail,
		Unpriced:       updated.IsUnpriced(),
	})

	return updated, nil
}

// DeleteService unlinks the listing, removes it and its cascaded collections in one transaction.
func (srv *catalogService) DeleteService(ctx context.Context, serviceID, subCategoryID uuid.UUID) (*entity.Service, error) {
	if serviceID == uuid.Nil || subCategoryID == uuid.Nil {
		return nil, domainerrors.ErrDeleteIDsRequired
	}

	existing, err := srv.serviceRepo.FindByID(ctx, serviceID, entity.ExpandNone)
	if err != nil {
		return nil, toAppError(err)
	}

	removed := make(map[entity.Relation]int64, len(srv.cascade))
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SubCategoryRepo().RemoveService(ctx, subCategoryID, serviceID); err != nil {
			return err
		}
		if err := repoFactory.ServiceRepo().Delete(ctx, serviceID); err != nil {
			return err
		}

		childRepo := repoFactory.ServiceChildRepo()
		for _, relation := range srv.cascade {
			count, err := childRepo.DeleteByServiceID(ctx, relation, serviceID)
			if err != nil {
				return err
			}
			removed[relation] = count
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete service", slog.String("serviceID", serviceID.String()), slog.Any("error", err))

		return nil, toAppError(err)
	}

	srv.log(ctx).Info("Service deleted", slog.String("serviceID", serviceID.String()), slog.Any("cascaded", removed))
	srv.publish(ctx, &service.CatalogEvent{
		Type:          service.CatalogEventServiceDeleted,
		ServiceID:     serviceID.String(),
		SubCategoryID: subCategoryID.String(),
		ServiceName:   existing.Name,
		Status:        string(existing.Status),
		Thumbnail:     existing.Thumbnail,
	})

	return existing, nil
}

// GetService returns one listing with children and reviewers.
func (srv *catalogService) GetService(ctx context.Context, serviceID uuid.UUID) (*entity.Service, error) {
	if serviceID == uuid.Nil {
		return nil, domainerrors.ErrServiceIDRequired
	}

	found, err := srv.serviceRepo.FindByID(ctx, serviceID, entity.ExpandFull)
	if err != nil {
		return nil, toAppError(err)
	}

	return found, nil
}

// ListServices returns every listing with children and reviewers.
func (srv *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	return srv.find(ctx, entity.ServiceFilter{}, entity.ExpandFull)
}

// ListPublishedServices returns Published listings with children and bare reviews.
func (srv *catalogService) ListPublishedServices(ctx context.Context) ([]*entity.Service, error) {
	return srv.find(ctx, entity.ServiceFilter{Status: entity.ServiceStatusPublished}, entity.ExpandListing)
}

// ListPublishedUnpricedServices returns Published listings whose price is zero.
func (srv *catalogService) ListPublishedUnpricedServices(ctx context.Context) ([]*entity.Service, error) {
	return srv.find(ctx, entity.ServiceFilter{Status: entity.ServiceStatusPublished, ZeroPrice: true}, entity.ExpandListing)
}

func (srv *catalogService) find(ctx context.Context, filter entity.ServiceFilter, expand entity.Expand) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.Find(ctx, filter, expand)
	if err != nil {
		return nil, toAppError(err)
	}

	return services, nil
}

// CountServices returns the number of listings.
func (srv *catalogService) CountServices(ctx context.Context) (int64, error) {
	count, err := srv.serviceRepo.Count(ctx)
	if err != nil {
		return 0, toAppError(err)
	}

	return count, nil
}

// GenerateShareQR renders the share code of an existing listing.
func (srv *catalogService) GenerateShareQR(ctx context.Context, serviceID uuid.UUID) ([]byte, error) {
	if serviceID == uuid.Nil {
		return nil, domainerrors.ErrServiceIDRequired
	}

	exists, err := srv.serviceRepo.Exists(ctx, serviceID)
	if err != nil {
		return nil, toAppError(err)
	}
	if !exists {
		return nil, domainerrors.ErrServiceNotFound
	}

	png, err := srv.qrcodeService.GenerateServiceQR(serviceID)
	if err != nil {
		return nil, domainerrors.NewInternalError(err)
	}

	return png, nil
}

// publish sends a catalog event. Failures are logged and never fail the caller.
func (srv *catalogService) publish(ctx context.Context, event *service.CatalogEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish catalog event",
			slog.String("type", string(event.Type)),
			slog.String("serviceID", event.ServiceID),
			slog.Any("error", err),
		)
	}
}
