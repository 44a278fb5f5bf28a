package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type reviewService struct {
	serviceRepo repository.ServiceRepository
	reviewRepo  repository.ReviewRepository
	pageSize    int
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ServiceRepo repository.ServiceRepository
	ReviewRepo  repository.ReviewRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	pageSize := entity.DefaultReviewPageSize
	if params.Config.Catalog != nil && params.Config.Catalog.ReviewPageSize > 0 {
		pageSize = params.Config.Catalog.ReviewPageSize
	}

	return &reviewService{
		serviceRepo: params.ServiceRepo,
		reviewRepo:  params.ReviewRepo,
		pageSize:    pageSize,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetReviewPage loads every review of the listing and slices out the requested page.
func (srv *reviewService) GetReviewPage(ctx context.Context, serviceID uuid.UUID, page int) (*entity.ReviewPage, error) {
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

	reviews, err := srv.reviewRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		srv.log(ctx).Error("Failed to load reviews", slog.String("serviceID", serviceID.String()), slog.Any("error", err))

		return nil, toAppError(err)
	}

	return &entity.ReviewPage{
		Reviews: entity.Paginate(reviews, page, srv.pageSize),
		Total:   len(reviews),
		Page:    page,
		PerPage: srv.pageSize,
	}, nil
}
