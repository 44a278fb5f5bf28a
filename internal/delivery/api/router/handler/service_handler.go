package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ServiceHandler serves the listing endpoints.
type ServiceHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateServiceRequest is the multipart form of a new listing. The thumbnail
// travels as the "thumbnail" file part.
type CreateServiceRequest struct {
	Name            string `form:"serviceName"`
	Description     string `form:"serviceDescription"`
	TimeToComplete  string `form:"timeToComplete"`
	Price           string `form:"price"`
	Warranty        string `form:"warranty"`
	Status          string `form:"status"`
	PriceStatus     string `form:"priceStatus"`
	MetaTitle       string `form:"metaTitle"`
	MetaDescription string `form:"metaDescription"`
	CategoryID      string `form:"categoryId"`
	SubCategoryID   string `form:"subCategoryId"`
}

// UpdateServiceRequest is a partial update. Absent and null fields are left unchanged.
type UpdateServiceRequest struct {
	Name            entity.Optional[string]               `json:"serviceName" form:"serviceName"`
	Description     entity.Optional[string]               `json:"serviceDescription" form:"serviceDescription"`
	TimeToComplete  entity.Optional[string]               `json:"timeToComplete" form:"timeToComplete"`
	Price           entity.Optional[float64]              `json:"price" form:"price"`
	Warranty        entity.Optional[string]               `json:"warranty" form:"warranty"`
	Status          entity.Optional[entity.ServiceStatus] `json:"status" form:"status"`
	PriceStatus     entity.Optional[entity.PriceStatus]   `json:"priceStatus" form:"priceStatus"`
	MetaTitle       entity.Optional[string]               `json:"metaTitle" form:"metaTitle"`
	MetaDescription entity.Optional[string]               `json:"metaDescription" form:"metaDescription"`
}

func (r *UpdateServiceRequest) toUpdate() entity.ServiceUpdate {
	return entity.ServiceUpdate{
		Name:            r.Name,
		Description:     r.Description,
		TimeToComplete:  r.TimeToComplete,
		Price:           r.Price,
		Warranty:        r.Warranty,
		Status:          r.Status,
		PriceStatus:     r.PriceStatus,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
	}
}

// DeleteServiceRequest names the sub-category that lists the service, in the body or the query.
type DeleteServiceRequest struct {
	SubCategoryID string `json:"subCategoryId" form:"subCategoryId" query:"subCategoryId"`
}

// CreateService handles POST /api/v1/services
func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid service input")
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return err
	}
	categoryID, err := parseID("categoryId", req.CategoryID)
	if err != nil {
		return err
	}
	subCategoryID, err := parseID("subCategoryId", req.SubCategoryID)
	if err != nil {
		return err
	}

	thumbnail, closer, err := openThumbnail(c)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	out, err := h.catalogUC.CreateService(c.Request().Context(), &usecase.CreateServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		TimeToComplete:  req.TimeToComplete,
		Price:           price,
		Warranty:        req.Warranty,
		Status:          entity.ServiceStatus(req.Status),
		PriceStatus:     entity.PriceStatus(req.PriceStatus),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CategoryID:      categoryID,
		SubCategoryID:   subCategoryID,
		Thumbnail:       thumbnail,
	})
	if err != nil {
		return err
	}

	return response.SuccessWithFields(c, http.StatusCreated, "Service created successfully", map[string]any{
		"service":            out.Service,
		"updatedSubCategory": out.UpdatedSubCategory,
	})
}

// UpdateService handles PUT /api/v1/services/:id
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	serviceID, err := parseID("service ID", c.Param("id"))
	if err != nil {
		return err
	}

	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Rejected update body", slog.Any("error", err))

		return response.BadRequest(c, "Invalid service input")
	}

	thumbnail, closer, err := openThumbnail(c)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	updated, err := h.catalogUC.UpdateService(c.Request().Context(), &usecase.UpdateServiceInput{
		ServiceID: serviceID,
		Fields:    req.toUpdate(),
		Thumbnail: thumbnail,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Service updated successfully", updated)
}

// DeleteService handles DELETE /api/v1/services/:id
func (h *ServiceHandler) DeleteService(c echo.Context) error {
	serviceID, err := parseID("service ID", c.Param("id"))
	if err != nil {
		return err
	}

	var req DeleteServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid delete input")
	}

	subCategoryID, err := parseID("subCategoryId", req.SubCategoryID)
	if err != nil {
		return err
	}

	deleted, err := h.catalogUC.DeleteService(c.Request().Context(), serviceID, subCategoryID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Service deleted successfully", deleted)
}

// GetService handles GET /api/v1/services/:id
func (h *ServiceHandler) GetService(c echo.Context) error {
	serviceID, err := parseID("service ID", c.Param("id"))
	if err != nil {
		return err
	}

	found, err := h.catalogUC.GetService(c.Request().Context(), serviceID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "", found)
}

// ListServices handles GET /api/v1/services
func (h *ServiceHandler) ListServices(c echo.Context) error {
	services, err := h.catalogUC.ListServices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "", services)
}

// ListPublishedServices handles GET /api/v1/services/published
func (h *ServiceHandler) ListPublishedServices(c echo.Context) error {
	services, err := h.catalogUC.ListPublishedServices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "", services)
}

// ListPublishedUnpricedServices handles GET /api/v1/services/published/unpriced
func (h *ServiceHandler) ListPublishedUnpricedServices(c echo.Context) error {
	services, err := h.catalogUC.ListPublishedUnpricedServices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "", services)
}

// CountServices handles GET /api/v1/services/count
func (h *ServiceHandler) CountServices(c echo.Context) error {
	count, err := h.catalogUC.CountServices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.SuccessWithFields(c, http.StatusOK, "", map[string]any{
		"totalServices": count,
	})
}

// GetShareQR handles GET /api/v1/services/:id/qr
func (h *ServiceHandler) GetShareQR(c echo.Context) error {
	serviceID, err := parseID("service ID", c.Param("id"))
	if err != nil {
		return err
	}

	png, err := h.catalogUC.GenerateShareQR(c.Request().Context(), serviceID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
