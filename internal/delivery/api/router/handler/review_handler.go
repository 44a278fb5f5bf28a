package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/labstack/echo/v4"
)

// ReviewHandler serves the paged review listing of a service.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(reviewUC usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// GetServiceReviews handles GET /api/v1/services/:id/reviews?page=N.
// A missing or malformed page means the first page.
func (h *ReviewHandler) GetServiceReviews(c echo.Context) error {
	serviceID, err := parseID("service ID", c.Param("id"))
	if err != nil {
		return err
	}

	page := util.ParseIntOrDefault(c.QueryParam("page"), 1)

	result, err := h.reviewUC.GetReviewPage(c.Request().Context(), serviceID, page)
	if err != nil {
		return err
	}

	return response.SuccessWithFields(c, http.StatusOK, "", map[string]any{
		"data":                  result.Reviews,
		"totalRatingAndReviews": result.Total,
		"page":                  result.Page,
		"itemsPerPage":          result.PerPage,
	})
}
