// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ServiceHandler *handler.ServiceHandler
	ReviewHandler  *handler.ReviewHandler
	MailHandler    *handler.MailHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	serviceHandler *handler.ServiceHandler
	reviewHandler  *handler.ReviewHandler
	mailHandler    *handler.MailHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		serviceHandler: params.ServiceHandler,
		reviewHandler:  params.ReviewHandler,
		mailHandler:    params.MailHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Catalog reads are public
	servicesGroup := apiV1.Group("/services")
	{
		servicesGroup.GET("", r.serviceHandler.ListServices)
		servicesGroup.GET("/published", r.serviceHandler.ListPublishedServices)
		servicesGroup.GET("/published/unpriced", r.serviceHandler.ListPublishedUnpricedServices)
		servicesGroup.GET("/count", r.serviceHandler.CountServices)
		servicesGroup.GET("/:id", r.serviceHandler.GetService)
		servicesGroup.GET("/:id/reviews", r.reviewHandler.GetServiceReviews)
		servicesGroup.GET("/:id/qr", r.serviceHandler.GetShareQR)
	}

	// Catalog writes require the admin role
	adminOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}
	servicesGroup.POST("", r.serviceHandler.CreateService, adminOnly...)
	servicesGroup.PUT("/:id", r.serviceHandler.UpdateService, adminOnly...)
	servicesGroup.DELETE("/:id", r.serviceHandler.DeleteService, adminOnly...)

	mailGroup := apiV1.Group("/mail")
	mailGroup.Use(r.authMiddleware.Authenticate)
	mailGroup.Use(r.authMiddleware.RequireAnyRole(entity.RoleService, entity.RoleAdmin))
	{
		mailGroup.POST("/otp", r.mailHandler.SendOTP)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
	testGroup.GET("/token", r.testHandler.IssueToken)
	testGroup.GET("/mail/otp", r.testHandler.PreviewOTPEmail)
	testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
}
