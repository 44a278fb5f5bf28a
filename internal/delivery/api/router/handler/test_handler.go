package handler

import (
	"net/http"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	MailUC   usecase.MailUsecase
	TokenSvc service.TokenService
}

// TestHandler serves diagnostics that are only mounted when test routes are enabled.
type TestHandler struct {
	mailUC   usecase.MailUsecase
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		mailUC:   params.MailUC,
		tokenSvc: params.TokenSvc,
	}
}

// TestPublicEndpoint answers without authentication.
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Public endpoint test successful", map[string]any{
		"status": "public",
	})
}

// TestAuthMiddleware echoes the caller resolved by the auth middleware.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User ID not found in context")
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, "Authentication middleware test successful", map[string]any{
		"userID": userID,
		"roles":  roles.ToStrings(),
		"status": "authenticated",
	})
}

// IssueToken signs an access token for ?roles=admin,user so the protected
// routes can be exercised without an identity provider.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var roles entity.Roles
	if raw := c.QueryParam("roles"); raw != "" {
		roles = entity.RolesFromStrings(strings.Split(raw, ","))
	}
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleUser}
	}

	userID := uuid.New()
	if raw := c.QueryParam("userId"); raw != "" {
		parsed, err := parseID("userId", raw)
		if err != nil {
			return err
		}
		userID = parsed
	}

	token, err := h.tokenSvc.GenerateAccessToken(userID, roles.ToStrings())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "", map[string]any{
		"accessToken": token,
		"userID":      userID,
		"roles":       roles.ToStrings(),
	})
}

// PreviewOTPEmail renders the verification email for ?otp= as HTML.
func (h *TestHandler) PreviewOTPEmail(c echo.Context) error {
	otp := c.QueryParam("otp")
	if otp == "" {
		otp = "123456"
	}

	html, err := h.mailUC.PreviewOTPEmail(otp)
	if err != nil {
		return err
	}

	return c.HTML(http.StatusOK, html)
}
