package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/mail"
	mockrepository "marketplace/internal/mocks/repository"
	mockservice "marketplace/internal/mocks/service"
	"marketplace/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo            *echo.Echo
	tokenSvc        service.TokenService
	serviceRepo     *mockrepository.MockServiceRepository
	subCategoryRepo *mockrepository.MockSubCategoryRepository
	childRepo       *mockrepository.MockServiceChildRepository
	reviewRepo      *mockrepository.MockReviewRepository
	txManager       *mockrepository.MockTransactionManager
	repoFactory     *mockrepository.MockRepositoryFactory
	uploader        *mockservice.MockImageUploader
	publisher       *mockservice.MockEventPublisher
	qrcode          *mockservice.MockQRCodeService
	mailSender      *mockservice.MockMailSender
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "10MB"
	cfg.SecretKey.Access = "test-access-secret"
	cfg.TestRoutes = &config.TestRoutesConfig{Enabled: true}
	cfg.Catalog = &config.CatalogConfig{ReviewPageSize: 5, ThumbnailFolder: "services"}
	cfg.Mail = &config.MailConfig{Subject: "Email Verification - Rehaabit"}
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	return cfg
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		serviceRepo:     mockrepository.NewMockServiceRepository(t),
		subCategoryRepo: mockrepository.NewMockSubCategoryRepository(t),
		childRepo:       mockrepository.NewMockServiceChildRepository(t),
		reviewRepo:      mockrepository.NewMockReviewRepository(t),
		txManager:       mockrepository.NewMockTransactionManager(t),
		repoFactory:     mockrepository.NewMockRepositoryFactory(t),
		uploader:        mockservice.NewMockImageUploader(t),
		publisher:       mockservice.NewMockEventPublisher(t),
		qrcode:          mockservice.NewMockQRCodeService(t),
		mailSender:      mockservice.NewMockMailSender(t),
	}

	ts.repoFactory.EXPECT().ServiceRepo().Return(ts.serviceRepo).Maybe()
	ts.repoFactory.EXPECT().SubCategoryRepo().Return(ts.subCategoryRepo).Maybe()
	ts.repoFactory.EXPECT().ServiceChildRepo().Return(ts.childRepo).Maybe()
	ts.publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	ts.tokenSvc = tokenSvc

	catalogUC, err := impl.NewCatalogService(impl.CatalogServiceParams{
		TxManager:       ts.txManager,
		ServiceRepo:     ts.serviceRepo,
		SubCategoryRepo: ts.subCategoryRepo,
		Uploader:        ts.uploader,
		Publisher:       ts.publisher,
		QRCodeService:   ts.qrcode,
		Config:          cfg,
		Logger:          logger,
	})
	require.NoError(t, err)

	reviewUC := impl.NewReviewService(impl.ReviewServiceParams{
		ServiceRepo: ts.serviceRepo,
		ReviewRepo:  ts.reviewRepo,
		Config:      cfg,
		Logger:      logger,
	})
	mailUC := impl.NewMailService(impl.MailServiceParams{
		Sender:   ts.mailSender,
		Renderer: mail.NewOTPEmailRenderer(),
		Config:   cfg,
		Logger:   logger,
	})

	routes := router.NewRouter(router.RouterParams{
		ServiceHandler: handler.NewServiceHandler(handler.ServiceHandlerParams{CatalogUC: catalogUC, Logger: logger}),
		ReviewHandler:  handler.NewReviewHandler(reviewUC),
		MailHandler:    handler.NewMailHandler(mailUC),
		TestHandler:    handler.NewTestHandler(handler.TestHandlerParams{MailUC: mailUC, TokenSvc: tokenSvc}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
		Config:         cfg,
	})

	e, err := newEcho(cfg, logger, routes)
	require.NoError(t, err)
	ts.echo = e

	return ts
}

func (ts *testServer) token(t *testing.T, roles ...entity.Role) string {
	t.Helper()

	token, err := ts.tokenSvc.GenerateAccessToken(uuid.New(), entity.Roles(roles).ToStrings())
	require.NoError(t, err)

	return token
}

func (ts *testServer) do(req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func (ts *testServer) expectTransaction() {
	ts.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(ts.repoFactory)
		}).
		Once()
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	return req
}

func newCreateForm(t *testing.T, fields map[string]string, withThumbnail bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withThumbnail {
		part, err := writer.CreateFormFile("thumbnail", "cleaning.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG fake image"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestServer_HealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_CreateService(t *testing.T) {
	categoryID := uuid.New()
	subCategoryID := uuid.New()
	validFields := map[string]string{
		"serviceName":        "Deep Cleaning",
		"serviceDescription": "Whole apartment cleaning",
		"price":              "499",
		"categoryId":         categoryID.String(),
		"subCategoryId":      subCategoryID.String(),
	}

	t.Run("requires a token", func(t *testing.T) {
		ts := newTestServer(t)
		form, contentType := newCreateForm(t, validFields, true)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/services", form)
		req.Header.Set(echo.HeaderContentType, contentType)

		rec, body := ts.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("requires the admin role", func(t *testing.T) {
		ts := newTestServer(t)
		form, contentType := newCreateForm(t, validFields, true)
		req := withBearer(httptest.NewRequest(http.MethodPost, "/api/v1/services", form), ts.token(t, entity.RoleUser))
		req.Header.Set(echo.HeaderContentType, contentType)

		rec, _ := ts.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("creates the listing", func(t *testing.T) {
		ts := newTestServer(t)
		sub := &entity.SubCategory{ID: subCategoryID, CategoryID: categoryID, Name: "Cleaning"}

		ts.subCategoryRepo.EXPECT().FindByID(mock.Anything, subCategoryID, false).Return(sub, nil).Once()
		ts.uploader.EXPECT().
			Upload(mock.Anything, mock.AnythingOfType("*service.ImageFile"), "services", "Deep Cleaning").
			RunAndReturn(func(_ context.Context, file *service.ImageFile, _, _ string) (*service.UploadResult, error) {
				assert.Equal(t, "cleaning.png", file.Name)

				return &service.UploadResult{SecureURL: "https://cdn.example.com/services/deep-cleaning.png", Key: "services/deep-cleaning.png"}, nil
			}).
			Once()
		ts.expectTransaction()
		ts.serviceRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Service")).Return(nil).Once()
		ts.subCategoryRepo.EXPECT().AppendService(mock.Anything, subCategoryID, mock.Anything).Return(nil).Once()
		ts.subCategoryRepo.EXPECT().FindByID(mock.Anything, subCategoryID, true).Return(sub, nil).Once()

		form, contentType := newCreateForm(t, validFields, true)
		req := withBearer(httptest.NewRequest(http.MethodPost, "/api/v1/services", form), ts.token(t, entity.RoleAdmin))
		req.Header.Set(echo.HeaderContentType, contentType)

		rec, body := ts.do(req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Service created successfully", body["message"])
		created, ok := body["service"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Deep Cleaning", created["serviceName"])
		assert.Equal(t, "Draft", created["status"])
		assert.Equal(t, "https://cdn.example.com/services/deep-cleaning.png", created["thumbnail"])
		assert.Contains(t, body, "updatedSubCategory")
	})

	t.Run("rejects a missing price", func(t *testing.T) {
		ts := newTestServer(t)
		fields := map[string]string{
			"serviceName":        "Deep Cleaning",
			"serviceDescription": "Whole apartment cleaning",
			"categoryId":         categoryID.String(),
			"subCategoryId":      subCategoryID.String(),
		}
		form, contentType := newCreateForm(t, fields, true)
		req := withBearer(httptest.NewRequest(http.MethodPost, "/api/v1/services", form), ts.token(t, entity.RoleAdmin))
		req.Header.Set(echo.HeaderContentType, contentType)

		rec, body := ts.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields", body["message"])
		ts.uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed sub-category id", func(t *testing.T) {
		ts := newTestServer(t)
		fields := map[string]string{
			"serviceName":        "Deep Cleaning",
			"serviceDescription": "Whole apartment cleaning",
			"price":              "499",
			"categoryId":         categoryID.String(),
			"subCategoryId":      "not-a-uuid",
		}
		form, contentType := newCreateForm(t, fields, true)
		req := withBearer(httptest.NewRequest(http.MethodPost, "/api/v1/services", form), ts.token(t, entity.RoleAdmin))
		req.Header.Set(echo.HeaderContentType, contentType)

		rec, body := ts.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid subCategoryId", body["message"])
	})
}

func TestServer_UpdateService(t *testing.T) {
	serviceID := uuid.New()

	t.Run("applies only the fields present in the body", func(t *testing.T) {
		ts := newTestServer(t)
		existing := &entity.Service{ID: serviceID, Name: "Deep Cleaning", Price: 499, Status: entity.ServiceStatusDraft}

		ts.serviceRepo.EXPECT().FindByID(mock.Anything, serviceID, entity.ExpandNone).Return(existing, nil).Once()
		ts.serviceRepo.EXPECT().
			Update(mock.Anything, serviceID, mock.AnythingOfType("*entity.ServiceUpdate")).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, update *entity.ServiceUpdate) (*entity.Service, error) {
				price, ok := update.Price.Get()
				assert.True(t, ok)
				assert.InDelta(t, 650.0, price, 0.001)
				assert.False(t, update.Warranty.IsSet())
				assert.False(t, update.Name.IsSet())
				assert.False(t, update.Thumbnail.IsSet())

				updated := *existing
				update.ApplyTo(&updated)

				return &updated, nil
			}).
			Once()

		req := withBearer(
			httptest.NewRequest(http.MethodPut, "/api/v1/services/"+serviceID.String(), strings.NewReader(`{"price":650,"warranty":null}`)),
			ts.token(t, entity.RoleAdmin),
		)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec, body := ts.do(req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Service updated successfully", body["message"])
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 650.0, data["price"], 0.001)
		assert.Equal(t, "Deep Cleaning", data["serviceName"])
	})

	t.Run("unknown service", func(t *testing.T) {
		ts := newTestServer(t)
		ts.serviceRepo.EXPECT().FindByID(mock.Anything, serviceID, entity.ExpandNone).Return(nil, repository.ErrServiceNotFound).Once()

		req := withBearer(
			httptest.NewRequest(http.MethodPut, "/api/v1/services/"+serviceID.String(), strings.NewReader(`{"price":650}`)),
			ts.token(t, entity.RoleAdmin),
		)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec, body := ts.do(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Service not found", body["message"])
	})
}

func TestServer_DeleteService(t *testing.T) {
	serviceID := uuid.New()
	subCategoryID := uuid.New()

	t.Run("removes the listing and its owned collections", func(t *testing.T) {
		ts := newTestServer(t)
		existing := &entity.Service{ID: serviceID, Name: "Deep Cleaning", SubCategoryID: subCategoryID}

		ts.serviceRepo.EXPECT().FindByID(mock.Anything, serviceID, entity.ExpandNone).Return(existing, nil).Once()
		ts.expectTransaction()
		ts.subCategoryRepo.EXPECT().RemoveService(mock.Anything, subCategoryID, serviceID).Return(nil).Once()
		ts.serviceRepo.EXPECT().Delete(mock.Anything, serviceID).Return(nil).Once()
		for _, relation := range entity.OwnedRelations {
			ts.childRepo.EXPECT().DeleteByServiceID(mock.Anything, relation, serviceID).Return(1, nil).Once()
		}

		req := withBearer(
			httptest.NewRequest(http.MethodDelete, "/api/v1/services/"+serviceID.String()+"?subCategoryId="+subCategoryID.String(), nil),
			ts.token(t, entity.RoleAdmin),
		)

		rec, body := ts.do(req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Service deleted successfully", body["message"])
	})

	t.Run("requires the sub-category id", func(t *testing.T) {
		ts := newTestServer(t)

		req := withBearer(
			httptest.NewRequest(http.MethodDelete, "/api/v1/services/"+serviceID.String(), nil),
			ts.token(t, entity.RoleAdmin),
		)

		rec, body := ts.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Service ID and SubCategory ID are required", body["message"])
	})
}

func TestServer_Reads(t *testing.T) {
	serviceID := uuid.New()

	t.Run("get returns the expanded listing", func(t *testing.T) {
		ts := newTestServer(t)
		ts.serviceRepo.EXPECT().FindByID(mock.Anything, serviceID, entity.ExpandFull).
			Return(&entity.Service{ID: serviceID, Name: "Deep Cleaning"}, nil).Once()

		rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/services/"+serviceID.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, serviceID.String(), data["id"])
	})

	t.Run("get rejects a malformed id", func(t *testing.T) {
		ts := newTestServer(t)

		rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/services/nope", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid service ID", body["message"])
	})

	t.Run("published listing", func(t *testing.T) {
		ts := newTestServer(t)
		ts.serviceRepo.EXPECT().
			Find(mock.Anything, entity.ServiceFilter{Status: entity.ServiceStatusPublished}, entity.ExpandListing).
			Return([]*entity.Service{{ID: serviceID}}, nil).Once()

		rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/services/published", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, body["data"], 1)
	})

	t.Run("published unpriced listing", func(t *testing.T) {
		ts := newTestServer(t)
		ts.serviceRepo.EXPECT().
			Find(mock.Anything, entity.ServiceFilter{Status: entity.ServiceStatusPublished, ZeroPrice: true}, entity.ExpandListing).
			Return([]*entity.Service{}, nil).Once()

		rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/services/published/unpriced", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{}, body["data"])
	})

	t.Run("store failure is an internal error with detail", func(t *testing.T) {
		ts := newTestServer(t)
		ts.serviceRepo.EXPECT().Find(mock.Anything, entity.ServiceFilter{}, entity.ExpandFull).
			Return(nil, errors.New("connection refused")).Once()

		rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "connection refused")
	})

	t.Run("count", func(t *testing.T) {
		ts := newTestServer(t)
		ts.serviceRepo.EXPECT().Count(mock.Anything).Return(int64(42), nil).Once()

		rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/services/count", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 42.0, body["totalServices"], 0.001)
	})

	t.Run("share QR code", func(t *testing.T) {
		ts := newTestServer(t)
		ts.serviceRepo.EXPECT().Exists(mock.Anything, serviceID).Return(true, nil).Once()
		ts.qrcode.EXPECT().GenerateServiceQR(serviceID).Return([]byte("\x89PNG"), nil).Once()

		rec, _ := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/services/"+serviceID.String()+"/qr", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes())
	})
}

func TestServer_GetServiceReviews(t *testing.T) {
	serviceID := uuid.New()
	reviews := make([]*entity.RatingAndReview, 7)
	for i := range reviews {
		reviews[i] = &entity.RatingAndReview{ID: uuid.New(), ServiceID: serviceID, Rating: 4}
	}

	tests := []struct {
		name      string
		query     string
		wantPage  float64
		wantCount int
	}{
		{name: "first page by default", query: "", wantPage: 1, wantCount: 5},
		{name: "second page", query: "?page=2", wantPage: 2, wantCount: 2},
		{name: "non numeric page", query: "?page=abc", wantPage: 1, wantCount: 5},
		{name: "past the end", query: "?page=9", wantPage: 9, wantCount: 0},
		{name: "huge page", query: "?page=2305843009213693953", wantPage: 2305843009213693953, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.serviceRepo.EXPECT().Exists(mock.Anything, serviceID).Return(true, nil).Once()
			ts.reviewRepo.EXPECT().FindByServiceID(mock.Anything, serviceID).Return(reviews, nil).Once()

			rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/services/"+serviceID.String()+"/reviews"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Len(t, body["data"], tt.wantCount)
			assert.InDelta(t, 7.0, body["totalRatingAndReviews"], 0.001)
			assert.InDelta(t, tt.wantPage, body["page"], 0.001)
			assert.InDelta(t, 5.0, body["itemsPerPage"], 0.001)
		})
	}
}

func TestServer_SendOTP(t *testing.T) {
	t.Run("sends the rendered email", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mailSender.EXPECT().
			Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
			RunAndReturn(func(_ context.Context, msg *service.MailMessage) (string, error) {
				assert.Equal(t, "jane@example.com", msg.To)
				assert.Equal(t, "Email Verification - Rehaabit", msg.Subject)
				assert.Contains(t, msg.HTML, "482913")

				return "msg-1", nil
			}).
			Once()

		req := withBearer(
			httptest.NewRequest(http.MethodPost, "/api/v1/mail/otp", strings.NewReader(`{"email":"jane@example.com","otp":"482913"}`)),
			ts.token(t, entity.RoleService),
		)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec, body := ts.do(req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "OTP email sent", body["message"])
	})

	t.Run("validates the body", func(t *testing.T) {
		ts := newTestServer(t)

		req := withBearer(
			httptest.NewRequest(http.MethodPost, "/api/v1/mail/otp", strings.NewReader(`{"email":"not-an-email","otp":"1"}`)),
			ts.token(t, entity.RoleAdmin),
		)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec, body := ts.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("plain users cannot send mail", func(t *testing.T) {
		ts := newTestServer(t)

		req := withBearer(
			httptest.NewRequest(http.MethodPost, "/api/v1/mail/otp", strings.NewReader(`{"email":"jane@example.com","otp":"1"}`)),
			ts.token(t, entity.RoleUser),
		)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec, _ := ts.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServer_TestRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.do(httptest.NewRequest(http.MethodGet, "/test/token?roles=admin", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	token, ok := data["accessToken"].(string)
	require.True(t, ok)

	rec, body = ts.do(withBearer(httptest.NewRequest(http.MethodGet, "/test/auth", nil), token))
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok = body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"admin"}, data["roles"])

	rec, _ = ts.do(httptest.NewRequest(http.MethodGet, "/test/mail/otp?otp=135790", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, rec.Body.String(), "135790")
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `marketplace_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
