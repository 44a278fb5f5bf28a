package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestEnvelope_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		envelope Envelope
		want     string
	}{
		{
			name:     "success only",
			envelope: Envelope{Success: true},
			want:     `{"success":true}`,
		},
		{
			name:     "data and message",
			envelope: Envelope{Success: true, Message: "ok", Data: []int{1}},
			want:     `{"data":[1],"message":"ok","success":true}`,
		},
		{
			name:     "empty slice data is kept",
			envelope: Envelope{Success: true, Data: []int{}},
			want:     `{"data":[],"success":true}`,
		},
		{
			name:     "extra keys",
			envelope: Envelope{Success: true, Extra: map[string]any{"totalServices": 3}},
			want:     `{"success":true,"totalServices":3}`,
		},
		{
			name:     "fixed keys win over extra",
			envelope: Envelope{Success: false, Message: "m", Extra: map[string]any{"success": true}},
			want:     `{"message":"m","success":false}`,
		},
		{
			name:     "error detail",
			envelope: Envelope{Message: "Internal server error", Error: "boom"},
			want:     `{"error":"boom","message":"Internal server error","success":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.envelope)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        domainerrors.ErrMissingRequiredFields,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Missing required fields"}`,
		},
		{
			name:       "not found",
			err:        domainerrors.ErrServiceNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"message":"Service not found"}`,
		},
		{
			name:       "internal exposes cause",
			err:        domainerrors.NewInternalError(errors.New("upload failed")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"Internal server error","error":"upload failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandleAppError_PassesThroughOtherErrors(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("plain"))
	require.Error(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSuccessWithFields(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessWithFields(c, http.StatusCreated, "Service created successfully", map[string]any{
		"service": map[string]string{"id": "1"},
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Service created successfully", body["message"])
	assert.Contains(t, body, "service")
	assert.NotContains(t, body, "data")
}
