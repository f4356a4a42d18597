package update_order_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
	"github.com/m04kA/SMC-OrderingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderResponse), args.Error(1)
}

func serve(svc *mockService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/owner/orders/{orderId}/status", middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle)))

	req := httptest.NewRequest(http.MethodPatch, "/owner/orders/ord-1/status", strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "owner-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(req *models.UpdateStatusRequest) bool {
		return req.UserID == "owner-1" && req.OrderID == "ord-1" && req.Status == "denied" &&
			req.DenialReason != nil && *req.DenialReason == "sold out"
	})).Return(&models.OrderResponse{ID: "ord-1", Status: "denied"}, nil)

	rec := serve(svc, `{"status":"denied","denialReason":"sold out"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"denied"`)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", orders.ErrOrderNotFound, http.StatusNotFound},
		{"not owner", orders.ErrAccessDenied, http.StatusForbidden},
		{"no reason", orders.ErrInvalidInput, http.StatusBadRequest},
		{"bad transition", orders.ErrInvalidTransition, http.StatusConflict},
		{"concurrent", orders.ErrStatusConflict, http.StatusConflict},
		{"internal", orders.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, `{"status":"accepted"}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &mockService{}

	rec := serve(svc, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}
