package get_customer_orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
	"github.com/m04kA/SMC-OrderingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetCustomerOrders(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderListResponse), args.Error(1)
}

func serve(svc *mockService, userID, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/users/{userId}/orders", middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle)))

	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set(middleware.UserIDHeader, userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &mockService{}
	svc.On("GetCustomerOrders", mock.Anything, &models.ListOrdersRequest{
		UserID:     "c1",
		CustomerID: "c1",
		Status:     "active",
		Type:       "pre-order",
		From:       "2025-01-01",
		To:         "2025-01-31",
	}).Return(&models.OrderListResponse{Orders: []models.OrderResponse{{ID: "o2"}, {ID: "o1"}}}, nil)

	rec := serve(svc, "c1", "/users/c1/orders?status=active&type=pre-order&from=2025-01-01&to=2025-01-31")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.OrderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Orders, 2)
	assert.Equal(t, "o2", body.Orders[0].ID)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"foreign customer", orders.ErrAccessDenied, http.StatusForbidden},
		{"bad filter", orders.ErrInvalidInput, http.StatusBadRequest},
		{"internal", orders.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetCustomerOrders", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, "c2", "/users/c1/orders")

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	svc := &mockService{}

	rec := serve(svc, "", "/users/c1/orders")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "GetCustomerOrders", mock.Anything, mock.Anything)
}
