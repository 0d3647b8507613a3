package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/aaravmahajanofficial/cake-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/cake-storefront/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminStats(t *testing.T) {
	dashboard := new(mocks.DashboardService)
	adminHandler := handlers.NewAdminHandler(dashboard, new(mocks.CatalogService))

	dashboard.On("Stats", mock.Anything).Return(&models.DashboardStats{
		TotalOrders:    4,
		PendingOrders:  1,
		TotalRevenue:   decimal.NewFromInt(2000),
		TotalCustomers: 3,
	}, nil).Once()

	req := testutils.CreateAdminRequest(http.MethodGet, "/api/v1/admin/stats", nil, nil)
	rr := httptest.NewRecorder()

	adminHandler.Stats().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var stats models.DashboardStats
	decodeResponse(t, rr, &stats)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.True(t, decimal.NewFromInt(2000).Equal(stats.TotalRevenue))
}

func TestAdminListOrders(t *testing.T) {
	dashboard := new(mocks.DashboardService)
	adminHandler := handlers.NewAdminHandler(dashboard, new(mocks.CatalogService))

	dashboard.On("ListOrders", mock.Anything, models.OrderFilter{Status: "pending", Limit: 20}).
		Return(&models.OrderListResponse{Data: []models.Order{{ID: "o1"}}, Total: 1, Limit: 20}, nil).Once()

	req := testutils.CreateAdminRequest(http.MethodGet, "/api/v1/admin/orders?limit=20&status=pending", nil, nil)
	rr := httptest.NewRecorder()

	adminHandler.ListOrders().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	dashboard.AssertExpectations(t)
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		dashboard := new(mocks.DashboardService)
		adminHandler := handlers.NewAdminHandler(dashboard, new(mocks.CatalogService))

		dashboard.On("UpdateOrderStatus", mock.Anything, "o1", "baking").Return(&models.Order{ID: "o1", Status: "baking"}, nil).Once()

		req := testutils.CreateAdminRequest(http.MethodPut, "/api/v1/admin/orders/o1/status", strings.NewReader(`{"status":"baking"}`), map[string]string{"id": "o1"})
		rr := httptest.NewRecorder()

		adminHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - unknown status is rejected by validation", func(t *testing.T) {
		dashboard := new(mocks.DashboardService)
		adminHandler := handlers.NewAdminHandler(dashboard, new(mocks.CatalogService))

		req := testutils.CreateAdminRequest(http.MethodPut, "/api/v1/admin/orders/o1/status", strings.NewReader(`{"status":"shipped"}`), map[string]string{"id": "o1"})
		rr := httptest.NewRecorder()

		adminHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		dashboard.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAdminCakes(t *testing.T) {
	t.Run("Success - create", func(t *testing.T) {
		catalog := new(mocks.CatalogService)
		adminHandler := handlers.NewAdminHandler(new(mocks.DashboardService), catalog)

		catalog.On("CreateCake", mock.Anything, mock.MatchedBy(func(r *models.CreateCakeRequest) bool {
			return r.Name == "Pineapple" && r.Price.Equal(decimal.NewFromInt(399))
		})).Return(&models.Cake{ID: "c5", Name: "Pineapple"}, nil).Once()

		req := testutils.CreateAdminRequest(http.MethodPost, "/api/v1/admin/cakes", strings.NewReader(`{"name":"Pineapple","price":"399","available":true}`), nil)
		rr := httptest.NewRecorder()

		adminHandler.CreateCake().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		catalog.AssertExpectations(t)
	})

	t.Run("Failure - create with short name", func(t *testing.T) {
		catalog := new(mocks.CatalogService)
		adminHandler := handlers.NewAdminHandler(new(mocks.DashboardService), catalog)

		req := testutils.CreateAdminRequest(http.MethodPost, "/api/v1/admin/cakes", strings.NewReader(`{"name":"P","price":10}`), nil)
		rr := httptest.NewRecorder()

		adminHandler.CreateCake().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Success - delete", func(t *testing.T) {
		catalog := new(mocks.CatalogService)
		adminHandler := handlers.NewAdminHandler(new(mocks.DashboardService), catalog)

		catalog.On("DeleteCake", mock.Anything, "c5").Return(nil).Once()

		req := testutils.CreateAdminRequest(http.MethodDelete, "/api/v1/admin/cakes/c5", nil, map[string]string{"id": "c5"})
		rr := httptest.NewRecorder()

		adminHandler.DeleteCake().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Success - update", func(t *testing.T) {
		catalog := new(mocks.CatalogService)
		adminHandler := handlers.NewAdminHandler(new(mocks.DashboardService), catalog)

		catalog.On("UpdateCake", mock.Anything, "c5", mock.AnythingOfType("*models.UpdateCakeRequest")).
			Return(&models.Cake{ID: "c5", Available: false}, nil).Once()

		req := testutils.CreateAdminRequest(http.MethodPut, "/api/v1/admin/cakes/c5", strings.NewReader(`{"available":false}`), map[string]string{"id": "c5"})
		rr := httptest.NewRecorder()

		adminHandler.UpdateCake().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
