package handlers_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	appErrors "github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/aaravmahajanofficial/cake-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/cake-storefront/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seededCart(t *testing.T) *cart.Store {
	t.Helper()

	store := cart.NewStore()
	require.NoError(t, store.AddItem(models.CatalogItem{ItemID: "A", Name: "Truffle", UnitPrice: decimal.NewFromInt(10)}, 2))
	require.NoError(t, store.AddItem(models.CatalogItem{ItemID: "B", Name: "Mango", UnitPrice: decimal.NewFromInt(7)}, 1))

	return store
}

func TestGetCart(t *testing.T) {
	cartHandler := handlers.NewCartHandler(new(mocks.CatalogService))

	t.Run("Success - totals are derived from lines", func(t *testing.T) {
		// Arrange
		req := testutils.CreateCartRequest(http.MethodGet, "/api/v1/cart", nil, seededCart(t), nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var view models.CartView
		resp := decodeResponse(t, rr, &view)
		assert.True(t, resp.Success)
		require.Len(t, view.Items, 2)
		assert.Equal(t, "A", view.Items[0].ItemID)
		assert.Equal(t, 3, view.TotalItems)
		assert.True(t, decimal.NewFromInt(27).Equal(view.Subtotal))
		assert.True(t, view.DeliveryFee.IsZero())
	})

	t.Run("Failure - no session", func(t *testing.T) {
		req := testutils.CreateRequest(http.MethodGet, "/api/v1/cart", nil, nil)
		rr := httptest.NewRecorder()

		cartHandler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("Success - delegates to catalog", func(t *testing.T) {
		// Arrange
		catalog := new(mocks.CatalogService)
		cartHandler := handlers.NewCartHandler(catalog)
		store := cart.NewStore()

		two := 2
		catalog.On("AddToCart", mock.Anything, store, &models.AddItemRequest{CakeID: "c1", Quantity: &two}).
			Return(models.CartView{TotalItems: 2}, nil).Once()

		req := testutils.CreateCartRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"cake_id":"c1","quantity":2}`), store, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var view models.CartView
		decodeResponse(t, rr, &view)
		assert.Equal(t, 2, view.TotalItems)
		catalog.AssertExpectations(t)
	})

	t.Run("Failure - non-positive quantity rejected before catalog", func(t *testing.T) {
		catalog := new(mocks.CatalogService)
		cartHandler := handlers.NewCartHandler(catalog)

		req := testutils.CreateCartRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"cake_id":"c1","quantity":-3}`), cart.NewStore(), nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		catalog.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - explicit zero quantity", func(t *testing.T) {
		catalog := new(mocks.CatalogService)
		cartHandler := handlers.NewCartHandler(catalog)
		store := cart.NewStore()

		req := testutils.CreateCartRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"cake_id":"c1","quantity":0}`), store, nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, 0, store.Len())
		catalog.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - omitted quantity reaches catalog as nil", func(t *testing.T) {
		catalog := new(mocks.CatalogService)
		cartHandler := handlers.NewCartHandler(catalog)
		store := cart.NewStore()

		catalog.On("AddToCart", mock.Anything, store, &models.AddItemRequest{CakeID: "c1"}).
			Return(models.CartView{TotalItems: 1}, nil).Once()

		req := testutils.CreateCartRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"cake_id":"c1"}`), store, nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		catalog.AssertExpectations(t)
	})

	t.Run("Failure - unknown cake", func(t *testing.T) {
		catalog := new(mocks.CatalogService)
		cartHandler := handlers.NewCartHandler(catalog)

		catalog.On("AddToCart", mock.Anything, mock.Anything, mock.Anything).
			Return(models.CartView{}, appErrors.NotFoundError("Cake not found")).Once()

		req := testutils.CreateCartRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"cake_id":"zzz"}`), cart.NewStore(), nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateAndRemoveItem(t *testing.T) {
	cartHandler := handlers.NewCartHandler(new(mocks.CatalogService))

	t.Run("Success - set exact quantity", func(t *testing.T) {
		store := seededCart(t)
		req := testutils.CreateCartRequest(http.MethodPut, "/api/v1/cart/items/A", strings.NewReader(`{"quantity":6}`), store, map[string]string{"id": "A"})
		rr := httptest.NewRecorder()

		cartHandler.UpdateItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 7, store.TotalItemCount())
	})

	t.Run("Success - zero quantity removes the line", func(t *testing.T) {
		store := seededCart(t)
		req := testutils.CreateCartRequest(http.MethodPut, "/api/v1/cart/items/A", strings.NewReader(`{"quantity":0}`), store, map[string]string{"id": "A"})
		rr := httptest.NewRecorder()

		cartHandler.UpdateItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Failure - quantity missing", func(t *testing.T) {
		store := seededCart(t)
		req := testutils.CreateCartRequest(http.MethodPut, "/api/v1/cart/items/A", strings.NewReader(`{}`), store, map[string]string{"id": "A"})
		rr := httptest.NewRecorder()

		cartHandler.UpdateItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 3, store.TotalItemCount())
	})

	t.Run("Success - removing an unknown id changes nothing", func(t *testing.T) {
		store := seededCart(t)
		before := store.Snapshot()
		req := testutils.CreateCartRequest(http.MethodDelete, "/api/v1/cart/items/ghost", nil, store, map[string]string{"id": "ghost"})
		rr := httptest.NewRecorder()

		cartHandler.RemoveItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, before.Lines(), store.Items())
		assert.Equal(t, before.Version(), store.Snapshot().Version())
	})

	t.Run("Success - clear", func(t *testing.T) {
		store := seededCart(t)
		req := testutils.CreateCartRequest(http.MethodDelete, "/api/v1/cart", nil, store, nil)
		rr := httptest.NewRecorder()

		cartHandler.ClearCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 0, store.Len())
	})
}

func TestCartEvents(t *testing.T) {
	t.Run("Success - snapshot then change events", func(t *testing.T) {
		// Arrange
		cartHandler := handlers.NewCartHandler(new(mocks.CatalogService))
		store := seededCart(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartHandler.Events().ServeHTTP(w, r.WithContext(middleware.WithCart(r.Context(), "live-session", store)))
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		// Act
		resp, err := server.Client().Do(httpReq)
		require.NoError(t, err)
		defer resp.Body.Close()

		reader := bufio.NewReader(resp.Body)

		// Assert
		assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
		assert.Equal(t, "event: snapshot", readEventName(t, reader))

		store.RemoveItem("B")

		assert.Equal(t, "event: item_removed", readEventName(t, reader))
	})
}

func readEventName(t *testing.T, reader *bufio.Reader) string {
	t.Helper()

	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)

		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "event: ") {
			return line
		}
	}
}
