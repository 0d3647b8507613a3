package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	service "github.com/aaravmahajanofficial/cake-storefront/internal/services"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils/response"
)

type OrderHandler struct {
	trackingService service.TrackingService
}

func NewOrderHandler(trackingService service.TrackingService) *OrderHandler {
	return &OrderHandler{trackingService: trackingService}
}

// TrackOrder godoc
//	@Summary		Track an order
//	@Description	Returns the order with its status label, progress timeline and totals.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string										true	"Order ID"
//	@Success		200	{object}	response.APIResponse{data=models.TrackedOrder}	"Tracked order"
//	@Failure		404	{object}	response.APIResponse						"Order not found"
//	@Failure		502	{object}	response.APIResponse						"Bakery service unreachable"
//	@Router			/orders/{id} [get]
func (h *OrderHandler) TrackOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("orderId", id))

		tracked, err := h.trackingService.Track(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to track order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, tracked)
	}
}
