package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	service "github.com/aaravmahajanofficial/cake-storefront/internal/services"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout godoc
//	@Summary		Place an order from the session cart
//	@Description	Sends the cart and delivery details to the bakery once. The cart is emptied only when the order is accepted.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			delivery	body		models.CheckoutRequest								true	"Delivery details"
//	@Success		201			{object}	response.APIResponse{data=models.CheckoutResponse}	"Order placed"
//	@Failure		400			{object}	response.APIResponse								"Empty cart or missing delivery field"
//	@Failure		408			{object}	response.APIResponse								"Client went away before the bakery answered"
//	@Failure		409			{object}	response.APIResponse								"An order for this cart is already being placed"
//	@Failure		422			{object}	response.APIResponse								"Rejected by the bakery"
//	@Failure		502			{object}	response.APIResponse								"Bakery service unreachable"
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		store, ok := sessionCart(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid checkout body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		orderID, err := h.checkoutService.Submit(r.Context(), store, req.DeliveryInfo)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, models.CheckoutResponse{
			OrderID:     orderID,
			TrackingURL: "/api/v1/orders/" + orderID,
		})
	}
}
