package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	"github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	service "github.com/aaravmahajanofficial/cake-storefront/internal/services"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const heartbeatInterval = 15 * time.Second

type CartHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCartHandler(catalogService service.CatalogService) *CartHandler {
	return &CartHandler{catalogService: catalogService, validator: validator.New()}
}

// sessionCart fails the request when the session middleware did not run.
func sessionCart(w http.ResponseWriter, r *http.Request) (*cart.Store, bool) {
	store, ok := middleware.CartFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Error("Request reached a cart route without a session")
		response.Error(w, errors.InternalError("Session is not initialised"))

		return nil, false
	}

	return store, true
}

// GetCart godoc
//	@Summary		Get the session cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=models.CartView}	"Cart with totals"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, store.Snapshot().View())
	}
}

// AddItem godoc
//	@Summary		Add a cake to the cart
//	@Description	Adds the cake, merging with an existing line for the same cake. Quantity defaults to 1.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest						true	"Cake and quantity"
//	@Success		200		{object}	response.APIResponse{data=models.CartView}	"Updated cart"
//	@Failure		400		{object}	response.APIResponse						"Invalid quantity or unavailable cake"
//	@Failure		404		{object}	response.APIResponse						"Cake not found"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		store, ok := sessionCart(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		view, err := h.catalogService.AddToCart(r.Context(), store, &req)
		if err != nil {
			logger.Warn("Failed to add cake to cart", slog.String("cakeId", req.CakeID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cake added to cart", slog.String("cakeId", req.CakeID), slog.Int("totalItems", view.TotalItems))
		response.Success(w, http.StatusOK, view)
	}
}

// UpdateItem godoc
//	@Summary		Set a line's quantity
//	@Description	Sets the quantity exactly. Zero or less removes the line; an unknown cake id leaves the cart unchanged.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string										true	"Cake ID"
//	@Param			body	body		models.UpdateQuantityRequest				true	"New quantity"
//	@Success		200		{object}	response.APIResponse{data=models.CartView}	"Updated cart"
//	@Router			/cart/items/{id} [put]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		store, ok := sessionCart(w, r)
		if !ok {
			return
		}

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		store.SetQuantity(id, *req.Quantity)

		response.Success(w, http.StatusOK, store.Snapshot().View())
	}
}

// RemoveItem godoc
//	@Summary		Remove a line
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string										true	"Cake ID"
//	@Success		200	{object}	response.APIResponse{data=models.CartView}	"Updated cart"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r)
		if !ok {
			return
		}

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		store.RemoveItem(id)

		response.Success(w, http.StatusOK, store.Snapshot().View())
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=models.CartView}	"Empty cart"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r)
		if !ok {
			return
		}

		store.Clear()

		response.Success(w, http.StatusOK, store.Snapshot().View())
	}
}

// Events godoc
//	@Summary		Stream cart changes
//	@Description	Server-sent events. The first event carries the current cart; every later one follows a change and carries the cart after it.
//	@Tags			Cart
//	@Produce		text/event-stream
//	@Success		200
//	@Router			/cart/events [get]
func (h *CartHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		store, ok := sessionCart(w, r)
		if !ok {
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			response.Error(w, errors.InternalError("Streaming is not supported"))
			return
		}

		// Slow readers drop intermediate events; each event carries a full
		// snapshot so the next one delivered is still complete.
		events := make(chan cart.Event, 16)
		unsubscribe := store.Subscribe(func(e cart.Event) {
			select {
			case events <- e:
			default:
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		if err := writeEvent(w, "snapshot", store.Snapshot().View()); err != nil {
			return
		}
		flusher.Flush()

		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()

		for {
			select {
			case <-r.Context().Done():
				logger.Debug("Cart event stream closed")
				return

			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				flusher.Flush()

			case e := <-events:
				if err := writeEvent(w, string(e.Kind), e.Snapshot.View()); err != nil {
					logger.Warn("Cart event write failed", slog.String("error", err.Error()))
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, view models.CartView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)

	return err
}
