package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	service "github.com/aaravmahajanofficial/cake-storefront/internal/services"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	dashboardService service.DashboardService
	catalogService   service.CatalogService
	validator        *validator.Validate
}

func NewAdminHandler(dashboardService service.DashboardService, catalogService service.CatalogService) *AdminHandler {
	return &AdminHandler{dashboardService: dashboardService, catalogService: catalogService, validator: validator.New()}
}

// Stats godoc
//	@Summary		Dashboard figures
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=models.DashboardStats}
//	@Failure		401	{object}	response.APIResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/stats [get]
func (h *AdminHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.dashboardService.Stats(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

// ListOrders godoc
//	@Summary		List orders
//	@Tags			Admin
//	@Produce		json
//	@Param			limit	query		int		false	"Maximum orders (default 50)"
//	@Param			status	query		string	false	"Status filter"
//	@Success		200		{object}	response.APIResponse{data=models.OrderListResponse}
//	@Security		BearerAuth
//	@Router			/admin/orders [get]
func (h *AdminHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		orders, err := h.dashboardService.ListOrders(r.Context(), models.OrderFilter{
			Status: r.URL.Query().Get("status"),
			Limit:  limit,
		})
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// UpdateOrderStatus godoc
//	@Summary		Move an order to a new status
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order ID"
//	@Param			body	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	response.APIResponse{data=models.Order}
//	@Failure		400		{object}	response.APIResponse	"Unknown status"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.dashboardService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update order status", slog.String("orderId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated", slog.String("orderId", id), slog.String("status", req.Status))
		response.Success(w, http.StatusOK, order)
	}
}

// ListCakes godoc
//	@Summary		List all cakes, available or not
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=[]models.Cake}
//	@Security		BearerAuth
//	@Router			/admin/cakes [get]
func (h *AdminHandler) ListCakes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cakes, err := h.catalogService.ListAll(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cakes)
	}
}

// CreateCake godoc
//	@Summary		Add a cake to the catalog
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			cake	body		models.CreateCakeRequest	true	"Cake"
//	@Success		201		{object}	response.APIResponse{data=models.Cake}
//	@Security		BearerAuth
//	@Router			/admin/cakes [post]
func (h *AdminHandler) CreateCake() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCakeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cake, err := h.catalogService.CreateCake(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create cake", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cake created", slog.String("cakeId", cake.ID))
		response.Success(w, http.StatusCreated, cake)
	}
}

// UpdateCake godoc
//	@Summary		Edit a catalog cake
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Cake ID"
//	@Param			cake	body		models.UpdateCakeRequest	true	"Fields to change"
//	@Success		200		{object}	response.APIResponse{data=models.Cake}
//	@Security		BearerAuth
//	@Router			/admin/cakes/{id} [put]
func (h *AdminHandler) UpdateCake() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCakeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cake, err := h.catalogService.UpdateCake(r.Context(), id, &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to update cake", slog.String("cakeId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cake)
	}
}

// DeleteCake godoc
//	@Summary		Remove a cake from the catalog
//	@Tags			Admin
//	@Param			id	path	string	true	"Cake ID"
//	@Success		204
//	@Security		BearerAuth
//	@Router			/admin/cakes/{id} [delete]
func (h *AdminHandler) DeleteCake() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.catalogService.DeleteCake(r.Context(), id); err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to delete cake", slog.String("cakeId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
