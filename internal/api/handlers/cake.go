package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	service "github.com/aaravmahajanofficial/cake-storefront/internal/services"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils/response"
)

type CakeHandler struct {
	catalogService service.CatalogService
}

func NewCakeHandler(catalogService service.CatalogService) *CakeHandler {
	return &CakeHandler{catalogService: catalogService}
}

// ListCakes godoc
//	@Summary		List available cakes
//	@Description	Returns every cake the bakery currently sells. Served from the catalog cache when it is warm.
//	@Tags			Cakes
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=[]models.Cake}	"Available cakes"
//	@Failure		502	{object}	response.APIResponse						"Bakery service unreachable"
//	@Router			/cakes [get]
func (h *CakeHandler) ListCakes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		cakes, err := h.catalogService.ListAvailable(r.Context())
		if err != nil {
			logger.Error("Failed to list cakes", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cakes)
	}
}

// GetCake godoc
//	@Summary		Get a cake
//	@Tags			Cakes
//	@Produce		json
//	@Param			id	path		string									true	"Cake ID"
//	@Success		200	{object}	response.APIResponse{data=models.Cake}	"Cake"
//	@Failure		404	{object}	response.APIResponse					"Cake not found"
//	@Router			/cakes/{id} [get]
func (h *CakeHandler) GetCake() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		cake, err := h.catalogService.GetCake(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get cake", slog.String("cakeId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cake)
	}
}
