package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/cache"
	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	"github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/aaravmahajanofficial/cake-storefront/pkg/bakery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

type CatalogService interface {
	ListAvailable(ctx context.Context) ([]models.Cake, error)
	ListAll(ctx context.Context) ([]models.Cake, error)
	GetCake(ctx context.Context, id string) (*models.Cake, error)
	AddToCart(ctx context.Context, store *cart.Store, req *models.AddItemRequest) (models.CartView, error)
	CreateCake(ctx context.Context, req *models.CreateCakeRequest) (*models.Cake, error)
	UpdateCake(ctx context.Context, id string, req *models.UpdateCakeRequest) (*models.Cake, error)
	DeleteCake(ctx context.Context, id string) error
}

type catalogService struct {
	client bakery.Client
	cache  cache.Cache
	policy *bluemonday.Policy
}

func NewCatalogService(client bakery.Client, cache cache.Cache) CatalogService {
	return &catalogService{client: client, cache: cache, policy: bluemonday.StrictPolicy()}
}

// ListAvailable serves the storefront listing from the cache when it can.
// A broken cache only costs a backend round trip.
func (s *catalogService) ListAvailable(ctx context.Context) ([]models.Cake, error) {

	logger := middleware.LoggerFromContext(ctx)

	var cakes []models.Cake

	found, err := s.cache.Get(ctx, cache.AvailableCatalogKey, &cakes)
	if err != nil {
		logger.Warn("Catalog cache read failed", slog.String("error", err.Error()))
	}

	metrics.RecordCacheLookup(found)

	if found {
		return cakes, nil
	}

	available := true

	cakes, err = s.client.ListCakes(ctx, models.CakeFilter{Available: &available})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cache.AvailableCatalogKey, cakes, 0); err != nil {
		logger.Warn("Catalog cache write failed", slog.String("error", err.Error()))
	}

	return cakes, nil
}

func (s *catalogService) ListAll(ctx context.Context) ([]models.Cake, error) {
	return s.client.ListCakes(ctx, models.CakeFilter{})
}

func (s *catalogService) GetCake(ctx context.Context, id string) (*models.Cake, error) {

	if strings.TrimSpace(id) == "" {
		return nil, errors.AddValidationError("id", "is required")
	}

	key := cache.Key(cache.CakeKeyPrefix, id)

	var cake models.Cake

	found, err := s.cache.Get(ctx, key, &cake)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Cake cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	if found {
		return &cake, nil
	}

	fetched, err := s.client.GetCake(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, 0); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Cake cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return fetched, nil
}

// AddToCart snapshots the cake's current name, price and image into the
// line. Later catalog edits do not reach lines already in the cart.
func (s *catalogService) AddToCart(ctx context.Context, store *cart.Store, req *models.AddItemRequest) (models.CartView, error) {
	cake, err := s.GetCake(ctx, req.CakeID)
	if err != nil {
		return models.CartView{}, err
	}

	if !cake.Available {
		return models.CartView{}, errors.BadRequestError("Cake is not available: " + cake.Name)
	}

	if err := store.AddItem(cake.CatalogItem(), req.RequestedQuantity()); err != nil {
		return models.CartView{}, err
	}

	return store.Snapshot().View(), nil
}

func (s *catalogService) CreateCake(ctx context.Context, req *models.CreateCakeRequest) (*models.Cake, error) {

	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, errors.AddValidationError("price", "must be greater than 0")
	}

	req.Name = s.clean(req.Name)
	req.Description = s.clean(req.Description)
	req.Category = s.clean(req.Category)

	if req.Name == "" {
		return nil, errors.AddValidationError("name", "is required")
	}

	cake, err := s.client.CreateCake(ctx, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cake.ID)

	return cake, nil
}

func (s *catalogService) UpdateCake(ctx context.Context, id string, req *models.UpdateCakeRequest) (*models.Cake, error) {
	if req.Price != nil && req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, errors.AddValidationError("price", "must be greater than 0")
	}

	for _, field := range []*string{req.Name, req.Description, req.Category} {
		if field != nil {
			*field = s.clean(*field)
		}
	}

	cake, err := s.client.UpdateCake(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	return cake, nil
}

func (s *catalogService) DeleteCake(ctx context.Context, id string) error {
	if err := s.client.DeleteCake(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *catalogService) clean(value string) string {
	return sanitizeText(s.policy, value)
}

func (s *catalogService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cache.AvailableCatalogKey, cache.Key(cache.CakeKeyPrefix, id)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache invalidation failed", slog.String("cakeId", id), slog.String("error", err.Error()))
	}
}
