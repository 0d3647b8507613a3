package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	"github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/aaravmahajanofficial/cake-storefront/pkg/bakery"
	"github.com/microcosm-cc/bluemonday"
)

// CheckoutService turns a cart into a backend order.
type CheckoutService interface {
	// Submit snapshots the cart, sends one order-creation request and removes
	// the ordered lines only if the backend accepted the order. At most one
	// submission per cart is in flight at any time.
	Submit(ctx context.Context, store *cart.Store, info models.DeliveryInfo) (string, error)
	InFlight(store *cart.Store) bool
}

type checkoutService struct {
	client        bakery.Client
	submitTimeout time.Duration
	policy        *bluemonday.Policy

	mu       sync.Mutex
	inFlight map[*cart.Store]struct{}
}

type submitResult struct {
	order *models.Order
	err   error
}

func NewCheckoutService(client bakery.Client, submitTimeout time.Duration) CheckoutService {
	return &checkoutService{
		client:        client,
		submitTimeout: submitTimeout,
		policy:        bluemonday.StrictPolicy(),
		inFlight:      make(map[*cart.Store]struct{}),
	}
}

func (s *checkoutService) Submit(ctx context.Context, store *cart.Store, info models.DeliveryInfo) (string, error) {

	logger := middleware.LoggerFromContext(ctx)

	snapshot := store.Snapshot()
	if snapshot.IsEmpty() {
		metrics.RecordCheckout(metrics.OutcomeValidation)
		return "", errors.ValidationError("Cannot place an order with an empty cart")
	}

	delivery, err := s.cleanDelivery(info)
	if err != nil {
		metrics.RecordCheckout(metrics.OutcomeValidation)
		return "", err
	}

	if !s.acquire(store) {
		metrics.RecordCheckout(metrics.OutcomeInProgress)
		logger.Warn("Order submission already in flight for this cart")

		return "", errors.SubmissionInProgressError("An order for this cart is already being placed")
	}

	draft := models.NewOrderDraft(delivery, snapshot.DraftItems())

	logger = logger.With(slog.String("draftId", draft.ID().String()), slog.Uint64("cartVersion", snapshot.Version()))
	logger.Info("Submitting order", slog.Int("lines", snapshot.Len()), slog.Int("items", snapshot.TotalItemCount()))

	// The call outlives an abandoning caller: its result still decides whether
	// the cart is cleared, and the guard is only released once it resolves.
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.submitTimeout)
	results := make(chan submitResult, 1)

	go func() {
		start := time.Now()
		order, err := s.client.CreateOrder(callCtx, draft)
		metrics.ObserveCheckoutBackend(time.Since(start))

		if err == nil {
			store.RemoveOrdered(snapshot)
		}

		s.release(store)
		cancel()

		results <- submitResult{order: order, err: err}
	}()

	select {
	case res := <-results:
		return finishSubmit(logger, res)

	case <-ctx.Done():
		// A result that raced the cancellation still wins.
		select {
		case res := <-results:
			return finishSubmit(logger, res)
		default:
		}

		metrics.RecordCheckout(metrics.OutcomeAbandoned)
		logger.Warn("Order submission abandoned by caller", slog.String("cause", ctx.Err().Error()))

		go func() {
			res := <-results
			if res.err != nil {
				logger.Warn("Abandoned order submission failed", slog.String("error", res.err.Error()))
				return
			}

			logger.Info("Abandoned order submission completed", slog.String("orderId", res.order.ID))
		}()

		return "", errors.SubmissionAbandonedError("Order submission was abandoned before the bakery answered").WithError(ctx.Err())
	}
}

func finishSubmit(logger *slog.Logger, res submitResult) (string, error) {
	if res.err != nil {
		metrics.RecordCheckout(outcomeFor(res.err))
		logger.Error("Order submission failed", slog.String("error", res.err.Error()))

		return "", res.err
	}

	metrics.RecordCheckout(metrics.OutcomeSuccess)
	logger.Info("Order placed", slog.String("orderId", res.order.ID))

	return res.order.ID, nil
}

func (s *checkoutService) InFlight(store *cart.Store) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.inFlight[store]

	return ok
}

func (s *checkoutService) acquire(store *cart.Store) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[store]; busy {
		return false
	}

	s.inFlight[store] = struct{}{}

	return true
}

func (s *checkoutService) release(store *cart.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, store)
}

// cleanDelivery strips markup and surrounding space, then requires every field.
func (s *checkoutService) cleanDelivery(info models.DeliveryInfo) (models.DeliveryInfo, error) {
	cleaned := models.DeliveryInfo{
		CustomerName: s.clean(info.CustomerName),
		Email:        s.clean(info.Email),
		Phone:        s.clean(info.Phone),
		Address:      s.clean(info.Address),
	}

	fields := []struct {
		name  string
		value string
	}{
		{"customer_name", cleaned.CustomerName},
		{"email", cleaned.Email},
		{"phone", cleaned.Phone},
		{"address", cleaned.Address},
	}

	for _, field := range fields {
		if field.value == "" {
			return models.DeliveryInfo{}, errors.AddValidationError(field.name, "is required").WithDetail(field.name)
		}
	}

	return cleaned, nil
}

func (s *checkoutService) clean(value string) string {
	return sanitizeText(s.policy, value)
}

func outcomeFor(err error) string {
	switch {
	case errors.HasCode(err, errors.ErrCodeTransport):
		return metrics.OutcomeTransport
	default:
		return metrics.OutcomeRejected
	}
}
