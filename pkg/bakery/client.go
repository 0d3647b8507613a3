// Package bakery is the REST client for the bakery backend, which owns the
// cake catalog, order persistence and order status transitions.
package bakery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	maxResponseBytes     = 1 << 20

	msgUnreachable   = "Unable to reach the bakery service"
	msgOrderFailed   = "Failed to place order"
	msgBadResponse   = "Unexpected response from the bakery service"
	msgCakeNotFound  = "Cake not found"
	msgOrderNotFound = "Order not found"
)

// defines the calls the storefront makes against the bakery backend.
type Client interface {
	ListCakes(ctx context.Context, filter models.CakeFilter) ([]models.Cake, error)
	GetCake(ctx context.Context, id string) (*models.Cake, error)
	CreateCake(ctx context.Context, req *models.CreateCakeRequest) (*models.Cake, error)
	UpdateCake(ctx context.Context, id string, req *models.UpdateCakeRequest) (*models.Cake, error)
	DeleteCake(ctx context.Context, id string) error
	CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) (*models.Order, error)
	Health(ctx context.Context) error
}

type Option func(*restClient)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *restClient) {
		c.http = httpClient
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *restClient) {
		c.logger = logger
	}
}

type restClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) Client {
	c := &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *restClient) ListCakes(ctx context.Context, filter models.CakeFilter) ([]models.Cake, error) {
	query := url.Values{}
	if filter.Available != nil {
		query.Set("available", strconv.FormatBool(*filter.Available))
	}

	var cakes []models.Cake
	if err := c.do(ctx, http.MethodGet, "/cakes", query, nil, nil, &cakes, "Failed to fetch cakes"); err != nil {
		return nil, err
	}

	if cakes == nil {
		cakes = []models.Cake{}
	}

	return cakes, nil
}

func (c *restClient) GetCake(ctx context.Context, id string) (*models.Cake, error) {
	var cake models.Cake
	if err := c.lookup(ctx, "/cakes/"+url.PathEscape(id), &cake, msgCakeNotFound); err != nil {
		return nil, err
	}

	return &cake, nil
}

func (c *restClient) CreateCake(ctx context.Context, req *models.CreateCakeRequest) (*models.Cake, error) {
	var cake models.Cake
	if err := c.do(ctx, http.MethodPost, "/cakes", nil, nil, req, &cake, "Failed to create cake"); err != nil {
		return nil, err
	}

	return &cake, nil
}

func (c *restClient) UpdateCake(ctx context.Context, id string, req *models.UpdateCakeRequest) (*models.Cake, error) {
	var cake models.Cake
	if err := c.do(ctx, http.MethodPut, "/cakes/"+url.PathEscape(id), nil, nil, req, &cake, "Failed to update cake"); err != nil {
		return nil, err
	}

	return &cake, nil
}

func (c *restClient) DeleteCake(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cakes/"+url.PathEscape(id), nil, nil, nil, nil, "Failed to delete cake")
}

// CreateOrder posts the draft once. The draft id goes out as the idempotency
// key so a backend that honours it can drop a replayed request.
func (c *restClient) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	headers := http.Header{}
	headers.Set(IdempotencyKeyHeader, draft.ID().String())

	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, headers, draft.Payload(), &order, msgOrderFailed); err != nil {
		return nil, err
	}

	if order.ID == "" {
		return nil, appErrors.ServerRejectionError(msgOrderFailed, http.StatusBadGateway).WithDetail("order id missing from response")
	}

	return &order, nil
}

func (c *restClient) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.lookup(ctx, "/orders/"+url.PathEscape(id), &order, msgOrderNotFound); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *restClient) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query := url.Values{}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, nil, &orders, "Failed to fetch orders"); err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return orders, nil
}

func (c *restClient) UpdateOrderStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	body := map[string]string{"status": status}

	var order models.Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", nil, nil, body, &order, "Failed to update order status"); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *restClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil, nil, "Bakery service is unhealthy")
}

// lookup is do for a GET of one resource, where a 404 means the resource
// does not exist rather than that the backend refused the request.
func (c *restClient) lookup(ctx context.Context, path string, out any, fallback string) error {
	err := c.do(ctx, http.MethodGet, path, nil, nil, nil, out, fallback)

	if appErr, ok := appErrors.IsAppError(err); ok &&
		appErr.Code == appErrors.ErrCodeServerRejection && appErr.StatusCode == http.StatusNotFound {
		return appErrors.NotFoundError(appErr.Message)
	}

	return err
}

// do sends one request and maps the outcome onto the storefront's error
// codes: no response at all is a transport error and any non-2xx is a
// rejection carrying the backend's message or fallback.
func (c *restClient) do(ctx context.Context, method, path string, query url.Values, headers http.Header, body, out any, fallback string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return appErrors.InternalError("Failed to encode request").WithError(err)
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return appErrors.InternalError("Failed to build request").WithError(err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	c.logger.InfoContext(ctx, "Bakery API request", slog.String("method", method), slog.String("path", path))

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Bakery API unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))

		return appErrors.TransportError(msgUnreachable).WithError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return appErrors.TransportError(msgUnreachable).WithError(err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		message := fallback
		if decodeErr == nil && env.Error != "" {
			message = env.Error
		}

		c.logger.WarnContext(ctx, "Bakery API error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)),
			slog.String("message", message))

		return appErrors.ServerRejectionError(message, resp.StatusCode)
	}

	c.logger.InfoContext(ctx, "Bakery API response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if out == nil {
		return nil
	}

	if decodeErr != nil {
		return appErrors.InternalError(msgBadResponse).WithError(decodeErr)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return appErrors.InternalError(msgBadResponse).WithError(fmt.Errorf("decoding %s %s: %w", method, path, err))
	}

	return nil
}
