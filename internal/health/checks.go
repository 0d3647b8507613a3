package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/cake-storefront/internal/config"
	"github.com/aaravmahajanofficial/cake-storefront/pkg/bakery"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const Version = "1.0.0"

type Endpoints struct {
	Bakery bakery.Client
}

// NewHealthHandler reports the bakery backend and, when enabled, redis.
// Redis is skipped on error since the catalog falls back to the backend.
func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "bakery-api",
			Timeout:   5 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if endpoints == nil || endpoints.Bakery == nil {
					return fmt.Errorf("bakery client is not initialized")
				}

				if err := endpoints.Bakery.Health(ctx); err != nil {
					return fmt.Errorf("failed to reach bakery api: %w", err)
				}

				return nil
			},
		},
	}

	if cfg.RedisConnect.Enabled {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
