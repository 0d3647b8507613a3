package telemetry_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/cake-storefront/internal/config"
	"github.com/aaravmahajanofficial/cake-storefront/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer(t *testing.T) {
	t.Run("Success - disabled returns noop shutdown", func(t *testing.T) {
		shutdown, err := telemetry.InitTracer(context.Background(), &config.Otel{Enabled: false})

		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("Success - enabled builds a provider", func(t *testing.T) {
		cfg := &config.Otel{
			Enabled:          true,
			ServiceName:      "cake-storefront-test",
			ExporterEndpoint: "localhost:4318",
			SamplerRatio:     1.0,
		}

		shutdown, err := telemetry.InitTracer(context.Background(), cfg)

		require.NoError(t, err)
		assert.NotNil(t, shutdown)
	})
}
