package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/vecdb/vecdb-go/pkg/logger"
)

// FXModule defines the Fx module for the metrics package.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewConfig,
		NewMetrics,
		func(l *logger.Logger) Logger {
			return l
		},
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the scrape server when the app starts
// and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					m.logger.Error("metrics server stopped", err, map[string]interface{}{"address": m.Server.Addr})
				}
			}()
			m.logger.Info("metrics server listening", nil, map[string]interface{}{"address": m.Server.Addr, "service": m.serviceName})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
