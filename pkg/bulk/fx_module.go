package bulk

import (
	"go.uber.org/fx"

	"github.com/vecdb/vecdb-go/pkg/config"
	"github.com/vecdb/vecdb-go/pkg/logger"
	"github.com/vecdb/vecdb-go/pkg/metrics"
)

// FXModule wires the bulk-write instruments and default options into Fx.
//
// Writers themselves are built per dataset and operation (a Transport is
// bound to both), so the module provides the shared pieces rather than a
// singleton Writer.
var FXModule = fx.Module("bulk",
	fx.Provide(
		func(m *metrics.Metrics) *Collectors {
			return NewCollectors(m.Registry)
		},
		func(cfg *config.Config) Options {
			return DefaultOptions(cfg)
		},
		func(l *logger.Logger) Logger {
			return l
		},
	),
)
