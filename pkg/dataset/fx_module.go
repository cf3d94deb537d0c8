package dataset

import (
	"go.uber.org/fx"

	"github.com/vecdb/vecdb-go/pkg/logger"
)

// FXModule defines the Fx module for the dataset package.
var FXModule = fx.Module("dataset",
	fx.Provide(
		NewWriter,
		func(l *logger.Logger) Logger {
			return l
		},
	),
)
