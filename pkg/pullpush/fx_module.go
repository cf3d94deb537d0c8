package pullpush

import (
	"go.uber.org/fx"

	"github.com/vecdb/vecdb-go/pkg/logger"
)

// FXModule defines the Fx module for the pullpush package.
var FXModule = fx.Module("pullpush",
	fx.Provide(
		NewRunner,
		func(l *logger.Logger) Logger {
			return l
		},
	),
)
