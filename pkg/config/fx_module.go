package config

import "go.uber.org/fx"

// FXModule provides the SDK configuration to the Fx graph.
var FXModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)
