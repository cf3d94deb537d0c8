package api

import (
	"go.uber.org/fx"

	"github.com/vecdb/vecdb-go/pkg/config"
	"github.com/vecdb/vecdb-go/pkg/logger"
)

// FXModule wires the HTTP client and its endpoint groups into Fx.
var FXModule = fx.Module("api",
	fx.Provide(
		func(cfg *config.Config, l *logger.Logger) (*Client, error) {
			return NewClient(cfg, l)
		},
		func(c *Client) *Datasets { return c.Datasets() },
		func(c *Client) *Search { return c.Search() },
		func(c *Client) *Deployables { return c.Deployables() },
	),
)
