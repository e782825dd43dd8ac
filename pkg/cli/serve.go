package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/nutrilabel/nutrictl/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API server",
		Description: `Starts the calculator's HTTP API. Scripts posted to /v1/report are
evaluated against a fresh aggregator per request; /health, /ready, and
/metrics expose the usual operational endpoints.

Configuration comes from the environment: PORT (default 8080), RATE_LIMIT
(requests per second per client), LOG_LEVEL.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.Serve(ctx)
		},
	}
}
