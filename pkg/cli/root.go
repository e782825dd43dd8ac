package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nutrilabel/nutrictl/pkg/logging"
)

const appName = "nutrictl"

// version is overridden during build with ldflags.
var version = "dev"

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}

// New constructs the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:                  "nutrictl",
		Usage:                 "Nutrition label calculator for composite products",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLogger(appName, version,
				cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			runCmd(),
			exampleCmd(),
			manualCmd(),
			serveCmd(),
		},
	}
}
