package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nutrilabel/nutrictl/pkg/session"
)

func exampleCmd() *cli.Command {
	return &cli.Command{
		Name:  "example",
		Usage: "Run a fixed sample scenario and write its report to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   session.DefaultExampleReport,
				Usage:   "sample report file path",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return session.RunExample(cmd.String("output"))
		},
	}
}
