package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/nutrilabel/nutrictl/pkg/session"
)

func manualCmd() *cli.Command {
	return &cli.Command{
		Name:  "manual",
		Usage: "Print the full calculator manual",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprint(cmd.Root().Writer, session.ManualText())
			return nil
		},
	}
}
