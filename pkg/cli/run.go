package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nutrilabel/nutrictl/pkg/serializer"
	"github.com/nutrilabel/nutrictl/pkg/session"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute calculator command scripts",
		ArgsUsage: "[script ...]",
		Description: `Executes session commands from the given script files, in order, against a
single aggregator. With no arguments, commands are read from stdin.

Commands are one per line; blank lines and '#' comments are skipped. Run
"nutrictl manual" for the command reference.

# Examples

Compute a report from a recipe script:
  nutrictl run recipe.txt

Write report sections to a file instead of stdout:
  nutrictl run --report report.txt recipe.txt

Export the final aggregator state for further processing:
  nutrictl run --state state.json --format json recipe.txt`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "report",
				Aliases: []string{"o"},
				Usage:   "initial report destination (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "state",
				Usage: "write the final aggregator state to this path (\"-\" for stdout)",
			},
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := session.New(os.Stdout)
			defer func() {
				if err := s.Close(); err != nil {
					slog.Warn("failed to close report output", "error", err)
				}
			}()

			if path := cmd.String("report"); path != "" {
				if err := s.SetOutputFile(path); err != nil {
					return err
				}
			}

			scripts := cmd.Args().Slice()
			if len(scripts) == 0 {
				if err := s.Execute(os.Stdin); err != nil {
					return err
				}
			}
			for _, path := range scripts {
				if err := executeScript(s, path); err != nil {
					return err
				}
			}

			statePath := cmd.String("state")
			if statePath == "" {
				return nil
			}
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			ser := serializer.NewFileWriterOrStdout(outFormat, statePath)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()
			return ser.Serialize(s.Aggregator().State())
		},
	}
}

func executeScript(s *session.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	slog.Debug("executing script", slog.String("path", path))
	if err := s.Execute(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
