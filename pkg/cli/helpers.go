package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/nutrilabel/nutrictl/pkg/serializer"
)

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Value: "yaml",
	Usage: "state output format (json, yaml, table)",
}

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: yaml, json, table", outFormat)
	}
	return outFormat, nil
}
