package session

import _ "embed"

var (
	//go:embed data/usage.txt
	usageText string

	//go:embed data/manual.txt
	manualText string

	//go:embed data/example.txt
	exampleScript string
)

// UsageText returns the short command reference shown by the help command.
func UsageText() string { return usageText }

// ManualText returns the full manual.
func ManualText() string { return manualText }
