package session

import (
	"github.com/agnivade/levenshtein"

	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
)

// maxSuggestDistance bounds how different a name may be from a known command
// before we stop offering it as a suggestion.
const maxSuggestDistance = 3

func unknownCommandError(name string) error {
	if suggestion := suggestCommand(name); suggestion != "" {
		return nuterrors.Newf(nuterrors.ErrCodeUnknownCommand,
			"unknown command %q, did you mean %q? (run \"help\" for usage)", name, suggestion)
	}
	return nuterrors.Newf(nuterrors.ErrCodeUnknownCommand,
		"unknown command %q (run \"help\" for usage)", name)
}

// suggestCommand returns the known command closest to name by edit distance,
// or "" when nothing is close enough to be a plausible typo.
func suggestCommand(name string) string {
	best := ""
	bestDistance := maxSuggestDistance + 1
	for candidate := range commands {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
