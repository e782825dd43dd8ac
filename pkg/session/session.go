// Package session implements the calculator's command language: a line-based
// dispatcher that drives one nutrition.Aggregator per session. Commands mutate
// the aggregator (create_product, create_ingredient, add_ingredient_to_product,
// ...) or render read-only report sections (print_summary, print_nutritional_table,
// ...). Report output goes to the session writer until set_output_file redirects
// it to a file.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
	"github.com/nutrilabel/nutrictl/pkg/nutrition"
	"github.com/nutrilabel/nutrictl/pkg/report"
)

// Session executes calculator commands against a single aggregator. It is not
// safe for concurrent use; commands run strictly in order.
type Session struct {
	agg    *nutrition.Aggregator
	stdout io.Writer
	out    io.Writer
	file   *os.File

	// fileOutputAllowed is cleared for sessions driven by remote input, where
	// set_output_file must not touch the local filesystem.
	fileOutputAllowed bool
}

// New returns a session whose report output and help text go to out.
func New(out io.Writer) *Session {
	return &Session{
		agg:               nutrition.NewAggregator(),
		stdout:            out,
		out:               out,
		fileOutputAllowed: true,
	}
}

// Aggregator exposes the session's aggregator for inspection and export.
func (s *Session) Aggregator() *nutrition.Aggregator {
	return s.agg
}

// DisableFileOutput rejects set_output_file for the rest of the session.
func (s *Session) DisableFileOutput() {
	s.fileOutputAllowed = false
}

// Execute reads commands line by line and dispatches them in order. Blank
// lines and lines starting with '#' are skipped. The first failing command
// aborts execution; its error names the line it came from.
func (s *Session) Execute(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.Dispatch(strings.Fields(text)); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nuterrors.Wrap(nuterrors.ErrCodeInternal, err, "reading command input")
	}
	return nil
}

// Dispatch executes a single tokenized command.
func (s *Session) Dispatch(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return unknownCommandError(name)
	}
	if len(args) < cmd.minArgs {
		return nuterrors.Newf(nuterrors.ErrCodeInvalidArgument,
			"%s: expected %s", name, cmd.argSpec)
	}
	return cmd.run(s, args)
}

// SetOutputFile redirects subsequent report output to path. The file is
// truncated on set; all later reports append through the open handle.
func (s *Session) SetOutputFile(path string) error {
	if !s.fileOutputAllowed {
		return nuterrors.New(nuterrors.ErrCodeInvalidConfiguration,
			"set_output_file is not permitted in this session")
	}
	f, err := os.Create(path)
	if err != nil {
		return nuterrors.Wrap(nuterrors.ErrCodeInvalidConfiguration, err, "opening output file")
	}
	if s.file != nil {
		s.file.Close()
	}
	s.file = f
	s.out = f
	return nil
}

// Close releases the report output file, if one was set.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.out = s.stdout
	return err
}

type command struct {
	minArgs int
	argSpec string
	run     func(*Session, []string) error
}

var commands map[string]command

// init breaks the initialization cycle between the command table and handlers
// that reference it (help text lists command names).
func init() {
	commands = map[string]command{
		"create_product": {1, "<name>", func(s *Session, args []string) error {
			s.agg.CreateProduct(strings.Join(args, " "))
			return nil
		}},
		"create_ingredient": {3, "<name> <label_mass> <serving_size> [display_name]", func(s *Session, args []string) error {
			labelMass, err := parseGrams("create_ingredient", "label_mass", args[1])
			if err != nil {
				return err
			}
			labelServing, err := parseGrams("create_ingredient", "serving_size", args[2])
			if err != nil {
				return err
			}
			s.agg.DefineIngredient(args[0], labelMass, labelServing, strings.Join(args[3:], " "))
			return nil
		}},
		"set_ingredient_nutrient": {2, "<ingredient> <nutrient> [value]", func(s *Session, args []string) error {
			// A missing value clears the nutrient to "no data"; it must not
			// be recorded as zero.
			if len(args) < 3 || args[2] == "" {
				s.agg.ClearNutrient(args[0], args[1])
				return nil
			}
			value, err := parseGrams("set_ingredient_nutrient", "value", args[2])
			if err != nil {
				return err
			}
			s.agg.SetNutrient(args[0], args[1], value)
			return nil
		}},
		"add_ingredient_to_product": {2, "<ingredient> <used_mass>", func(s *Session, args []string) error {
			usedMass, err := parseGrams("add_ingredient_to_product", "used_mass", args[1])
			if err != nil {
				return err
			}
			return s.agg.AddIngredient(args[0], usedMass)
		}},
		"set_serving_size": {1, "<grams>", func(s *Session, args []string) error {
			grams, err := parseGrams("set_serving_size", "grams", args[0])
			if err != nil {
				return err
			}
			return s.agg.SetServingSize(grams)
		}},
		"set_output_file": {1, "<path>", func(s *Session, args []string) error {
			return s.SetOutputFile(args[0])
		}},
		"print_summary": {0, "", func(s *Session, _ []string) error {
			return report.WriteSummary(s.out, s.agg.Summary())
		}},
		"print_ingredient_list": {0, "", func(s *Session, _ []string) error {
			return report.WriteIngredientList(s.out, s.agg.Ingredients())
		}},
		"print_nutritional_table": {0, "", func(s *Session, _ []string) error {
			return report.WriteNutrientTable(s.out, s.agg.NutrientTable())
		}},
		"print_ingredient_nutrition": {1, "<ingredient>", func(s *Session, args []string) error {
			rows, err := s.agg.IngredientNutrition(args[0])
			if err != nil {
				return err
			}
			return report.WriteIngredientNutrition(s.out, s.agg.Ingredient(args[0]).DisplayName, rows)
		}},
		"help": {0, "", func(s *Session, _ []string) error {
			_, err := io.WriteString(s.stdout, usageText)
			return err
		}},
		"manual": {0, "", func(s *Session, _ []string) error {
			_, err := io.WriteString(s.stdout, manualText)
			return err
		}},
		"example": {0, "", func(s *Session, _ []string) error {
			// RunExample writes a report file through a fresh session; a
			// session that must not touch the filesystem cannot run it.
			if !s.fileOutputAllowed {
				return nuterrors.New(nuterrors.ErrCodeInvalidConfiguration,
					"example is not permitted in this session")
			}
			return RunExample(DefaultExampleReport)
		}},
	}
}

func parseGrams(cmd, arg, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, nuterrors.Newf(nuterrors.ErrCodeInvalidArgument,
			"%s: %s must be a number, got %q", cmd, arg, raw)
	}
	return v, nil
}
