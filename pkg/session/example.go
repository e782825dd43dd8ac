package session

import (
	"log/slog"
	"os"
	"strings"
)

// DefaultExampleReport is where the example command writes its sample report.
const DefaultExampleReport = "nutrition_report.txt"

// RunExample executes the embedded sample scenario in a fresh session and
// writes the resulting report to path.
func RunExample(path string) error {
	s := New(os.Stdout)
	defer s.Close()

	if err := s.SetOutputFile(path); err != nil {
		return err
	}
	if err := s.Execute(strings.NewReader(exampleScript)); err != nil {
		return err
	}
	slog.Info("sample report written", slog.String("path", path))
	return nil
}
