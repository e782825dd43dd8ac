package session

import (
	"bytes"
	"io"
	"net/http"

	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
	"github.com/nutrilabel/nutrictl/pkg/nutrition"
	"github.com/nutrilabel/nutrictl/pkg/serializer"
)

// maxScriptBytes bounds the size of a script accepted over HTTP.
const maxScriptBytes = 1 << 20

// ReportResponse is the computed result of a script submitted to the API.
type ReportResponse struct {
	Summary     nutrition.Summary           `json:"summary"`
	Ingredients []nutrition.IngredientUsage `json:"ingredients"`
	Nutrients   nutrition.Table             `json:"nutrients"`
	ReportText  string                      `json:"reportText,omitempty"`
}

// ErrorReply mirrors the server error envelope for script failures.
type ErrorReply struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleReport handles POST /v1/report. The request body is a calculator
// script; it runs against a fresh aggregator and the response carries the
// resulting projections plus any text the script's print commands produced.
// File output is disabled for scripts received over the network.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxScriptBytes))
	if err != nil {
		serializer.RespondJSON(w, http.StatusBadRequest, ErrorReply{
			Code:    nuterrors.ErrCodeInvalidArgument,
			Message: "failed to read request body",
		})
		return
	}

	var rendered bytes.Buffer
	s := New(&rendered)
	s.DisableFileOutput()

	if err := s.Execute(bytes.NewReader(body)); err != nil {
		serializer.RespondJSON(w, http.StatusBadRequest, ErrorReply{
			Code:    nuterrors.CodeOf(err),
			Message: err.Error(),
		})
		return
	}

	agg := s.Aggregator()
	serializer.RespondJSON(w, http.StatusOK, ReportResponse{
		Summary:     agg.Summary(),
		Ingredients: agg.Ingredients(),
		Nutrients:   agg.NutrientTable(),
		ReportText:  rendered.String(),
	})
}
