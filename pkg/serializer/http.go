package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
)

// RespondJSON writes v as the JSON response body with the given status. The
// body is encoded into a buffer before any header is written, so a value that
// fails to encode surfaces as an INTERNAL_ERROR envelope rather than a
// success status with a truncated body.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encoding response body", slog.String("error", err.Error()))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "{\"code\":%q,\"message\":\"failed to encode response\"}\n",
			nuterrors.ErrCodeInternal)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Client is gone; nothing left to send the error to.
		slog.Warn("writing response body", slog.String("error", err.Error()))
	}
}
