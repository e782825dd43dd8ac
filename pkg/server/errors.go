package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
	"github.com/nutrilabel/nutrictl/pkg/serializer"
)

// HTTPStatusFromCode maps an error code to the HTTP status it should be
// served with. Unknown codes map to 500.
func HTTPStatusFromCode(code string) int {
	switch code {
	case nuterrors.ErrCodeInvalidArgument,
		nuterrors.ErrCodeInvalidConfiguration,
		nuterrors.ErrCodeUnknownCommand:
		return http.StatusBadRequest
	case nuterrors.ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may reasonably retry the request
// unchanged.
func retryableFromCode(code string) bool {
	switch code {
	case ErrCodeRateLimitExceeded, nuterrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError writes the standard error envelope for the given code.
func WriteError(w http.ResponseWriter, r *http.Request, code, message string, details map[string]interface{}) {
	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryableFromCode(code),
	}

	serializer.RespondJSON(w, HTTPStatusFromCode(code), errResp)
}
