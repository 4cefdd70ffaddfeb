// internal/transport/http/respond.go
package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	stderrors "business-registry/internal/common/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError translates a StandardError into the JSON error envelope. Errors
// without a code fall through as 500 with no details, so internal text never
// leaves the process.
func writeError(w http.ResponseWriter, err error) {
	var stdErr *stderrors.StandardError
	if !errors.As(err, &stdErr) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"code":    "INTERNAL",
			"message": "internal error",
		})
		return
	}
	writeJSON(w, statusOf(stdErr.Code), stdErr)
}

func statusOf(code stderrors.ErrorCode) int {
	switch code {
	case stderrors.ErrCodeValidationFailed,
		stderrors.ErrCodeShareTotalInvalid,
		stderrors.ErrCodeStepNotAccessible,
		stderrors.ErrCodeDraftIncomplete,
		stderrors.ErrCodeUploadRejected:
		return http.StatusUnprocessableEntity
	case stderrors.ErrCodeUnknownStep:
		return http.StatusNotFound
	case stderrors.ErrCodeDuplicateUser,
		stderrors.ErrCodeSubmissionInFlight:
		return http.StatusConflict
	case stderrors.ErrCodeInvalidCredentials,
		stderrors.ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case stderrors.ErrCodeSubmissionFailed:
		return http.StatusBadGateway
	case stderrors.ErrCodeStorageReadFailed,
		stderrors.ErrCodeStorageWriteFailed:
		return http.StatusServiceUnavailable
	case stderrors.ErrCodeUploadCancelled:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
