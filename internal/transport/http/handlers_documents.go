// internal/transport/http/handlers_documents.go
package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/models"
	"business-registry/internal/upload"
)

type DocumentHandler struct {
	tracker *upload.Tracker
	logger  logger.Logger
}

func NewDocumentHandler(tracker *upload.Tracker, log logger.Logger) *DocumentHandler {
	return &DocumentHandler{tracker: tracker, logger: log}
}

// HandleRequirements lists the document slots the wizard expects.
func (h *DocumentHandler) HandleRequirements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"requirements": models.DocumentRequirements,
	})
}

// HandleUpload validates the described file for the slot and drives the
// simulated transfer to completion. Closing the connection cancels the
// transfer through the request context.
func (h *DocumentHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserFrom(r.Context()); !ok {
		writeError(w, stderrors.NewSessionNotFoundError())
		return
	}
	slot := chi.URLParam(r, "slot")

	var file models.FileInfo
	if err := json.NewDecoder(r.Body).Decode(&file); err != nil {
		writeError(w, stderrors.NewValidationFailedError("malformed request body"))
		return
	}

	final, err := h.tracker.Track(r.Context(), slot, file, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, final)
}
