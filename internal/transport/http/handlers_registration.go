// internal/transport/http/handlers_registration.go
package httptransport

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/registration"
)

// payloads larger than this are rejected before validation runs
const maxStepPayloadBytes = 1 << 20

type RegistrationHandler struct {
	service *registration.Service
	logger  logger.Logger
}

func NewRegistrationHandler(service *registration.Service, log logger.Logger) *RegistrationHandler {
	return &RegistrationHandler{service: service, logger: log}
}

func (h *RegistrationHandler) HandleSteps(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		writeError(w, stderrors.NewSessionNotFoundError())
		return
	}
	states, err := h.service.Steps(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"steps": states})
}

func (h *RegistrationHandler) HandleDraft(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		writeError(w, stderrors.NewSessionNotFoundError())
		return
	}
	draft, err := h.service.Draft(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *RegistrationHandler) HandleResetDraft(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		writeError(w, stderrors.NewSessionNotFoundError())
		return
	}
	if err := h.service.Reset(r.Context(), user.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RegistrationHandler) HandleSaveStep(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		writeError(w, stderrors.NewSessionNotFoundError())
		return
	}
	stepPath := chi.URLParam(r, "path")

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxStepPayloadBytes))
	if err != nil {
		writeError(w, stderrors.NewValidationFailedError("unreadable request body"))
		return
	}

	draft, nextPath, err := h.service.SaveStep(r.Context(), user.ID, stepPath, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"draft":    draft,
		"nextStep": nextPath,
	})
}
