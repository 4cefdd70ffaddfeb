// internal/transport/http/handlers_applications.go
package httptransport

import (
	"context"
	"net/http"

	"business-registry/internal/application"
	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/models"
)

type ApplicationHandler struct {
	store     applicationLister
	submitter applicationSubmitter
	logger    logger.Logger
}

type applicationLister interface {
	List(ctx context.Context, userID, status string) ([]models.Application, error)
}

type applicationSubmitter interface {
	Submit(ctx context.Context, user models.User) (*application.Attempt, error)
}

func NewApplicationHandler(store applicationLister, submitter applicationSubmitter, log logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{store: store, submitter: submitter, logger: log}
}

// HandleSubmit runs the submission pipeline synchronously. The optimistic
// record is visible in listings while the gateway call is in flight; the
// response carries the confirmed record.
func (h *ApplicationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		writeError(w, stderrors.NewSessionNotFoundError())
		return
	}

	attempt, err := h.submitter.Submit(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"application": attempt.Final,
		"state":       attempt.State(),
	})
}

// HandleList serves the dashboard listing, optionally filtered by status.
func (h *ApplicationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		writeError(w, stderrors.NewSessionNotFoundError())
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && status != "All" && !models.IsApplicationStatus(status) {
		writeError(w, stderrors.NewValidationFailedError("unknown status filter: "+status))
		return
	}

	apps, err := h.store.List(r.Context(), user.ID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"applications": apps})
}
