// internal/transport/http/handlers_auth.go
package httptransport

import (
	"context"
	"encoding/json"
	"net/http"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/models"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Authenticator
	Register(ctx context.Context, name, email, password string) (models.Session, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	service AuthService
	logger  logger.Logger
}

func NewAuthHandler(service AuthService, log logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: log}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, stderrors.NewValidationFailedError("malformed request body"))
		return
	}

	session, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, stderrors.NewValidationFailedError("malformed request body"))
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, stderrors.NewSessionNotFoundError())
		return
	}
	if err := h.service.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
