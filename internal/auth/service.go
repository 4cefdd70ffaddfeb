// internal/auth/service.go
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/common/metrics"
	"business-registry/internal/models"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Config carries the tunables of the auth service.
type Config struct {
	BcryptCost      int
	SessionTTL      time.Duration
	SimulatedDelay  time.Duration
	MinPasswordSize int
}

// Service implements credential-based session issuance. Passwords are stored
// only as bcrypt hashes.
type Service struct {
	users    UserStore
	sessions SessionStore
	cfg      Config
	logger   logger.Logger
}

func NewService(users UserStore, sessions SessionStore, cfg Config, log logger.Logger) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.MinPasswordSize == 0 {
		cfg.MinPasswordSize = 8
	}
	return &Service{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   log.WithFields(map[string]interface{}{"component": "auth"}),
	}
}

// Register creates a user record and immediately logs the user in.
func (s *Service) Register(ctx context.Context, name, email, password string) (models.Session, error) {
	if err := s.simulateBackendDelay(ctx); err != nil {
		return models.Session{}, err
	}

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || !govalidator.IsEmail(email) {
		metrics.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return models.Session{}, stderrors.NewValidationFailedError("name and a valid email are required")
	}
	if len(password) < s.cfg.MinPasswordSize {
		metrics.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return models.Session{}, stderrors.NewValidationFailedError("password is too short")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		metrics.AuthAttempts.WithLabelValues("register", "duplicate").Inc()
		return models.Session{}, stderrors.NewDuplicateUserError(email)
	} else if !errors.Is(err, ErrNotFound) {
		return models.Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return models.Session{}, stderrors.NewStorageWriteFailedError(err)
	}

	rec := models.UserRecord{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Save(ctx, rec); err != nil {
		return models.Session{}, err
	}

	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()
	s.logger.Info("user registered", map[string]interface{}{"email": email})

	return s.issueSession(ctx, rec)
}

// Login verifies credentials and establishes a session.
func (s *Service) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := s.simulateBackendDelay(ctx); err != nil {
		return models.Session{}, err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	rec, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		metrics.AuthAttempts.WithLabelValues("login", "invalid").Inc()
		return models.Session{}, stderrors.NewInvalidCredentialsError()
	}
	if err != nil {
		return models.Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		metrics.AuthAttempts.WithLabelValues("login", "invalid").Inc()
		return models.Session{}, stderrors.NewInvalidCredentialsError()
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	return s.issueSession(ctx, rec)
}

// Logout clears the session only; the durable user record is untouched.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a session token to its user. The route guard in the
// transport layer calls this on every protected request.
func (s *Service) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, stderrors.NewSessionNotFoundError()
	}
	session, err := s.sessions.Find(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return models.User{}, stderrors.NewSessionNotFoundError()
	}
	if err != nil {
		return models.User{}, err
	}
	return session.User, nil
}

func (s *Service) issueSession(ctx context.Context, rec models.UserRecord) (models.Session, error) {
	now := time.Now().UTC()
	session := models.Session{
		Token:     uuid.New().String(),
		User:      rec.SessionUser(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// simulateBackendDelay adds artificial auth latency while staying
// cancellable.
func (s *Service) simulateBackendDelay(ctx context.Context) error {
	if s.cfg.SimulatedDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.SimulatedDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
