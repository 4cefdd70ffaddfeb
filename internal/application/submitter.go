// internal/application/submitter.go
package application

import (
	"context"
	"sync"
	"time"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/common/metrics"
	"business-registry/internal/models"
	"business-registry/internal/registration"
	"business-registry/internal/validation"

	"github.com/google/uuid"
)

// AttemptState is the phase of one submission attempt.
type AttemptState string

const (
	StateIdle       AttemptState = "Idle"
	StateSubmitting AttemptState = "Submitting"
	StateConfirmed  AttemptState = "Confirmed"
	StateFailed     AttemptState = "Failed"
)

// Attempt tracks one pass through the submission pipeline.
type Attempt struct {
	state      AttemptState
	Optimistic models.Application
	Final      models.Application
}

func (a *Attempt) State() AttemptState { return a.state }

// Submitter runs the optimistic submission pipeline. At most one attempt per
// user may be in flight; re-entrant submits are rejected while Submitting.
type Submitter struct {
	store   Store
	drafts  registration.DraftStore
	gateway Gateway
	logger  logger.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewSubmitter(store Store, drafts registration.DraftStore, gateway Gateway, log logger.Logger) *Submitter {
	return &Submitter{
		store:    store,
		drafts:   drafts,
		gateway:  gateway,
		logger:   log.WithFields(map[string]interface{}{"component": "submitter"}),
		inflight: make(map[string]struct{}),
	}
}

// Submit packages the user's draft into an Application, inserts it
// optimistically, runs the gateway call and reconciles. On success the draft
// is cleared and the confirmed record returned; on failure the optimistic
// record is removed, the draft preserved and the error surfaced for retry.
func (s *Submitter) Submit(ctx context.Context, user models.User) (*Attempt, error) {
	draft, err := s.drafts.Read(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if missing := draft.MissingStep(); missing != "" {
		return nil, stderrors.NewDraftIncompleteError(missing)
	}
	if err := validation.CheckShareTotal(draft.PrimaryContact, draft.Shareholders); err != nil {
		return nil, err
	}

	if !s.acquire(user.ID) {
		return nil, stderrors.NewSubmissionInFlightError(user.ID)
	}
	defer s.release(user.ID)

	attempt := &Attempt{state: StateIdle}
	start := time.Now()
	metrics.SubmissionsStarted.Inc()
	defer func() {
		metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
	}()

	attempt.Optimistic = models.Application{
		ID:            "temp_" + uuid.New().String(),
		UserID:        user.ID,
		BusinessName:  draft.BusinessInfo.BusinessName,
		Type:          draft.BusinessInfo.BusinessType,
		Region:        draft.BusinessInfo.Region,
		SubmittedDate: time.Now().UTC(),
		Status:        models.StatusSubmitted,
		IsOptimistic:  true,
	}

	attempt.state = StateSubmitting
	if err := s.store.Insert(ctx, attempt.Optimistic); err != nil {
		attempt.state = StateFailed
		return attempt, err
	}

	result, err := s.gateway.Submit(ctx, attempt.Optimistic)
	if err != nil {
		return attempt, s.rollback(ctx, attempt, err)
	}
	return attempt, s.confirm(ctx, attempt, result)
}

func (s *Submitter) confirm(ctx context.Context, attempt *Attempt, result Result) error {
	confirmed := attempt.Optimistic
	confirmed.ID = result.ID
	confirmed.IsOptimistic = false

	if err := s.store.Replace(ctx, confirmed.UserID, attempt.Optimistic.ID, confirmed); err != nil {
		// The gateway accepted but the local swap failed; drop the stale
		// optimistic record before surfacing the error.
		return s.rollback(ctx, attempt, err)
	}

	attempt.state = StateConfirmed
	attempt.Final = confirmed
	metrics.SubmissionsConfirmed.Inc()

	if err := s.drafts.Reset(ctx, confirmed.UserID); err != nil {
		// The application is confirmed either way; a stale draft is the
		// lesser evil, so log instead of failing the submission.
		s.logger.Warn("draft reset failed after confirmation", map[string]interface{}{
			"userId": confirmed.UserID,
			"error":  err.Error(),
		})
	}

	s.logger.Info("application confirmed", map[string]interface{}{
		"userId":        confirmed.UserID,
		"applicationId": confirmed.ID,
	})
	return nil
}

func (s *Submitter) rollback(ctx context.Context, attempt *Attempt, cause error) error {
	attempt.state = StateFailed
	metrics.SubmissionsRolledBack.Inc()

	if err := s.store.Remove(ctx, attempt.Optimistic.UserID, attempt.Optimistic.ID); err != nil {
		s.logger.Error("optimistic rollback failed", map[string]interface{}{
			"userId":        attempt.Optimistic.UserID,
			"applicationId": attempt.Optimistic.ID,
			"error":         err.Error(),
		})
	}

	s.logger.Warn("submission failed, draft preserved", map[string]interface{}{
		"userId": attempt.Optimistic.UserID,
		"error":  cause.Error(),
	})
	return stderrors.NewSubmissionFailedError(cause)
}

func (s *Submitter) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[userID]; busy {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *Submitter) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, userID)
}
