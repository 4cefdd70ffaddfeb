// internal/registration/service.go
package registration

import (
	"context"
	"encoding/json"
	"fmt"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/common/metrics"
	"business-registry/internal/models"
	"business-registry/internal/validation"
	"business-registry/internal/wizard"
)

// Service applies wizard policy to the draft store: step gating, payload
// validation and the shareholders skip rule all live here, so transport
// handlers stay thin.
type Service struct {
	drafts    DraftStore
	sequencer *wizard.Sequencer
	logger    logger.Logger
}

func NewService(drafts DraftStore, sequencer *wizard.Sequencer, log logger.Logger) *Service {
	return &Service{
		drafts:    drafts,
		sequencer: sequencer,
		logger:    log.WithFields(map[string]interface{}{"component": "registration"}),
	}
}

// StepState is the per-step view returned to the step indicator.
type StepState struct {
	wizard.Step
	Accessible bool    `json:"accessible"`
	Completed  bool    `json:"completed"`
	Progress   float64 `json:"progress"`
}

// Draft returns the user's current draft.
func (s *Service) Draft(ctx context.Context, userID string) (models.RegistrationData, error) {
	return s.drafts.Read(ctx, userID)
}

// Reset abandons the draft.
func (s *Service) Reset(ctx context.Context, userID string) error {
	return s.drafts.Reset(ctx, userID)
}

// Steps reports accessibility, completion and progress for every wizard step.
func (s *Service) Steps(ctx context.Context, userID string) ([]StepState, error) {
	draft, err := s.drafts.Read(ctx, userID)
	if err != nil {
		return nil, err
	}

	states := make([]StepState, 0, len(wizard.Steps))
	for i, step := range wizard.Steps {
		states = append(states, StepState{
			Step:       step,
			Accessible: s.sequencer.IsAccessible(i, draft),
			Completed:  stepCompleted(step.Path, draft),
			Progress:   wizard.Progress(i),
		})
	}
	return states, nil
}

// SaveStep validates and merges one step's raw payload into the draft. It
// returns the merged draft and the path of the next step (honoring the
// shareholders skip rule).
func (s *Service) SaveStep(ctx context.Context, userID, stepPath string, payload []byte) (models.RegistrationData, string, error) {
	index := wizard.IndexOf(stepPath)
	if index < 0 {
		return models.RegistrationData{}, "", stderrors.NewUnknownStepError(stepPath)
	}

	draft, err := s.drafts.Read(ctx, userID)
	if err != nil {
		return models.RegistrationData{}, "", err
	}

	if !s.sequencer.IsAccessible(index, draft) {
		metrics.StepValidationFailures.WithLabelValues(stepPath).Inc()
		return models.RegistrationData{}, "", stderrors.NewStepNotAccessibleError(
			stepPath, s.sequencer.MissingPrerequisite(index, draft))
	}

	if schemaResult := validation.ValidateStepPayload(stepPath, payload); !schemaResult.Valid {
		metrics.StepValidationFailures.WithLabelValues(stepPath).Inc()
		return models.RegistrationData{}, "", schemaResult.Err()
	}

	patch, err := s.buildPatch(stepPath, payload, draft)
	if err != nil {
		metrics.StepValidationFailures.WithLabelValues(stepPath).Inc()
		return models.RegistrationData{}, "", err
	}

	merged, err := s.drafts.Update(ctx, userID, patch)
	if err != nil {
		return models.RegistrationData{}, "", err
	}
	metrics.DraftWrites.WithLabelValues(stepPath).Inc()

	s.logger.Info("step saved", map[string]interface{}{
		"userId": userID,
		"step":   stepPath,
	})

	next, _ := s.sequencer.NextAfter(stepPath, merged)
	return merged, next, nil
}

// buildPatch decodes and rule-checks one step payload into a draft patch.
func (s *Service) buildPatch(stepPath string, payload []byte, draft models.RegistrationData) (models.RegistrationData, error) {
	switch stepPath {
	case wizard.PathBusinessInfo:
		var info models.BusinessInfo
		if err := json.Unmarshal(payload, &info); err != nil {
			return models.RegistrationData{}, stderrors.NewValidationFailedError(fmt.Sprintf("decode business info: %v", err))
		}
		if err := validation.ValidateBusinessInfo(info).Err(); err != nil {
			return models.RegistrationData{}, err
		}
		return models.RegistrationData{BusinessInfo: &info}, nil

	case wizard.PathPrimaryContact:
		var contact models.Founder
		if err := json.Unmarshal(payload, &contact); err != nil {
			return models.RegistrationData{}, stderrors.NewValidationFailedError(fmt.Sprintf("decode primary contact: %v", err))
		}
		if err := validation.ValidateFounder(contact, "").Err(); err != nil {
			return models.RegistrationData{}, err
		}
		patch := models.RegistrationData{PrimaryContact: &contact}
		if contact.Shareholding == 100 {
			// Sole owner: the shareholders step is bypassed with an
			// explicitly empty list.
			patch.Shareholders = []models.Founder{}
		}
		return patch, nil

	case wizard.PathShareholders:
		var body struct {
			Shareholders []models.Founder `json:"shareholders"`
		}
		if err := json.Unmarshal(payload, &body); err != nil {
			return models.RegistrationData{}, stderrors.NewValidationFailedError(fmt.Sprintf("decode shareholders: %v", err))
		}
		if body.Shareholders == nil {
			body.Shareholders = []models.Founder{}
		}
		if err := validation.ValidateShareholders(body.Shareholders).Err(); err != nil {
			return models.RegistrationData{}, err
		}
		if err := validation.CheckShareTotal(draft.PrimaryContact, body.Shareholders); err != nil {
			return models.RegistrationData{}, err
		}
		return models.RegistrationData{Shareholders: body.Shareholders}, nil

	case wizard.PathDocuments:
		var docs models.DocumentUploads
		if err := json.Unmarshal(payload, &docs); err != nil {
			return models.RegistrationData{}, stderrors.NewValidationFailedError(fmt.Sprintf("decode documents: %v", err))
		}
		if err := validation.ValidateDocuments(docs).Err(); err != nil {
			return models.RegistrationData{}, err
		}
		return models.RegistrationData{Documents: &docs}, nil
	}

	// Summary renders accumulated data; it accepts no payload.
	return models.RegistrationData{}, stderrors.NewValidationFailedError(
		fmt.Sprintf("step %q has no form payload", stepPath))
}

func stepCompleted(path string, draft models.RegistrationData) bool {
	switch path {
	case wizard.PathBusinessInfo:
		return draft.BusinessInfo != nil
	case wizard.PathPrimaryContact:
		return draft.PrimaryContact != nil
	case wizard.PathShareholders:
		return draft.Shareholders != nil
	case wizard.PathDocuments:
		return draft.Documents != nil
	case wizard.PathSummary:
		return draft.MissingStep() == ""
	}
	return false
}
