// Package errors provides standardized error handling for the registration service.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeShareTotalInvalid ErrorCode = "SHARE_TOTAL_INVALID"
	ErrCodeStepNotAccessible ErrorCode = "STEP_NOT_ACCESSIBLE"
	ErrCodeUnknownStep       ErrorCode = "UNKNOWN_STEP"
	ErrCodeDraftIncomplete   ErrorCode = "DRAFT_INCOMPLETE"

	ErrCodeDuplicateUser      ErrorCode = "DUPLICATE_USER"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"

	ErrCodeSubmissionFailed   ErrorCode = "SUBMISSION_FAILED"
	ErrCodeSubmissionInFlight ErrorCode = "SUBMISSION_IN_FLIGHT"

	ErrCodeStorageReadFailed  ErrorCode = "STORAGE_READ_FAILED"
	ErrCodeStorageWriteFailed ErrorCode = "STORAGE_WRITE_FAILED"

	ErrCodeUploadRejected  ErrorCode = "UPLOAD_REJECTED"
	ErrCodeUploadCancelled ErrorCode = "UPLOAD_CANCELLED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable field validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Step data validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewShareTotalInvalidError creates a non-retryable cross-field error carrying
// the computed total so the caller can report it.
func NewShareTotalInvalidError(total float64) *StandardError {
	return &StandardError{
		Code:      ErrCodeShareTotalInvalid,
		Message:   "Total shares must be 100%",
		Details:   fmt.Sprintf("current total is %.2f%%", total),
		Retryable: false,
		Metadata:  map[string]interface{}{"total": total},
		Timestamp: time.Now().UTC(),
	}
}

// NewStepNotAccessibleError creates a non-retryable step gating error.
func NewStepNotAccessibleError(path, missing string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStepNotAccessible,
		Message:   "Step prerequisites are not satisfied",
		Details:   fmt.Sprintf("step: %s, missing: %s", path, missing),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownStepError creates a non-retryable error for paths outside the wizard.
func NewUnknownStepError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownStep,
		Message:   "Unknown wizard step",
		Details:   fmt.Sprintf("step: %s", path),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftIncompleteError creates a non-retryable error for submissions of
// drafts that lack a completed step.
func NewDraftIncompleteError(missing string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftIncomplete,
		Message:   "Draft is missing required step data",
		Details:   fmt.Sprintf("missing: %s", missing),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateUserError creates a non-retryable registration conflict error.
func NewDuplicateUserError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateUser,
		Message:   "User with this email already exists",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidCredentialsError creates a non-retryable auth error. It carries no
// detail on purpose so callers cannot distinguish unknown email from bad password.
func NewInvalidCredentialsError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCredentials,
		Message:   "Invalid email or password",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable session lookup error.
func NewSessionNotFoundError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Session not found or expired",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionFailedError creates a retryable error for gateway failures. The
// draft is preserved, so the caller may resubmit.
func NewSubmissionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionFailed,
		Message:   "Application submission failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionInFlightError creates a non-retryable re-entrancy guard error.
func NewSubmissionInFlightError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionInFlight,
		Message:   "A submission for this draft is already in progress",
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageReadFailedError creates a retryable storage error.
func NewStorageReadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageReadFailed,
		Message:   "Storage read failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageWriteFailedError creates a retryable storage error.
func NewStorageWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageWriteFailed,
		Message:   "Storage write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadRejectedError creates a non-retryable file validation error.
func NewUploadRejectedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUploadRejected,
		Message:   "File rejected",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadCancelledError creates a non-retryable error for cancelled uploads.
func NewUploadCancelledError(fileName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUploadCancelled,
		Message:   "Upload cancelled",
		Details:   fmt.Sprintf("file: %s", fileName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// CodeOf extracts the ErrorCode from err, or "" when err is not a StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsCode reports whether err is a StandardError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// IsRetryable reports whether err is a retryable StandardError.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return false
}
