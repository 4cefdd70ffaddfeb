// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_submissions_started_total",
			Help: "Total number of application submissions started",
		},
	)

	SubmissionsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_submissions_confirmed_total",
			Help: "Total number of application submissions confirmed by the gateway",
		},
	)

	SubmissionsRolledBack = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_submissions_rolled_back_total",
			Help: "Total number of optimistic submissions rolled back after gateway failure",
		},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "registry_submission_duration_seconds",
			Help: "Duration of the submission pipeline in seconds",
		},
	)

	DraftWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_draft_writes_total",
			Help: "Total number of draft store writes by wizard step",
		},
		[]string{"step"},
	)

	StepValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_step_validation_failures_total",
			Help: "Total number of rejected step payloads by wizard step",
		},
		[]string{"step"},
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_auth_attempts_total",
			Help: "Total number of auth operations by kind and outcome",
		},
		[]string{"operation", "outcome"},
	)
)
