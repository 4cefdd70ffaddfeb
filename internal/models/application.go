// internal/models/application.go
package models

import "time"

// ApplicationStatus is the lifecycle state of a submitted application.
type ApplicationStatus string

const (
	StatusDraft     ApplicationStatus = "Draft"
	StatusSubmitted ApplicationStatus = "Submitted"
	StatusApproved  ApplicationStatus = "Approved"
	StatusRejected  ApplicationStatus = "Rejected"
)

// ApplicationStatuses lists the dashboard filter tabs after "All".
var ApplicationStatuses = []ApplicationStatus{
	StatusDraft, StatusSubmitted, StatusApproved, StatusRejected,
}

// IsApplicationStatus reports whether v names a known status.
func IsApplicationStatus(v string) bool {
	for _, s := range ApplicationStatuses {
		if string(s) == v {
			return true
		}
	}
	return false
}

// Application is the dashboard record created from a completed draft. While
// IsOptimistic is true the record carries a temporary local id and has not
// been confirmed by the gateway.
type Application struct {
	ID            string            `json:"id" db:"id"`
	UserID        string            `json:"userId" db:"user_id"`
	BusinessName  string            `json:"businessName" db:"business_name"`
	Type          BusinessType      `json:"type" db:"business_type"`
	Region        string            `json:"region" db:"region"`
	SubmittedDate time.Time         `json:"submittedDate" db:"submitted_date"`
	Status        ApplicationStatus `json:"status" db:"status"`
	IsOptimistic  bool              `json:"isOptimistic" db:"is_optimistic"`
}
