// internal/models/registration.go
package models

// RegistrationData is the aggregate draft accumulated across wizard steps.
// A nil field means the step has not been completed yet. Shareholders keeps
// nil (untouched) distinct from an explicitly empty list, which the
// shareholders-skip rule relies on.
type RegistrationData struct {
	BusinessInfo   *BusinessInfo    `json:"businessInfo,omitempty"`
	PrimaryContact *Founder         `json:"primaryContact,omitempty"`
	// no omitempty: an explicitly empty list must survive serialization,
	// it records that the shareholders step was skipped
	Shareholders []Founder        `json:"shareholders"`
	Documents    *DocumentUploads `json:"documents,omitempty"`
}

// EmptyRegistrationData returns the zero aggregate a wizard entry starts from.
func EmptyRegistrationData() RegistrationData {
	return RegistrationData{}
}

// Merge shallow-merges a partial aggregate onto d: only non-nil fields of the
// patch replace the current value.
func (d RegistrationData) Merge(patch RegistrationData) RegistrationData {
	out := d
	if patch.BusinessInfo != nil {
		out.BusinessInfo = patch.BusinessInfo
	}
	if patch.PrimaryContact != nil {
		out.PrimaryContact = patch.PrimaryContact
	}
	if patch.Shareholders != nil {
		out.Shareholders = patch.Shareholders
	}
	if patch.Documents != nil {
		out.Documents = patch.Documents
	}
	return out
}

// IsEmpty reports whether no step has written any data yet.
func (d RegistrationData) IsEmpty() bool {
	return d.BusinessInfo == nil && d.PrimaryContact == nil &&
		d.Shareholders == nil && d.Documents == nil
}

// MissingStep names the first wizard step whose data is absent, or "" when
// the draft is ready for submission. Shareholders counts as present once the
// slice is non-nil; the skip rule stores an explicitly empty list.
func (d RegistrationData) MissingStep() string {
	switch {
	case d.BusinessInfo == nil:
		return "businessInfo"
	case d.PrimaryContact == nil:
		return "primaryContact"
	case d.Shareholders == nil:
		return "shareholders"
	case d.Documents == nil:
		return "documents"
	}
	return ""
}
