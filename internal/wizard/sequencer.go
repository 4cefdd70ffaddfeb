// internal/wizard/sequencer.go
package wizard

import (
	"business-registry/internal/models"
)

// Sequencer owns step ordering, gating and the shareholders skip rule. It is
// a pure policy object; it never touches storage.
type Sequencer struct{}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// IsAccessible reports whether the step at index may be entered given the
// draft. Index 0 is always accessible; any later step only requires the
// immediately-preceding step's data to be present. Field-level validity is
// not re-checked here, only presence.
func (s *Sequencer) IsAccessible(index int, draft models.RegistrationData) bool {
	switch {
	case index <= 0:
		return index == 0
	case index >= len(Steps):
		return false
	}

	switch Steps[index-1].Path {
	case PathBusinessInfo:
		return draft.BusinessInfo != nil
	case PathPrimaryContact:
		return draft.PrimaryContact != nil
	case PathShareholders:
		return draft.Shareholders != nil
	case PathDocuments:
		return draft.Documents != nil
	}
	return false
}

// MissingPrerequisite names the absent predecessor step for an inaccessible
// index, or "" when the step is accessible.
func (s *Sequencer) MissingPrerequisite(index int, draft models.RegistrationData) string {
	if s.IsAccessible(index, draft) {
		return ""
	}
	if index <= 0 || index >= len(Steps) {
		return PathBusinessInfo
	}
	return Steps[index-1].Path
}

// SkipShareholders reports whether the shareholders step is bypassed: the
// primary contact holding exactly 100% leaves nothing to allocate.
func (s *Sequencer) SkipShareholders(draft models.RegistrationData) bool {
	return draft.PrimaryContact != nil && draft.PrimaryContact.Shareholding == 100
}

// NextAfter returns the path following the given step, honoring the
// shareholders skip rule. The last step has no successor.
func (s *Sequencer) NextAfter(path string, draft models.RegistrationData) (string, bool) {
	index := IndexOf(path)
	if index < 0 || index+1 >= len(Steps) {
		return "", false
	}

	next := Steps[index+1].Path
	if next == PathShareholders && s.SkipShareholders(draft) {
		next = PathDocuments
	}
	return next, true
}
