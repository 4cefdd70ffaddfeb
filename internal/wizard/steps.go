// internal/wizard/steps.go
package wizard

// Step is one entry of the fixed wizard order.
type Step struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Step paths, also used as URL segments.
const (
	PathBusinessInfo   = "business-info"
	PathPrimaryContact = "primary-contact"
	PathShareholders   = "shareholders"
	PathDocuments      = "documents"
	PathSummary        = "summary"
)

// Steps is the fixed wizard order.
var Steps = []Step{
	{ID: "1", Name: "Business Info", Path: PathBusinessInfo},
	{ID: "2", Name: "Primary Contact", Path: PathPrimaryContact},
	{ID: "3", Name: "Shareholders", Path: PathShareholders},
	{ID: "4", Name: "Documents", Path: PathDocuments},
	{ID: "5", Name: "Summary", Path: PathSummary},
}

// IndexOf returns the position of the step with the given path, or -1 when
// the path is unknown. Callers redirect unknown paths to step 0.
func IndexOf(path string) int {
	for i, s := range Steps {
		if s.Path == path {
			return i
		}
	}
	return -1
}

// Progress reports wizard completion for the step at index, in (0,1].
func Progress(index int) float64 {
	if index < 0 {
		index = 0
	}
	if index >= len(Steps) {
		index = len(Steps) - 1
	}
	return float64(index+1) / float64(len(Steps))
}
