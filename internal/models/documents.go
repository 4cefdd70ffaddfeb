// internal/models/documents.go
package models

// DocumentUploads holds the filename identifiers recorded for the document
// step. No binary content is persisted; a document is only its identifier.
type DocumentUploads struct {
	NationalID                 string `json:"nationalId"`
	ProofOfAddress             string `json:"proofOfAddress"`
	AttestationOfNonConviction string `json:"attestationOfNonConviction"`
	PhotoOrSelfie              string `json:"photoOrSelfie"`
	ArticlesOfAssociation      string `json:"articlesOfAssociation,omitempty"`
	BusinessLicense            string `json:"businessLicense,omitempty"`
}

// DocumentRequirement describes one upload slot consumed by upload widgets.
type DocumentRequirement struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Required      bool     `json:"required"`
	AcceptedTypes []string `json:"acceptedTypes"` // dotted extensions or media-type wildcards
	MaxSizeMB     int      `json:"maxSizeMB"`
}

// DocumentRequirements is the closed list of upload slots, four required and
// two optional.
var DocumentRequirements = []DocumentRequirement{
	{ID: "nationalId", Title: "National ID", Required: true,
		AcceptedTypes: []string{".pdf", ".jpg", ".jpeg", ".png", "image/*"}, MaxSizeMB: 5},
	{ID: "proofOfAddress", Title: "Proof of Address", Required: true,
		AcceptedTypes: []string{".pdf", ".jpg", ".jpeg", ".png", "image/*"}, MaxSizeMB: 5},
	{ID: "attestationOfNonConviction", Title: "Attestation of Non-Conviction", Required: true,
		AcceptedTypes: []string{".pdf"}, MaxSizeMB: 5},
	{ID: "photoOrSelfie", Title: "Photo/Selfie for Verification", Required: true,
		AcceptedTypes: []string{".jpg", ".jpeg", ".png", "image/*"}, MaxSizeMB: 5},
	{ID: "articlesOfAssociation", Title: "Articles of Association", Required: false,
		AcceptedTypes: []string{".pdf"}, MaxSizeMB: 10},
	{ID: "businessLicense", Title: "Business License (if available)", Required: false,
		AcceptedTypes: []string{".pdf", ".jpg", ".jpeg", ".png"}, MaxSizeMB: 10},
}

// RequirementByID returns the requirement for the given slot id.
func RequirementByID(id string) (DocumentRequirement, bool) {
	for _, r := range DocumentRequirements {
		if r.ID == id {
			return r, true
		}
	}
	return DocumentRequirement{}, false
}

// FileInfo carries the metadata the core sees about a selected file. The
// browser File object stays on the client side.
type FileInfo struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"` // bytes
	MediaType string `json:"mediaType"`
}
