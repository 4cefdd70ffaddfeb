// internal/models/founder.go
package models

// Founder describes a person with an ownership stake. It is used both for the
// primary contact and for every additional shareholder.
type Founder struct {
	FullName     string  `json:"fullName"`
	NationalID   string  `json:"nationalId"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Shareholding float64 `json:"shareholding"` // percentage in [0,100]
	Nationality  string  `json:"nationality"`
	DateOfBirth  string  `json:"dateOfBirth"`
}
