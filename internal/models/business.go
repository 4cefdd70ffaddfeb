// internal/models/business.go
package models

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// BusinessType is the legal form of the registered business.
type BusinessType string

const (
	BusinessTypeSARL BusinessType = "SARL"
	BusinessTypeSA   BusinessType = "SA"
	BusinessTypeGIE  BusinessType = "GIE"
	BusinessTypeETS  BusinessType = "ETS"
)

// CatalogEntry is a fixed selectable value with its display label.
type CatalogEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BusinessTypes lists the accepted legal forms.
var BusinessTypes = []CatalogEntry{
	{Value: "SARL", Label: "SARL (Ltd)"},
	{Value: "SA", Label: "SA (PLC)"},
	{Value: "GIE", Label: "GIE (Economic Interest Group)"},
	{Value: "ETS", Label: "ETS (Establishment)"},
}

// Regions lists the ten Cameroon regions a business may register in.
var Regions = []CatalogEntry{
	{Value: "adamawa", Label: "Adamawa"},
	{Value: "centre", Label: "Centre"},
	{Value: "east", Label: "East"},
	{Value: "far-north", Label: "Far North"},
	{Value: "littoral", Label: "Littoral"},
	{Value: "north", Label: "North"},
	{Value: "north-west", Label: "North-West"},
	{Value: "south", Label: "South"},
	{Value: "south-west", Label: "South-West"},
	{Value: "west", Label: "West"},
}

// IsBusinessType reports whether v is an accepted legal form.
func IsBusinessType(v string) bool {
	for _, t := range BusinessTypes {
		if t.Value == v {
			return true
		}
	}
	return false
}

// IsRegion reports whether v is one of the fixed regions.
func IsRegion(v string) bool {
	for _, r := range Regions {
		if r.Value == v {
			return true
		}
	}
	return false
}

// BusinessInfo holds the first wizard step's data.
type BusinessInfo struct {
	BusinessName     string       `json:"businessName"`
	BusinessType     BusinessType `json:"businessType"`
	RCNumber         string       `json:"rcNumber,omitempty"`
	ActivityCategory string       `json:"activityCategory"`
	Region           string       `json:"region"`
	City             string       `json:"city"`
	BusinessPhone    string       `json:"businessPhone"`
	BusinessEmail    string       `json:"businessEmail"`
}

// FormatBusinessType renders an underscore-separated type as a display name.
func FormatBusinessType(t string) string {
	words := strings.Split(t, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// GenerateRegistrationNumber produces a BR-prefixed reference from the last
// six digits of the current millisecond timestamp plus three random digits.
func GenerateRegistrationNumber() string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return fmt.Sprintf("BR%s%03d", ts, rand.Intn(1000))
}
