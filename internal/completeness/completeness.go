// Package completeness scores how filled-in an artist profile is. Pure
// functions only, safe to call with a zero-value profile.
package completeness

import (
	"unicode/utf8"

	"artist_marketplace/internal/domain"
)

// Tracked field names, each worth 1/8 of the percentage.
const (
	FieldName      = "name"
	FieldPhoto     = "photo"
	FieldBio       = "bio"
	FieldArtTypes  = "art_types"
	FieldLocation  = "location"
	FieldPhone     = "phone"
	FieldPortfolio = "portfolio"
	FieldSocial    = "social"
)

const fieldCount = 8

// MinBioLength - a bio shorter than this counts as present but not complete.
const MinBioLength = 50

// Result describes how complete a profile is and what to fix next.
type Result struct {
	Percentage      int      `json:"percentage"`
	CompletedFields []string `json:"completed_fields"`
	MissingFields   []string `json:"missing_fields"`
	NextStepHint    string   `json:"next_step_hint"`
	IsComplete      bool     `json:"is_complete"`
}

var hints = map[string]string{
	FieldPhoto:     "Add a profile photo so buyers can put a face to your work",
	FieldBio:       "Write a bio of at least 50 characters",
	FieldArtTypes:  "Pick at least one art type you work in",
	FieldLocation:  "Add your primary city",
	FieldPortfolio: "Link a portfolio site or a social profile",
}

// Evaluate scores the profile. Same input always yields the same output.
func Evaluate(p domain.Profile) Result {
	checks := []struct {
		field string
		done  bool
	}{
		{FieldName, p.DisplayName != ""},
		{FieldPhoto, p.PhotoURL != ""},
		{FieldBio, utf8.RuneCountInString(p.Bio) >= MinBioLength},
		{FieldArtTypes, len(p.Mediums) > 0},
		{FieldLocation, p.City != ""},
		{FieldPhone, p.Phone != ""},
		{FieldPortfolio, p.PortfolioURL != ""},
		{FieldSocial, p.SocialHandle != ""},
	}

	r := Result{
		CompletedFields: []string{},
		MissingFields:   []string{},
	}
	for _, c := range checks {
		if c.done {
			r.CompletedFields = append(r.CompletedFields, c.field)
		} else {
			r.MissingFields = append(r.MissingFields, c.field)
		}
	}

	// round to nearest integer percentage
	r.Percentage = (len(r.CompletedFields)*100 + fieldCount/2) / fieldCount
	r.IsComplete = len(r.MissingFields) == 0
	r.NextStepHint = nextHint(p)
	return r
}

// nextHint picks the single highest-priority missing field:
// photo > bio > art types > location > portfolio-or-social.
func nextHint(p domain.Profile) string {
	switch {
	case p.PhotoURL == "":
		return hints[FieldPhoto]
	case utf8.RuneCountInString(p.Bio) < MinBioLength:
		return hints[FieldBio]
	case len(p.Mediums) == 0:
		return hints[FieldArtTypes]
	case p.City == "":
		return hints[FieldLocation]
	case p.PortfolioURL == "" && p.SocialHandle == "":
		return hints[FieldPortfolio]
	}
	return ""
}
