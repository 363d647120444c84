package domain

import "time"

// Profile - an artist's public profile. One row per artist, keyed by the
// artist's user id.
type Profile struct {
	ArtistID           int64     `db:"artist_id" json:"artist_id"`
	DisplayName        string    `db:"display_name" json:"display_name"`
	PhotoURL           string    `db:"photo_url" json:"photo_url"`
	Bio                string    `db:"bio" json:"bio"`
	Mediums            []string  `db:"mediums" json:"mediums"`
	StyleTags          []string  `db:"style_tags" json:"style_tags"`
	City               string    `db:"city" json:"city"`
	Phone              string    `db:"phone" json:"phone"`
	PortfolioURL       string    `db:"portfolio_url" json:"portfolio_url"`
	SocialHandle       string    `db:"social_handle" json:"social_handle"`
	AcceptsCommissions bool      `db:"accepts_commissions" json:"accepts_commissions"`
	PriceRange         string    `db:"price_range" json:"price_range"`
	AvailabilityNotes  string    `db:"availability_notes" json:"availability_notes"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

const (
	MaxMediums   = 4
	MaxStyleTags = 5
)

// ProfileDraft carries the fields an artist edits during onboarding. Empty
// strings and nil slices mean "leave unchanged" so a step can save only what
// it touched.
type ProfileDraft struct {
	DisplayName        string   `json:"display_name"`
	PhotoURL           string   `json:"photo_url"`
	Bio                string   `json:"bio"`
	Mediums            []string `json:"mediums"`
	StyleTags          []string `json:"style_tags"`
	City               string   `json:"city"`
	Phone              string   `json:"phone"`
	PortfolioURL       string   `json:"portfolio_url"`
	SocialHandle       string   `json:"social_handle"`
	AcceptsCommissions *bool    `json:"accepts_commissions"`
	PriceRange         string   `json:"price_range"`
	AvailabilityNotes  string   `json:"availability_notes"`
}

// Validate rejects drafts that exceed the tag limits.
func (d ProfileDraft) Validate() error {
	if len(d.Mediums) > MaxMediums {
		return ErrTooManyMediums
	}
	if len(d.StyleTags) > MaxStyleTags {
		return ErrTooManyStyleTags
	}
	return nil
}

// Apply merges the draft into the profile. Untouched fields keep their
// previous values.
func (p *Profile) Apply(d ProfileDraft) {
	if d.DisplayName != "" {
		p.DisplayName = d.DisplayName
	}
	if d.PhotoURL != "" {
		p.PhotoURL = d.PhotoURL
	}
	if d.Bio != "" {
		p.Bio = d.Bio
	}
	if d.Mediums != nil {
		p.Mediums = d.Mediums
	}
	if d.StyleTags != nil {
		p.StyleTags = d.StyleTags
	}
	if d.City != "" {
		p.City = d.City
	}
	if d.Phone != "" {
		p.Phone = d.Phone
	}
	if d.PortfolioURL != "" {
		p.PortfolioURL = d.PortfolioURL
	}
	if d.SocialHandle != "" {
		p.SocialHandle = d.SocialHandle
	}
	if d.AcceptsCommissions != nil {
		p.AcceptsCommissions = *d.AcceptsCommissions
	}
	if d.PriceRange != "" {
		p.PriceRange = d.PriceRange
	}
	if d.AvailabilityNotes != "" {
		p.AvailabilityNotes = d.AvailabilityNotes
	}
}
