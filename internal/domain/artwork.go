package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DimensionUnit for artwork width/height.
type DimensionUnit string

const (
	UnitInches      DimensionUnit = "in"
	UnitCentimeters DimensionUnit = "cm"
)

// Artwork - a persisted artwork record. Prices are stored in integer minor
// units (cents).
type Artwork struct {
	ID         int64          `db:"id" json:"id"`
	ArtistID   int64          `db:"artist_id" json:"artist_id"`
	Title      string         `db:"title" json:"title"`
	PriceMinor int64          `db:"price_minor" json:"price_minor"`
	Width      *float64       `db:"width" json:"width,omitempty"`
	Height     *float64       `db:"height" json:"height,omitempty"`
	Unit       *DimensionUnit `db:"unit" json:"unit,omitempty"`
	ImageRef   string         `db:"image_ref" json:"image_ref"`
	Published  bool           `db:"published" json:"published"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// ArtworkDraft is the inbound shape of an artwork-add action during
// onboarding. Saving it creates a published Artwork.
type ArtworkDraft struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Width    *float64        `json:"width,omitempty"`
	Height   *float64        `json:"height,omitempty"`
	Unit     *DimensionUnit  `json:"unit,omitempty"`
	ImageRef string          `json:"image_ref"`
}

// Validate rejects drafts with an empty title, a non-positive price, or
// malformed dimensions.
func (d ArtworkDraft) Validate() error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if !d.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if d.Unit != nil && *d.Unit != UnitInches && *d.Unit != UnitCentimeters {
		return ErrInvalidUnit
	}
	if (d.Width != nil && *d.Width <= 0) || (d.Height != nil && *d.Height <= 0) {
		return ErrInvalidDimension
	}
	return nil
}

// PriceMinor converts the draft price to integer minor units, rounding to the
// smallest currency unit.
func (d ArtworkDraft) PriceMinor() int64 {
	return d.Price.Shift(2).Round(0).IntPart()
}
