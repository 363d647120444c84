// Package earnings computes per-sale splits and monthly net projections.
// All arithmetic runs on shopspring decimals so currency amounts stay exact.
package earnings

import (
	"errors"

	"github.com/shopspring/decimal"

	"artist_marketplace/internal/domain"
)

var (
	ErrNegativePrice  = errors.New("price must not be negative")
	ErrInvalidPercent = errors.New("take-home percent must be between 0 and 100")
	ErrNegativeCount  = errors.New("artworks per month must not be negative")
	ErrUnknownTier    = errors.New("unknown plan tier")
)

// Engine-wide constants. Changing these is a versioned pricing change, not a
// call-site decision.
var (
	venueShare   = decimal.NewFromFloat(0.15)  // fixed venue commission
	buyerFeeRate = decimal.NewFromFloat(0.045) // added on top of the list price
	// flat protection fee charged per listed artwork unless the plan
	// includes protection
	protectionFeePerArtwork = decimal.NewFromInt(5)

	hundred = decimal.NewFromInt(100)
)

// Split partitions a sale's list price. Artist + Venue + Platform always sum
// exactly to the list price; the buyer fee sits outside that partition and is
// paid on top.
type Split struct {
	Artist     decimal.Decimal `json:"artist"`
	Venue      decimal.Decimal `json:"venue"`
	Platform   decimal.Decimal `json:"platform"`
	BuyerFee   decimal.Decimal `json:"buyer_fee"`
	BuyerTotal decimal.Decimal `json:"buyer_total"`
}

// SaleSplit computes the per-sale partition for a list price and a take-home
// percentage.
func SaleSplit(listPrice decimal.Decimal, takeHomePercent int) (Split, error) {
	if listPrice.IsNegative() {
		return Split{}, ErrNegativePrice
	}
	if takeHomePercent < 0 || takeHomePercent > 100 {
		return Split{}, ErrInvalidPercent
	}

	artist := listPrice.Mul(decimal.NewFromInt(int64(takeHomePercent))).Div(hundred).Round(2)
	venue := listPrice.Mul(venueShare).Round(2)
	// platform keeps the remainder so the partition sums exactly
	platform := listPrice.Sub(artist).Sub(venue)
	buyerFee := listPrice.Mul(buyerFeeRate).Round(2)

	return Split{
		Artist:     artist,
		Venue:      venue,
		Platform:   platform,
		BuyerFee:   buyerFee,
		BuyerTotal: listPrice.Add(buyerFee),
	}, nil
}

// Projection is a monthly net estimate for a plan tier.
type Projection struct {
	Tier            domain.PlanTier `json:"tier"`
	AllowedArtworks int             `json:"allowed_artworks"`
	IsCapped        bool            `json:"is_capped"`
	Gross           decimal.Decimal `json:"gross"`
	Subscription    decimal.Decimal `json:"subscription"`
	ProtectionCost  decimal.Decimal `json:"protection_cost"`
	Net             decimal.Decimal `json:"net"`
}

// MonthlyNet projects take-home earnings for a month of sales at saleValue
// each. The requested artwork count is clamped to the tier ceiling and the
// result is floored at zero.
func MonthlyNet(tier domain.PlanTier, saleValue decimal.Decimal, artworksPerMonth int, protectionIncluded bool) (Projection, error) {
	plan, ok := domain.PlanByTier(tier)
	if !ok {
		return Projection{}, ErrUnknownTier
	}
	if saleValue.IsNegative() {
		return Projection{}, ErrNegativePrice
	}
	if artworksPerMonth < 0 {
		return Projection{}, ErrNegativeCount
	}

	allowed, capped := plan.CapArtworks(artworksPerMonth)
	count := decimal.NewFromInt(int64(allowed))

	protection := decimal.Zero
	if !protectionIncluded {
		protection = count.Mul(protectionFeePerArtwork)
	}

	perSale := saleValue.Mul(decimal.NewFromInt(int64(plan.TakeHomePercent))).Div(hundred).Round(2)
	gross := perSale.Mul(count)
	subscription := decimal.NewFromInt(plan.MonthlyPrice)

	net := gross.Sub(subscription).Sub(protection)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return Projection{
		Tier:            tier,
		AllowedArtworks: allowed,
		IsCapped:        capped,
		Gross:           gross,
		Subscription:    subscription,
		ProtectionCost:  protection,
		Net:             net,
	}, nil
}
