package earnings

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"artist_marketplace/internal/domain"
)

func TestSaleSplitStarter200(t *testing.T) {
	// Starter tier, $200 list price
	s, err := SaleSplit(decimal.NewFromInt(200), 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Artist.Equal(decimal.NewFromInt(160)) {
		t.Fatalf("artist amount: want 160, got %s", s.Artist)
	}
	if !s.Venue.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("venue amount: want 30, got %s", s.Venue)
	}
	if !s.Platform.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("platform remainder: want 10, got %s", s.Platform)
	}
	if !s.BuyerFee.Equal(decimal.NewFromInt(9)) {
		t.Fatalf("buyer fee: want 9, got %s", s.BuyerFee)
	}
	if !s.BuyerTotal.Equal(decimal.NewFromInt(209)) {
		t.Fatalf("buyer total: want 209, got %s", s.BuyerTotal)
	}
}

// The artist/venue/platform partition must sum exactly to the list price for
// any valid input; the buyer fee is additive and outside the partition.
func TestSaleSplitPartitionSums(t *testing.T) {
	prices := []string{"0", "0.01", "1", "19.99", "123.45", "200", "999.99", "100000"}
	for _, ps := range prices {
		price := decimal.RequireFromString(ps)
		for pct := 0; pct <= 100; pct += 7 {
			s, err := SaleSplit(price, pct)
			if err != nil {
				t.Fatalf("price=%s pct=%d: %v", ps, pct, err)
			}
			sum := s.Artist.Add(s.Venue).Add(s.Platform)
			if !sum.Equal(price) {
				t.Fatalf("price=%s pct=%d: partition sums to %s", ps, pct, sum)
			}
		}
	}
}

func TestSaleSplitRejectsBadInput(t *testing.T) {
	if _, err := SaleSplit(decimal.NewFromInt(-1), 80); !errors.Is(err, ErrNegativePrice) {
		t.Fatalf("want ErrNegativePrice, got %v", err)
	}
	if _, err := SaleSplit(decimal.NewFromInt(100), 101); !errors.Is(err, ErrInvalidPercent) {
		t.Fatalf("want ErrInvalidPercent, got %v", err)
	}
	if _, err := SaleSplit(decimal.NewFromInt(100), -1); !errors.Is(err, ErrInvalidPercent) {
		t.Fatalf("want ErrInvalidPercent, got %v", err)
	}
}

func TestMonthlyNetFreeTierCapped(t *testing.T) {
	// Free tier ceiling is 1 artwork, so 5 requested gets clamped.
	p, err := MonthlyNet(domain.TierFree, decimal.NewFromInt(100), 5, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AllowedArtworks != 1 || !p.IsCapped {
		t.Fatalf("want allowed=1 capped, got allowed=%d capped=%v", p.AllowedArtworks, p.IsCapped)
	}
	if !p.Gross.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("gross: want 60, got %s", p.Gross)
	}
	if !p.Subscription.IsZero() {
		t.Fatalf("free tier has no subscription, got %s", p.Subscription)
	}
	if !p.Net.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("net: want 60, got %s", p.Net)
	}
}

func TestMonthlyNetProtectionCost(t *testing.T) {
	p, err := MonthlyNet(domain.TierStarter, decimal.NewFromInt(100), 4, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4 × 80 gross, minus 9 subscription, minus 4 × 5 protection
	if !p.ProtectionCost.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("protection cost: want 20, got %s", p.ProtectionCost)
	}
	if !p.Net.Equal(decimal.NewFromInt(291)) {
		t.Fatalf("net: want 291, got %s", p.Net)
	}

	included, err := MonthlyNet(domain.TierStarter, decimal.NewFromInt(100), 4, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !included.ProtectionCost.IsZero() {
		t.Fatalf("included protection should cost 0, got %s", included.ProtectionCost)
	}
}

func TestMonthlyNetNeverNegative(t *testing.T) {
	tiers := []domain.PlanTier{domain.TierFree, domain.TierStarter, domain.TierGrowth, domain.TierPro}
	values := []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(0.5), decimal.NewFromInt(3)}
	for _, tier := range tiers {
		plan, _ := domain.PlanByTier(tier)
		for _, v := range values {
			for _, n := range []int{0, 1, 3, 50} {
				p, err := MonthlyNet(tier, v, n, false)
				if err != nil {
					t.Fatalf("tier=%s: %v", tier, err)
				}
				if p.Net.IsNegative() {
					t.Fatalf("tier=%s value=%s n=%d: negative net %s", tier, v, n, p.Net)
				}
				if plan.ArtworkCeiling > 0 && p.AllowedArtworks > plan.ArtworkCeiling {
					t.Fatalf("tier=%s: allowed %d exceeds ceiling %d", tier, p.AllowedArtworks, plan.ArtworkCeiling)
				}
			}
		}
	}
}

func TestMonthlyNetRejectsBadInput(t *testing.T) {
	if _, err := MonthlyNet(domain.PlanTier("platinum"), decimal.NewFromInt(100), 1, true); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("want ErrUnknownTier, got %v", err)
	}
	if _, err := MonthlyNet(domain.TierFree, decimal.NewFromInt(-100), 1, true); !errors.Is(err, ErrNegativePrice) {
		t.Fatalf("want ErrNegativePrice, got %v", err)
	}
	if _, err := MonthlyNet(domain.TierFree, decimal.NewFromInt(100), -1, true); !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("want ErrNegativeCount, got %v", err)
	}
}
