package domain

// PlanTier - subscription tier identifier
type PlanTier string

const (
	TierFree    PlanTier = "free"
	TierStarter PlanTier = "starter"
	TierGrowth  PlanTier = "growth"
	TierPro     PlanTier = "pro"
)

// Plan holds the immutable constants of a subscription tier. These are the
// single source of truth for both the earnings engine and the plan bridge.
type Plan struct {
	Tier            PlanTier `json:"tier"`
	TakeHomePercent int      `json:"take_home_percent"`
	MonthlyPrice    int64    `json:"monthly_price"` // whole currency units
	ArtworkCeiling  int      `json:"artwork_ceiling"` // 0 = unbounded
	Name            string   `json:"name"`
}

var plans = []Plan{
	{Tier: TierFree, TakeHomePercent: 60, MonthlyPrice: 0, ArtworkCeiling: 1, Name: "Free"},
	{Tier: TierStarter, TakeHomePercent: 80, MonthlyPrice: 9, ArtworkCeiling: 10, Name: "Starter"},
	{Tier: TierGrowth, TakeHomePercent: 83, MonthlyPrice: 19, ArtworkCeiling: 30, Name: "Growth"},
	{Tier: TierPro, TakeHomePercent: 85, MonthlyPrice: 39, ArtworkCeiling: 0, Name: "Pro"},
}

// Plans returns all tiers ordered from free to pro.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByTier looks up a tier's constants.
func PlanByTier(tier PlanTier) (Plan, bool) {
	for _, p := range plans {
		if p.Tier == tier {
			return p, true
		}
	}
	return Plan{}, false
}

// ValidTier reports whether tier is one of the known plan identifiers.
func ValidTier(tier PlanTier) bool {
	_, ok := PlanByTier(tier)
	return ok
}

// CapArtworks clamps a requested monthly artwork count to the tier ceiling.
// A ceiling of 0 means unbounded.
func (p Plan) CapArtworks(requested int) (allowed int, capped bool) {
	if requested < 0 {
		return 0, false
	}
	if p.ArtworkCeiling > 0 && requested > p.ArtworkCeiling {
		return p.ArtworkCeiling, true
	}
	return requested, false
}
