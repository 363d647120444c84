package domain

import "time"

// Onboarding wizard steps, in order.
const (
	StepBasics   = 1
	StepStyle    = 2
	StepArtworks = 3
	StepPricing  = 4
	StepPayouts  = 5
	StepPlan     = 6

	StepCount = 6
)

// MinPublishedArtworks is the artwork gate: this many published pieces are
// required before onboarding can complete.
const MinPublishedArtworks = 3

// OnboardingState - one row per artist, created implicitly on first load and
// never deleted. Completion is a terminal flag, not a row removal.
// current_step records the furthest step reached; back-navigation in the UI
// never lowers it.
type OnboardingState struct {
	ArtistID             int64      `db:"artist_id" json:"artist_id"`
	CurrentStep          int        `db:"current_step" json:"current_step"`
	StepsVisited         []int      `db:"steps_visited" json:"steps_visited"`
	Completed            bool       `db:"completed" json:"completed"`
	CompletedAt          *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	SelectedPlan         *PlanTier  `db:"selected_plan" json:"selected_plan,omitempty"`
	SkippedPlanSelection bool       `db:"skipped_plan" json:"skipped_plan_selection"`
	// PlanActive stays false until the payments provider confirms billing;
	// until then selected_plan is intent only.
	PlanActive bool      `db:"plan_active" json:"plan_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// OnboardingUpdate is a partial write against an artist's onboarding row.
// Nil fields are left unchanged. CurrentStep can never lower the persisted
// step (the store clamps with GREATEST).
type OnboardingUpdate struct {
	CurrentStep          *int
	VisitStep            *int
	Completed            *bool
	CompletedAt          *time.Time
	SelectedPlan         *PlanTier
	SkippedPlanSelection *bool
	PlanActive           *bool
}

// Gates are the three completion preconditions. They are always re-derived
// from the live profile and artwork count, never persisted.
type Gates struct {
	Basics   bool `json:"basics"`
	Style    bool `json:"style"`
	Artworks bool `json:"artworks"`
}

// Satisfied reports whether all three gates hold.
func (g Gates) Satisfied() bool {
	return g.Basics && g.Style && g.Artworks
}

// DeriveGates computes the completion gates from an artist's profile and
// their live published-artwork count.
func DeriveGates(p *Profile, publishedArtworks int) Gates {
	g := Gates{Artworks: publishedArtworks >= MinPublishedArtworks}
	if p != nil {
		g.Basics = p.DisplayName != "" && p.City != "" && p.Bio != ""
		g.Style = len(p.Mediums) > 0 && len(p.StyleTags) > 0
	}
	return g
}
