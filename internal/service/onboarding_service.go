package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"artist_marketplace/internal/domain"
)

var (
	ErrInvalidStep       = errors.New("invalid onboarding step")
	ErrInvalidPlan       = errors.New("invalid plan tier")
	ErrInvalidPlanAction = errors.New("invalid plan action")
	ErrGatesNotSatisfied = errors.New("onboarding requirements not satisfied")
)

// PlanAction is what the artist did on the plan step.
type PlanAction string

const (
	PlanActionFree    PlanAction = "free"
	PlanActionUpgrade PlanAction = "upgrade"
	PlanActionSkip    PlanAction = "skip"
)

// ProfileStore is the permanent profile collaborator.
type ProfileStore interface {
	Get(ctx context.Context, artistID int64) (*domain.Profile, error)
	UpdateFields(ctx context.Context, artistID int64, draft domain.ProfileDraft) error
}

// OnboardingStore is the persisted per-artist onboarding row.
type OnboardingStore interface {
	Get(ctx context.Context, artistID int64) (*domain.OnboardingState, error)
	Upsert(ctx context.Context, artistID int64, upd domain.OnboardingUpdate) (*domain.OnboardingState, error)
}

// CheckoutClient creates hosted checkout sessions for paid-tier upgrades.
type CheckoutClient interface {
	CreateUpgradeSession(ctx context.Context, artistID int64, tier domain.PlanTier) (string, error)
}

// Snapshot is the read-only view handed to the UI layer.
type Snapshot struct {
	Step                  int              `json:"step"`
	Gates                 domain.Gates     `json:"gates"`
	RequirementsSatisfied bool             `json:"requirements_satisfied"`
	ArtworkCount          int              `json:"artwork_count"`
	SelectedPlan          *domain.PlanTier `json:"selected_plan,omitempty"`
	SkippedPlanSelection  bool             `json:"skipped_plan_selection"`
	PlanActive            bool             `json:"plan_active"`
	Completed             bool             `json:"completed"`
	CompletedAt           *time.Time       `json:"completed_at,omitempty"`
}

// PlanSelection is the result of the plan step. RedirectURL is set only for
// paid upgrades; the caller must send the artist to the hosted checkout and
// invoke Complete separately afterwards.
type PlanSelection struct {
	State       *Snapshot `json:"state"`
	RedirectURL string    `json:"redirect_url,omitempty"`
}

// OnboardingService drives the six-step artist onboarding wizard. Mutating
// operations for the same artist are serialized through a per-artist lock so
// two near-simultaneous saves cannot clobber each other's read-modify-write.
type OnboardingService struct {
	profiles  ProfileStore
	states    OnboardingStore
	checkout  CheckoutClient
	analytics Analytics

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex

	countsMu sync.RWMutex
	// last observed published-artwork count per artist, pushed in by the
	// caller after each count query
	artworkCounts map[int64]int
}

func NewOnboardingService(profiles ProfileStore, states OnboardingStore, checkout CheckoutClient, analytics Analytics) *OnboardingService {
	return &OnboardingService{
		profiles:      profiles,
		states:        states,
		checkout:      checkout,
		analytics:     analytics,
		locks:         make(map[int64]*sync.Mutex),
		artworkCounts: make(map[int64]int),
	}
}

func (s *OnboardingService) lockArtist(artistID int64) func() {
	s.locksMu.Lock()
	mu, ok := s.locks[artistID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[artistID] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// Advance saves the draft for a completed step and moves the wizard forward.
// The profile write happens first and the state-store write last, so a
// failure after a partial write self-heals: resumption re-derives gates from
// whatever the profile holds.
func (s *OnboardingService) Advance(ctx context.Context, artistID int64, step int, draft *domain.ProfileDraft) (*Snapshot, error) {
	if step < domain.StepBasics || step > domain.StepCount {
		return nil, ErrInvalidStep
	}
	unlock := s.lockArtist(artistID)
	defer unlock()

	if draft != nil {
		if err := s.profiles.UpdateFields(ctx, artistID, *draft); err != nil {
			return nil, err
		}
	}

	next := step + 1
	if next > domain.StepCount {
		next = domain.StepCount
	}
	st, err := s.states.Upsert(ctx, artistID, domain.OnboardingUpdate{
		CurrentStep: &next,
		VisitStep:   &step,
	})
	if err != nil {
		return nil, err
	}

	s.analytics.Emit(domain.EventStepCompleted, artistID, map[string]any{"step": step})

	return s.snapshot(ctx, artistID, st)
}

// Skip durably persists the current step and signals the caller to exit the
// wizard. The next resume starts from the same place.
func (s *OnboardingService) Skip(ctx context.Context, artistID int64) (*Snapshot, error) {
	unlock := s.lockArtist(artistID)
	defer unlock()

	st, err := s.states.Get(ctx, artistID)
	if err != nil {
		return nil, err
	}
	st, err = s.states.Upsert(ctx, artistID, domain.OnboardingUpdate{
		CurrentStep: &st.CurrentStep,
	})
	if err != nil {
		return nil, err
	}

	s.analytics.Emit(domain.EventStepSkipped, artistID, map[string]any{"step": st.CurrentStep})

	return s.snapshot(ctx, artistID, st)
}

// SelectPlan persists the artist's plan choice optimistically, then delegates
// paid upgrades to the checkout collaborator. It never completes onboarding
// itself: the external flow may redirect away entirely, so completion is a
// separate explicit call. The selected plan is intent only until the
// provider's activation callback arrives.
func (s *OnboardingService) SelectPlan(ctx context.Context, artistID int64, tier domain.PlanTier, action PlanAction) (*PlanSelection, error) {
	if !domain.ValidTier(tier) {
		return nil, ErrInvalidPlan
	}
	switch action {
	case PlanActionFree:
		if tier != domain.TierFree {
			return nil, ErrInvalidPlanAction
		}
	case PlanActionUpgrade:
		if tier == domain.TierFree {
			return nil, ErrInvalidPlanAction
		}
	case PlanActionSkip:
	default:
		return nil, ErrInvalidPlanAction
	}

	unlock := s.lockArtist(artistID)
	defer unlock()

	skipped := action == PlanActionSkip
	active := action == PlanActionFree // free tier needs no billing confirmation
	st, err := s.states.Upsert(ctx, artistID, domain.OnboardingUpdate{
		SelectedPlan:         &tier,
		SkippedPlanSelection: &skipped,
		PlanActive:           &active,
	})
	if err != nil {
		return nil, err
	}

	s.analytics.Emit(domain.EventPlanSelected, artistID, map[string]any{
		"plan":   string(tier),
		"action": string(action),
	})

	snap, err := s.snapshot(ctx, artistID, st)
	if err != nil {
		return nil, err
	}

	sel := &PlanSelection{State: snap}
	if action == PlanActionUpgrade {
		url, err := s.checkout.CreateUpgradeSession(ctx, artistID, tier)
		if err != nil {
			return nil, err
		}
		sel.RedirectURL = url
	}
	return sel, nil
}

// Complete marks onboarding finished. Rejected unless all three requirement
// gates hold at the time of the call; calling it again on an already
// completed artist returns the terminal state without error.
func (s *OnboardingService) Complete(ctx context.Context, artistID int64) (*Snapshot, error) {
	unlock := s.lockArtist(artistID)
	defer unlock()

	st, err := s.states.Get(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if st.Completed {
		return s.snapshot(ctx, artistID, st)
	}

	gates, _, err := s.deriveGates(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if !gates.Satisfied() {
		return nil, ErrGatesNotSatisfied
	}

	now := time.Now()
	completed := true
	finalStep := domain.StepCount
	st, err = s.states.Upsert(ctx, artistID, domain.OnboardingUpdate{
		CurrentStep: &finalStep,
		Completed:   &completed,
		CompletedAt: &now,
	})
	if err != nil {
		return nil, err
	}

	s.analytics.Emit(domain.EventOnboardingFinished, artistID, map[string]any{
		"steps_completed":        len(st.StepsVisited),
		"skipped_plan_selection": st.SkippedPlanSelection,
	})

	return s.snapshot(ctx, artistID, st)
}

// ConfirmPlanActivated applies the out-of-band billing confirmation from the
// payments provider. Only after this does the selected plan stop being
// intent-only.
func (s *OnboardingService) ConfirmPlanActivated(ctx context.Context, artistID int64, tier domain.PlanTier) (*Snapshot, error) {
	if !domain.ValidTier(tier) {
		return nil, ErrInvalidPlan
	}
	unlock := s.lockArtist(artistID)
	defer unlock()

	active := true
	st, err := s.states.Upsert(ctx, artistID, domain.OnboardingUpdate{
		SelectedPlan: &tier,
		PlanActive:   &active,
	})
	if err != nil {
		return nil, err
	}

	s.analytics.Emit(domain.EventPlanActivated, artistID, map[string]any{"plan": string(tier)})

	return s.snapshot(ctx, artistID, st)
}

// RecordArtworkCount stores the live published-artwork count observed by the
// caller. The artwork gate is derived from this value, never from the
// wizard's own bookkeeping.
func (s *OnboardingService) RecordArtworkCount(artistID int64, count int) {
	if count < 0 {
		count = 0
	}
	s.countsMu.Lock()
	s.artworkCounts[artistID] = count
	s.countsMu.Unlock()
}

// State returns the current snapshot, restoring the persisted step and
// re-deriving gates from the live profile. Stale gate state from a previous
// session never blocks or falsely unblocks completion.
func (s *OnboardingService) State(ctx context.Context, artistID int64) (*Snapshot, error) {
	st, err := s.states.Get(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ctx, artistID, st)
}

func (s *OnboardingService) observedArtworkCount(artistID int64) int {
	s.countsMu.RLock()
	defer s.countsMu.RUnlock()
	return s.artworkCounts[artistID]
}

func (s *OnboardingService) deriveGates(ctx context.Context, artistID int64) (domain.Gates, int, error) {
	profile, err := s.profiles.Get(ctx, artistID)
	if err != nil {
		return domain.Gates{}, 0, err
	}
	count := s.observedArtworkCount(artistID)
	return domain.DeriveGates(profile, count), count, nil
}

func (s *OnboardingService) snapshot(ctx context.Context, artistID int64, st *domain.OnboardingState) (*Snapshot, error) {
	gates, count, err := s.deriveGates(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Step:                  st.CurrentStep,
		Gates:                 gates,
		RequirementsSatisfied: gates.Satisfied(),
		ArtworkCount:          count,
		SelectedPlan:          st.SelectedPlan,
		SkippedPlanSelection:  st.SkippedPlanSelection,
		PlanActive:            st.PlanActive,
		Completed:             st.Completed,
		CompletedAt:           st.CompletedAt,
	}, nil
}
