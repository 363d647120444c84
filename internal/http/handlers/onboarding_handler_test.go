package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artist_marketplace/internal/domain"
	"artist_marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

type memProfiles struct {
	profiles map[int64]*domain.Profile
}

func (m *memProfiles) Get(_ context.Context, artistID int64) (*domain.Profile, error) {
	p, ok := m.profiles[artistID]
	if !ok {
		return nil, errors.New("profile not found")
	}
	cp := *p
	return &cp, nil
}

func (m *memProfiles) UpdateFields(_ context.Context, artistID int64, draft domain.ProfileDraft) error {
	p, ok := m.profiles[artistID]
	if !ok {
		return errors.New("profile not found")
	}
	p.Apply(draft)
	return nil
}

type memStates struct {
	states map[int64]*domain.OnboardingState
}

func (m *memStates) Get(_ context.Context, artistID int64) (*domain.OnboardingState, error) {
	st, ok := m.states[artistID]
	if !ok {
		st = &domain.OnboardingState{ArtistID: artistID, CurrentStep: domain.StepBasics}
		m.states[artistID] = st
	}
	cp := *st
	return &cp, nil
}

func (m *memStates) Upsert(ctx context.Context, artistID int64, upd domain.OnboardingUpdate) (*domain.OnboardingState, error) {
	if _, err := m.Get(ctx, artistID); err != nil {
		return nil, err
	}
	st := m.states[artistID]
	if upd.CurrentStep != nil && *upd.CurrentStep > st.CurrentStep {
		st.CurrentStep = *upd.CurrentStep
	}
	if upd.Completed != nil {
		st.Completed = *upd.Completed
	}
	cp := *st
	return &cp, nil
}

type noCheckout struct{}

func (noCheckout) CreateUpgradeSession(context.Context, int64, domain.PlanTier) (string, error) {
	return "", nil
}

type nopAnalytics struct{}

func (nopAnalytics) Emit(string, int64, map[string]any) {}

// stubArtworks counts created pieces as published unless countErr is set.
type stubArtworks struct {
	baseCount int
	countErr  error
	created   []domain.ArtworkDraft
}

func (s *stubArtworks) CountPublished(context.Context, int64) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.baseCount + len(s.created), nil
}

func (s *stubArtworks) CreatePublished(_ context.Context, _ int64, draft domain.ArtworkDraft) (int64, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}
	s.created = append(s.created, draft)
	return int64(len(s.created)), nil
}

func (s *stubArtworks) ListByArtist(context.Context, int64, int) ([]*domain.Artwork, error) {
	return nil, nil
}

func newTestHandler(artistID int64, artworks *stubArtworks) *Handler {
	profiles := &memProfiles{profiles: map[int64]*domain.Profile{
		artistID: {ArtistID: artistID},
	}}
	states := &memStates{states: make(map[int64]*domain.OnboardingState)}
	svc := service.NewOnboardingService(profiles, states, noCheckout{}, nopAnalytics{})
	return &Handler{
		Onboarding:  svc,
		ProfileRepo: profiles,
		ArtworkRepo: artworks,
	}
}

func newAuthedContext(t *testing.T, artistID int64, method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Set("artist_id", artistID)
	return c, w
}

// A failed live count must abort completion rather than gate on a stale
// observation.
func TestCompleteAbortsWhenArtworkCountFails(t *testing.T) {
	const artistID = int64(7)
	artworks := &stubArtworks{countErr: errors.New("connection refused")}
	h := newTestHandler(artistID, artworks)
	h.Onboarding.RecordArtworkCount(artistID, 3)

	c, w := newAuthedContext(t, artistID, http.MethodPost, "")
	h.CompleteOnboarding(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500 when the count query fails, got %d", w.Code)
	}
	snap, err := h.Onboarding.State(context.Background(), artistID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if snap.Completed {
		t.Fatal("completion must not go through on a failed count")
	}
}

// Reads tolerate a failed count refresh and fall back to the last
// observation.
func TestStateFallsBackToLastObservedCount(t *testing.T) {
	const artistID = int64(7)
	artworks := &stubArtworks{countErr: errors.New("connection refused")}
	h := newTestHandler(artistID, artworks)
	h.Onboarding.RecordArtworkCount(artistID, 2)

	c, w := newAuthedContext(t, artistID, http.MethodGet, "")
	h.GetOnboardingState(c)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Onboarding struct {
			ArtworkCount int `json:"artwork_count"`
		} `json:"onboarding"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Onboarding.ArtworkCount != 2 {
		t.Fatalf("want last observed count 2, got %d", resp.Onboarding.ArtworkCount)
	}
}

// Artworks added during onboarding publish immediately and count toward the
// gate in the same request.
func TestAddArtworkPublishesAndRecounts(t *testing.T) {
	const artistID = int64(7)
	artworks := &stubArtworks{baseCount: 2}
	h := newTestHandler(artistID, artworks)

	c, w := newAuthedContext(t, artistID, http.MethodPost,
		`{"title":"Harbor at Dusk","price":"120"}`)
	h.AddOnboardingArtwork(c)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(artworks.created) != 1 {
		t.Fatalf("want exactly one created artwork, got %d", len(artworks.created))
	}
	var resp struct {
		PublishedCount int `json:"published_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PublishedCount != 3 {
		t.Fatalf("new piece should count as published, want 3, got %d", resp.PublishedCount)
	}

	snap, err := h.Onboarding.State(context.Background(), artistID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if !snap.Gates.Artworks {
		t.Fatalf("artwork gate should hold at count 3: %+v", snap.Gates)
	}
}
