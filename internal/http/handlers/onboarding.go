package handlers

import (
	"net/http"

	"artist_marketplace/internal/domain"
	"artist_marketplace/internal/logger"
	"artist_marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// GetOnboardingState returns the wizard snapshot for progress indicators,
// refreshing the artwork-count observation first so resumed sessions derive
// gates from live data.
func (h *Handler) GetOnboardingState(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx := c.Request.Context()

	count, err := h.ArtworkRepo.CountPublished(ctx, artistID)
	if err != nil {
		// non-fatal for a read: gates fall back to the last observed count
		logger.Warn("artwork count refresh failed", "artist_id", artistID, "error", err)
	} else {
		h.Onboarding.RecordArtworkCount(artistID, count)
	}

	snap, err := h.Onboarding.State(ctx, artistID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboarding": snap})
}

type AdvanceRequest struct {
	Step    int                  `json:"step" binding:"required,min=1,max=6"`
	Profile *domain.ProfileDraft `json:"profile"`
}

// AdvanceStep saves a completed wizard step.
func (h *Handler) AdvanceStep(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	snap, err := h.Onboarding.Advance(c.Request.Context(), artistID, req.Step, req.Profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboarding": snap})
}

// SkipOnboarding persists the current step and tells the UI to exit the
// wizard.
func (h *Handler) SkipOnboarding(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snap, err := h.Onboarding.Skip(c.Request.Context(), artistID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboarding": snap, "exit": true})
}

type SelectPlanRequest struct {
	Plan   string `json:"plan" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// SelectPlan records the plan choice; paid upgrades get a checkout redirect.
func (h *Handler) SelectPlan(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sel, err := h.Onboarding.SelectPlan(c.Request.Context(), artistID,
		domain.PlanTier(req.Plan), service.PlanAction(req.Action))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"onboarding": sel.State}
	if sel.RedirectURL != "" {
		resp["redirect_url"] = sel.RedirectURL
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteOnboarding finishes the wizard once all requirement gates hold.
func (h *Handler) CompleteOnboarding(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx := c.Request.Context()

	// completion gates on the live count; a stale observation could let a
	// deleted artwork slip through, so a failed count aborts the request
	count, err := h.ArtworkRepo.CountPublished(ctx, artistID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Onboarding.RecordArtworkCount(artistID, count)

	snap, err := h.Onboarding.Complete(ctx, artistID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboarding": snap})
}

// AddOnboardingArtwork creates a draft artwork during the seeding step and
// pushes the refreshed published count into the orchestrator.
func (h *Handler) AddOnboardingArtwork(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var draft domain.ArtworkDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()
	id, err := h.ArtworkRepo.CreatePublished(ctx, artistID, draft)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.ArtworkRepo.CountPublished(ctx, artistID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Onboarding.RecordArtworkCount(artistID, count)

	c.JSON(http.StatusOK, gin.H{"artwork_id": id, "published_count": count})
}
