package handlers

import (
	"crypto/subtle"
	"net/http"

	"artist_marketplace/internal/domain"
	"artist_marketplace/internal/logger"

	"github.com/gin-gonic/gin"
)

type billingWebhookRequest struct {
	ArtistID int64  `json:"artist_id" binding:"required"`
	Plan     string `json:"plan" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// BillingWebhook applies the payments provider's out-of-band plan activation
// callback. Until this arrives a selected paid plan is intent only.
func (h *Handler) BillingWebhook(c *gin.Context) {
	secret := c.GetHeader("X-Webhook-Secret")
	if h.WebhookSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(h.WebhookSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req billingWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Status != "active" {
		// ignore non-activation events, acknowledge so the provider
		// stops retrying
		logger.Info("ignoring billing webhook", "status", req.Status, "artist_id", req.ArtistID)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	_, err := h.Onboarding.ConfirmPlanActivated(c.Request.Context(), req.ArtistID, domain.PlanTier(req.Plan))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
