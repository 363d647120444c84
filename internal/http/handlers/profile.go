package handlers

import (
	"net/http"

	"artist_marketplace/internal/completeness"

	"github.com/gin-gonic/gin"
)

// MyProfile returns the authenticated artist's profile with its
// completeness score.
func (h *Handler) MyProfile(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.ProfileRepo.Get(c.Request.Context(), artistID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      profile,
		"completeness": completeness.Evaluate(*profile),
	})
}

// MyCompleteness returns just the completeness evaluation, used by the
// dashboard progress card.
func (h *Handler) MyCompleteness(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.ProfileRepo.Get(c.Request.Context(), artistID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"completeness": completeness.Evaluate(*profile)})
}

// MyArtworks lists the artist's artworks.
func (h *Handler) MyArtworks(c *gin.Context) {
	artistID, ok := getArtistID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	works, err := h.ArtworkRepo.ListByArtist(c.Request.Context(), artistID, 100)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworks": works})
}
