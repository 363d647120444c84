package handlers

import (
	"net/http"
	"strconv"

	"artist_marketplace/internal/domain"
	"artist_marketplace/internal/earnings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetPlans lists the subscription tiers for the pricing page.
func (h *Handler) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": domain.Plans()})
}

// GetSaleSplit renders the per-sale partition for a list price and a plan
// (or an explicit take-home percentage).
func (h *Handler) GetSaleSplit(c *gin.Context) {
	price, err := decimal.NewFromString(c.Query("price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	takeHome := 0
	if planParam := c.Query("plan"); planParam != "" {
		plan, ok := domain.PlanByTier(domain.PlanTier(planParam))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan"})
			return
		}
		takeHome = plan.TakeHomePercent
	} else {
		takeHome, err = strconv.Atoi(c.Query("take_home"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "plan or take_home is required"})
			return
		}
	}

	split, err := earnings.SaleSplit(price, takeHome)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"split": split})
}

// GetMonthlyProjection renders the monthly net estimate used by the pricing
// page calculator.
func (h *Handler) GetMonthlyProjection(c *gin.Context) {
	tier := domain.PlanTier(c.Query("plan"))

	saleValue, err := decimal.NewFromString(c.Query("sale_value"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale_value"})
		return
	}

	artworks, err := strconv.Atoi(c.Query("artworks"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artworks"})
		return
	}

	protection := c.Query("protection_included") == "true"

	proj, err := earnings.MonthlyNet(tier, saleValue, artworks, protection)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projection": proj})
}
