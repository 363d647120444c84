package handlers

import (
	"context"
	"errors"
	"net/http"

	"artist_marketplace/internal/billing"
	"artist_marketplace/internal/domain"
	"artist_marketplace/internal/repository"
	"artist_marketplace/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileStore is the slice of the profile repository the handlers read from.
type ProfileStore interface {
	Get(ctx context.Context, artistID int64) (*domain.Profile, error)
}

// ArtworkStore is the slice of the artwork repository the handlers use.
type ArtworkStore interface {
	CountPublished(ctx context.Context, artistID int64) (int, error)
	CreatePublished(ctx context.Context, artistID int64, draft domain.ArtworkDraft) (int64, error)
	ListByArtist(ctx context.Context, artistID int64, limit int) ([]*domain.Artwork, error)
}

type Handler struct {
	DB            *pgxpool.Pool
	Onboarding    *service.OnboardingService
	ProfileRepo   ProfileStore
	ArtworkRepo   ArtworkStore
	WebhookSecret string
}

func NewHandler(db *pgxpool.Pool, onboarding *service.OnboardingService, webhookSecret string) *Handler {
	return &Handler{
		DB:            db,
		Onboarding:    onboarding,
		ProfileRepo:   repository.NewProfileRepository(db),
		ArtworkRepo:   repository.NewArtworkRepository(db),
		WebhookSecret: webhookSecret,
	}
}

// getArtistID extracts the authenticated artist id set by the JWT middleware.
func getArtistID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	v, ok := c.Get("artist_id")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case int64:
		return id, true
	case float64:
		return int64(id), true
	default:
		return 0, false
	}
}

// respondError maps service and collaborator errors onto HTTP statuses. All
// errors carry a short message and, where retrying makes sense, a retryable
// flag.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGatesNotSatisfied):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "onboarding requirements not satisfied"})
	case errors.Is(err, service.ErrInvalidStep),
		errors.Is(err, service.ErrInvalidPlan),
		errors.Is(err, service.ErrInvalidPlanAction),
		errors.Is(err, billing.ErrInvalidTier),
		errors.Is(err, domain.ErrTooManyMediums),
		errors.Is(err, domain.ErrTooManyStyleTags),
		errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidDimension),
		errors.Is(err, domain.ErrInvalidUnit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, billing.ErrUnauthenticated):
		// distinct so the UI can prompt re-authentication
		c.JSON(http.StatusUnauthorized, gin.H{"error": "billing authentication failed"})
	case errors.Is(err, billing.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "billing provider timed out", "retryable": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "retryable": true})
	}
}
