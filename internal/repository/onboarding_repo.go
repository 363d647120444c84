package repository

import (
	"context"

	"artist_marketplace/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OnboardingRepository persists per-artist onboarding progress. One row per
// artist; rows are created implicitly on first load and never deleted.
type OnboardingRepository struct {
	db *pgxpool.Pool
}

func NewOnboardingRepository(db *pgxpool.Pool) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

const onboardingColumns = `artist_id, current_step, steps_visited, completed, completed_at,
		selected_plan, skipped_plan, plan_active, created_at, updated_at`

// Get loads the artist's onboarding row, creating the default row
// (step 1, not completed, no plan) if none exists yet.
func (r *OnboardingRepository) Get(ctx context.Context, artistID int64) (*domain.OnboardingState, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO onboarding_states (artist_id)
		 VALUES ($1)
		 ON CONFLICT (artist_id) DO NOTHING`,
		artistID,
	)
	if err != nil {
		return nil, mapRowError(err)
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+onboardingColumns+` FROM onboarding_states WHERE artist_id = $1`,
		artistID,
	)
	return scanOnboardingState(row)
}

// Upsert applies a partial update and returns the stored row. Safe to retry:
// repeating the same call yields the same row. current_step can only move
// forward; a write attempting to lower it is clamped to the persisted value.
func (r *OnboardingRepository) Upsert(ctx context.Context, artistID int64, upd domain.OnboardingUpdate) (*domain.OnboardingState, error) {
	// make sure the row exists before updating; an unknown artist id
	// surfaces as ErrNotFound, not a constraint error
	_, err := r.db.Exec(ctx,
		`INSERT INTO onboarding_states (artist_id)
		 VALUES ($1)
		 ON CONFLICT (artist_id) DO NOTHING`,
		artistID,
	)
	if err != nil {
		return nil, mapRowError(err)
	}

	row := r.db.QueryRow(ctx,
		`UPDATE onboarding_states SET
			current_step = GREATEST(current_step, COALESCE($2, current_step)),
			steps_visited = CASE
				WHEN $3::int IS NULL OR steps_visited @> ARRAY[$3::int]
				THEN steps_visited
				ELSE array_append(steps_visited, $3::int)
			END,
			completed = COALESCE($4, completed),
			completed_at = COALESCE($5, completed_at),
			selected_plan = COALESCE($6, selected_plan),
			skipped_plan = COALESCE($7, skipped_plan),
			plan_active = COALESCE($8, plan_active),
			updated_at = now()
		 WHERE artist_id = $1
		 RETURNING `+onboardingColumns,
		artistID, upd.CurrentStep, upd.VisitStep, upd.Completed, upd.CompletedAt,
		upd.SelectedPlan, upd.SkippedPlanSelection, upd.PlanActive,
	)
	return scanOnboardingState(row)
}

func scanOnboardingState(row pgx.Row) (*domain.OnboardingState, error) {
	var st domain.OnboardingState
	var plan *string
	err := row.Scan(
		&st.ArtistID, &st.CurrentStep, &st.StepsVisited, &st.Completed,
		&st.CompletedAt, &plan, &st.SkippedPlanSelection, &st.PlanActive,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		tier := domain.PlanTier(*plan)
		st.SelectedPlan = &tier
	}
	return &st, nil
}
