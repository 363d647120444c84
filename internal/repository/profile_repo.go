package repository

import (
	"context"
	"errors"

	"artist_marketplace/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `artist_id, display_name, photo_url, bio, mediums, style_tags,
		city, phone, portfolio_url, social_handle, accepts_commissions,
		price_range, availability_notes, created_at, updated_at`

// Get returns the artist's profile.
func (r *ProfileRepository) Get(ctx context.Context, artistID int64) (*domain.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE artist_id = $1`,
		artistID,
	)
	return scanProfile(row)
}

// Create inserts an empty profile row for a new artist.
func (r *ProfileRepository) Create(ctx context.Context, artistID int64, displayName string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (artist_id, display_name)
		 VALUES ($1, $2)
		 ON CONFLICT (artist_id) DO NOTHING`,
		artistID, displayName,
	)
	return mapRowError(err)
}

// UpdateFields merges a draft into the profile inside a transaction so a
// concurrent save cannot interleave between read and write.
func (r *ProfileRepository) UpdateFields(ctx context.Context, artistID int64, draft domain.ProfileDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE artist_id = $1 FOR UPDATE`,
		artistID,
	)
	p, err := scanProfile(row)
	if err != nil {
		return err
	}

	p.Apply(draft)

	_, err = tx.Exec(ctx,
		`UPDATE profiles SET
			display_name = $2, photo_url = $3, bio = $4, mediums = $5,
			style_tags = $6, city = $7, phone = $8, portfolio_url = $9,
			social_handle = $10, accepts_commissions = $11, price_range = $12,
			availability_notes = $13, updated_at = now()
		 WHERE artist_id = $1`,
		artistID, p.DisplayName, p.PhotoURL, p.Bio, p.Mediums, p.StyleTags,
		p.City, p.Phone, p.PortfolioURL, p.SocialHandle, p.AcceptsCommissions,
		p.PriceRange, p.AvailabilityNotes,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ArtistID, &p.DisplayName, &p.PhotoURL, &p.Bio, &p.Mediums,
		&p.StyleTags, &p.City, &p.Phone, &p.PortfolioURL, &p.SocialHandle,
		&p.AcceptsCommissions, &p.PriceRange, &p.AvailabilityNotes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
