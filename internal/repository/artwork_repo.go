package repository

import (
	"context"

	"artist_marketplace/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ArtworkRepository struct {
	db *pgxpool.Pool
}

func NewArtworkRepository(db *pgxpool.Pool) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

// CountPublished returns the artist's live published-artwork count. The
// onboarding artwork gate is derived from this, never from wizard bookkeeping.
func (r *ArtworkRepository) CountPublished(ctx context.Context, artistID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM artworks WHERE artist_id = $1 AND published = true`,
		artistID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CreatePublished validates the draft and persists it as a published
// artwork. Onboarding counts published work toward its gate, so pieces added
// there go live immediately. Prices are stored in integer minor units.
func (r *ArtworkRepository) CreatePublished(ctx context.Context, artistID int64, draft domain.ArtworkDraft) (int64, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO artworks (artist_id, title, price_minor, width, height, unit, image_ref, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, true)
		 RETURNING id`,
		artistID, draft.Title, draft.PriceMinor(), draft.Width, draft.Height,
		draft.Unit, draft.ImageRef,
	).Scan(&id)
	if err != nil {
		return 0, mapRowError(err)
	}
	return id, nil
}

// ListByArtist returns the artist's artworks, newest first.
func (r *ArtworkRepository) ListByArtist(ctx context.Context, artistID int64, limit int) ([]*domain.Artwork, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, artist_id, title, price_minor, width, height, unit, image_ref, published, created_at
		 FROM artworks
		 WHERE artist_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		artistID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Artwork
	for rows.Next() {
		var a domain.Artwork
		err := rows.Scan(&a.ID, &a.ArtistID, &a.Title, &a.PriceMinor,
			&a.Width, &a.Height, &a.Unit, &a.ImageRef, &a.Published, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, &a)
	}
	return result, rows.Err()
}
