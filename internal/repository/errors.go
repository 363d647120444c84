package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a referenced row does not exist, including
// writes against an artist id with no artists row. Onboarding state lookups
// for a known artist never return it (first touch creates the row).
var ErrNotFound = errors.New("not found")

// foreign key violation
const fkViolationCode = "23503"

// mapRowError translates a foreign-key violation into ErrNotFound so callers
// see "this artist does not exist" instead of a raw constraint error.
func mapRowError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
		return ErrNotFound
	}
	return err
}
