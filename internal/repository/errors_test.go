package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapRowErrorForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "onboarding_states_artist_id_fkey"}
	if got := mapRowError(fk); !errors.Is(got, ErrNotFound) {
		t.Fatalf("fk violation should map to ErrNotFound, got %v", got)
	}
	// wrapped errors must still be recognized
	wrapped := fmt.Errorf("upsert: %w", fk)
	if got := mapRowError(wrapped); !errors.Is(got, ErrNotFound) {
		t.Fatalf("wrapped fk violation should map to ErrNotFound, got %v", got)
	}
}

func TestMapRowErrorPassesThroughOtherErrors(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	if got := mapRowError(unique); errors.Is(got, ErrNotFound) {
		t.Fatal("unique violation must not map to ErrNotFound")
	}
	plain := errors.New("connection refused")
	if got := mapRowError(plain); got != plain {
		t.Fatalf("unrelated errors must pass through unchanged, got %v", got)
	}
	if got := mapRowError(nil); got != nil {
		t.Fatalf("nil must stay nil, got %v", got)
	}
}
