package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgErrorTranslation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_comment_booking_author"}
	serial := &pgconn.PgError{Code: "40001"}

	t.Run("unique violation", func(t *testing.T) {
		if !isUniqueViolation(dup) {
			t.Error("23505 not recognized as unique violation")
		}
		if isUniqueViolation(serial) || isUniqueViolation(errors.New("boom")) {
			t.Error("non-23505 errors must not match")
		}
	})

	t.Run("serialization failure", func(t *testing.T) {
		if !isSerializationFailure(serial) {
			t.Error("40001 not recognized as serialization failure")
		}
		if isSerializationFailure(dup) || isSerializationFailure(nil) {
			t.Error("non-40001 errors must not match")
		}
	})

	t.Run("wrapped errors unwrap", func(t *testing.T) {
		wrapped := fmt.Errorf("create booking: %w", serial)
		if !isSerializationFailure(wrapped) {
			t.Error("wrapped 40001 not recognized")
		}
	})
}
