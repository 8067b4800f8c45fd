package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/avelis/users-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil_error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "sql_no_rows",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name: "unique_violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "users_email_unique_idx",
			},
			expected: store.ErrDuplicate,
		},
		{
			name:     "serialization_failure",
			err:      &pgconn.PgError{Code: serializationFailureCode},
			expected: store.ErrStorageConflict,
		},
		{
			name:     "deadlock_detected",
			err:      &pgconn.PgError{Code: deadlockDetectedCode},
			expected: store.ErrStorageConflict,
		},
		{
			name:     "foreign_key_violation",
			err:      &pgconn.PgError{Code: foreignKeyViolationCode},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "check_violation",
			err:      &pgconn.PgError{Code: checkViolationCode},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "not_null_violation",
			err:      &pgconn.PgError{Code: notNullViolationCode},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "connection_failure_class",
			err:      &pgconn.PgError{Code: "08006"},
			expected: store.ErrStorageUnavailable,
		},
		{
			name:     "bad_connection",
			err:      driver.ErrBadConn,
			expected: store.ErrStorageUnavailable,
		},
		{
			name:     "deadline_exceeded",
			err:      fmt.Errorf("query: %w", context.DeadlineExceeded),
			expected: store.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tt.err)

			if tt.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.expected)
		})
	}
}

func TestMapErrorPassesThroughUnknown(t *testing.T) {
	t.Parallel()

	unknown := errors.New("something else entirely")
	assert.Equal(t, unknown, MapError(unknown))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}
