package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/avelis/users-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// serializationFailureCode is returned when a transaction loses a
	// serialization race and should be retried.
	serializationFailureCode = "40001"

	// deadlockDetectedCode is returned when the server breaks a deadlock
	// by aborting this transaction.
	deadlockDetectedCode = "40P01"

	// connectionExceptionClass is the two-character class prefix for
	// connection-level failures (08000, 08003, 08006, ...).
	connectionExceptionClass = "08"
)

// MapError maps a database error to the corresponding store sentinel.
// It wraps the original error to preserve context for logging.
// Every database operation in this package routes its errors through here
// so the rest of the application only ever sees store sentinels.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	// Transport-level failures: the store could not be reached at all.
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		isNetError(err) {
		return fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case serializationFailureCode, deadlockDetectedCode:
			return fmt.Errorf("%w: %v", store.ErrStorageConflict, err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		}
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == connectionExceptionClass {
			return fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
		}
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isNetError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
