package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avelis/users-api/internal/store"
)

// Kind is a member of the closed failure-category set every service
// operation reports through. Each kind maps to exactly one HTTP status and
// one retryability answer; both are fixed here at definition time, never
// computed per request.
type Kind int

const (
	// KindUnhandled covers anything outside the closed set. It must be
	// logged with full context before a response is written.
	KindUnhandled Kind = iota

	// KindNotFound means a lookup by identifier failed.
	KindNotFound

	// KindAlreadyExists means a uniqueness precondition was violated.
	KindAlreadyExists

	// KindInvalidData means a business rule beyond field-shape validation failed.
	KindInvalidData

	// KindPermissionDenied means the caller lacks rights for the requested mutation.
	KindPermissionDenied

	// KindStorageConflict means the store rejected a write due to a
	// constraint or serialization race. Retryable after re-checking.
	KindStorageConflict

	// KindStorageUnavailable means the store could not be reached. Retryable.
	KindStorageUnavailable
)

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidData:
		return "invalid_data"
	case KindPermissionDenied:
		return "permission_denied"
	case KindStorageConflict:
		return "storage_conflict"
	case KindStorageUnavailable:
		return "storage_unavailable"
	default:
		return "unhandled"
	}
}

// HTTPStatus returns the fixed outward status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists, KindInvalidData:
		return http.StatusBadRequest
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindStorageConflict:
		return http.StatusConflict
	case KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether a caller may usefully retry the operation.
func (k Kind) Retryable() bool {
	return k == KindStorageConflict || k == KindStorageUnavailable
}

// Error is the taxonomy error every service operation returns on failure.
// Handlers match it with errors.As and translate Kind into a status; no
// other layer is permitted to do that translation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a taxonomy error of the given kind.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WrapStoreError folds a store sentinel into its taxonomy kind. Errors the
// store layer does not classify become KindUnhandled so the dispatcher
// logs them with full context.
func WrapStoreError(message string, err error) *Error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NewError(KindNotFound, message, err)
	case errors.Is(err, store.ErrDuplicate):
		return NewError(KindAlreadyExists, message, err)
	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, store.ErrInvalidFilter):
		return NewError(KindInvalidData, message, err)
	case errors.Is(err, store.ErrStorageConflict):
		return NewError(KindStorageConflict, message, err)
	case errors.Is(err, store.ErrStorageUnavailable):
		return NewError(KindStorageUnavailable, message, err)
	default:
		return NewError(KindUnhandled, message, err)
	}
}
