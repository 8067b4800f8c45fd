package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/avelis/users-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind      Kind
		status    int
		retryable bool
	}{
		{KindNotFound, http.StatusNotFound, false},
		{KindAlreadyExists, http.StatusBadRequest, false},
		{KindInvalidData, http.StatusBadRequest, false},
		{KindPermissionDenied, http.StatusForbidden, false},
		{KindStorageConflict, http.StatusConflict, true},
		{KindStorageUnavailable, http.StatusServiceUnavailable, true},
		{KindUnhandled, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.kind.HTTPStatus())
			assert.Equal(t, tt.retryable, tt.kind.Retryable())
		})
	}
}

func TestWrapStoreError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"not_found", store.ErrUserNotFound, KindNotFound},
		{"duplicate", store.ErrEmailExists, KindAlreadyExists},
		{"invalid_entity", store.ErrInvalidEntity, KindInvalidData},
		{"invalid_filter", store.ErrInvalidFilter, KindInvalidData},
		{"conflict", store.ErrStorageConflict, KindStorageConflict},
		{"unavailable", store.ErrStorageUnavailable, KindStorageUnavailable},
		{"unknown", errors.New("disk on fire"), KindUnhandled},
		{"wrapped_sentinel", fmt.Errorf("outer: %w", store.ErrNotFound), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := WrapStoreError("op failed", tt.err)
			assert.Equal(t, tt.expected, wrapped.Kind)
			assert.ErrorIs(t, wrapped, tt.err)
		})
	}
}

func TestErrorUnwrapAndMessage(t *testing.T) {
	t.Parallel()

	inner := errors.New("row gone")
	err := NewError(KindNotFound, "user not found", inner)

	var svcErr *Error
	require.ErrorAs(t, error(err), &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "not_found")
	assert.Contains(t, err.Error(), "user not found")
}
