package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty_params", func(t *testing.T) {
		t.Parallel()

		filter, err := NewListFilter(nil)
		require.NoError(t, err)
		assert.True(t, filter.IsZero())
	})

	t.Run("known_fields", func(t *testing.T) {
		t.Parallel()

		filter, err := NewListFilter(map[string]string{
			"email_contains": "@example.com",
			"name_contains":  "smith",
			"is_active":      "true",
			"created_after":  "2024-01-02T15:04:05Z",
		})
		require.NoError(t, err)

		assert.Equal(t, "@example.com", filter.EmailContains)
		assert.Equal(t, "smith", filter.NameContains)
		require.NotNil(t, filter.IsActive)
		assert.True(t, *filter.IsActive)
		require.NotNil(t, filter.CreatedAfter)
		assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), filter.CreatedAfter.UTC())
		assert.False(t, filter.IsZero())
	})

	t.Run("unknown_field_rejected", func(t *testing.T) {
		t.Parallel()

		filter, err := NewListFilter(map[string]string{"favorite_color": "blue"})
		assert.ErrorIs(t, err, ErrInvalidFilter)
		assert.ErrorContains(t, err, "favorite_color")
		assert.Nil(t, filter)
	})

	t.Run("bad_boolean_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewListFilter(map[string]string{"is_active": "maybe"})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("bad_timestamp_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewListFilter(map[string]string{"created_after": "yesterday"})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})
}

func TestStoreErrorWrapping(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.False(t, IsNotFoundError(ErrEmailExists))
}
