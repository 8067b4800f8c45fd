package store

import (
	"fmt"
	"strconv"
	"time"
)

// Filterable field names accepted by NewListFilter.
const (
	FilterEmailContains = "email_contains"
	FilterNameContains  = "name_contains"
	FilterIsActive      = "is_active"
	FilterCreatedAfter  = "created_after"
)

// ListFilter narrows a List or Count call. Zero-value fields are not
// applied. Construct via NewListFilter to get unknown-field rejection;
// build the struct directly only in code that already knows the fields.
type ListFilter struct {
	// EmailContains matches users whose email contains the substring.
	EmailContains string

	// NameContains matches users whose name contains the substring.
	NameContains string

	// IsActive, when set, matches users with the given activation state.
	IsActive *bool

	// CreatedAfter matches users created at or after the given instant.
	CreatedAfter *time.Time
}

// NewListFilter builds a ListFilter from raw field→value pairs, as they
// arrive in query parameters. Unknown field names are rejected with
// ErrInvalidFilter rather than silently ignored, so a caller typo never
// degrades into an unfiltered listing.
func NewListFilter(params map[string]string) (*ListFilter, error) {
	f := &ListFilter{}

	for name, value := range params {
		switch name {
		case FilterEmailContains:
			f.EmailContains = value
		case FilterNameContains:
			f.NameContains = value
		case FilterIsActive:
			active, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s must be a boolean, got %q",
					ErrInvalidFilter, name, value)
			}
			f.IsActive = &active
		case FilterCreatedAfter:
			ts, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s must be an RFC3339 timestamp, got %q",
					ErrInvalidFilter, name, value)
			}
			f.CreatedAfter = &ts
		default:
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidFilter, name)
		}
	}

	return f, nil
}

// IsZero reports whether the filter applies no constraints.
func (f *ListFilter) IsZero() bool {
	if f == nil {
		return true
	}
	return f.EmailContains == "" && f.NameContains == "" &&
		f.IsActive == nil && f.CreatedAfter == nil
}
