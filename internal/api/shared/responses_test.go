package shared

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeInvariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp Response
	}{
		{"ok_with_data", OK(map[string]string{"k": "v"}, "done")},
		{"ok_without_data", OK(nil, "")},
		{"fail_with_message", Fail("nope", nil)},
		{"fail_with_errors", Fail("nope", map[string]string{"email": "taken"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// success=true implies errors absent; success=false implies data absent.
			if tt.resp.Success {
				assert.Nil(t, tt.resp.Errors)
			} else {
				assert.Nil(t, tt.resp.Data)
			}
		})
	}
}

func TestEnvelopeSerializationOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	t.Run("ok_minimal", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(OK(nil, ""))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true}`, string(raw))
	})

	t.Run("ok_full", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(OK(map[string]string{"user_id": "42"}, "created"))
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"success":true,"data":{"user_id":"42"},"message":"created"}`,
			string(raw))
	})

	t.Run("fail_never_has_data", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(Fail("already exists", nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"message":"already exists"}`, string(raw))
		assert.NotContains(t, string(raw), "null", "absent fields are omitted, not null")
	})

	t.Run("fail_with_field_errors", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(Fail("bad", map[string]string{"name": "too long"}))
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"success":false,"message":"bad","errors":{"name":"too long"}}`,
			string(raw))
	})
}

func TestValidationErrorShapeIsDistinctFromEnvelope(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(ValidationErrorResponse{
		Error:  "validation failed",
		Fields: map[string]string{"email": "invalid email format"},
	})
	require.NoError(t, err)

	// The validation shape carries no success flag at all; shape
	// validation and business-rule failures are deliberately different
	// surfaces.
	assert.NotContains(t, string(raw), "success")
	assert.JSONEq(t,
		`{"error":"validation failed","fields":{"email":"invalid email format"}}`,
		string(raw))
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 32)
}
