package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response is the uniform envelope every endpoint answers with.
// Invariant: Success true implies Errors is absent; Success false implies
// Data is absent. Absent optional fields are omitted from the wire form,
// never emitted as nulls.
type Response struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK constructs a success envelope. Pass nil data or an empty message to
// omit either field.
func OK(data any, message string) Response {
	return Response{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// Fail constructs a failure envelope. Pass nil errors to omit the field.
func Fail(message string, errs map[string]string) Response {
	return Response{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}

// ValidationErrorResponse is the shape returned for request-shape
// validation failures. It is deliberately NOT the envelope: field-shape
// problems come from the validator at the transport edge and carry a
// field-keyed mapping, while business-rule failures flow through the
// taxonomy and the envelope.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithEnvelope writes the envelope with the given status code.
func RespondWithEnvelope(w http.ResponseWriter, r *http.Request, status int, resp Response) {
	RespondWithJSON(w, r, status, resp)
}

// RespondWithValidationError writes the field-keyed validation shape with
// status 400.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}
