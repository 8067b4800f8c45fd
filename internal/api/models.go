package api

// Common request structures. Response bodies all use the shared.Response
// envelope, so there are no per-endpoint response structs.

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// UpdateUserRequest defines the payload for the partial update endpoint.
// It is decoded as a raw mapping: the mutable-field allow-list lives in
// the service layer, and fields outside it are deliberately ignored.
type UpdateUserRequest map[string]any
