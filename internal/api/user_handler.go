package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/avelis/users-api/internal/api/shared"
	"github.com/avelis/users-api/internal/platform/logger"
	"github.com/avelis/users-api/internal/service"
	"github.com/avelis/users-api/internal/store"
)

// UserHandler exposes the user operations over HTTP. It decodes and
// shape-validates requests, invokes the service, and wraps outcomes in the
// response envelope. All error-to-status translation happens in
// HandleServiceError.
type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given service.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, map[string]string{"_": "invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, ValidationFields(err))
		return
	}

	data, err := h.userService.Create(r.Context(), service.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusCreated,
		shared.OK(data, "user created successfully"))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithValidationError(w, r, map[string]string{"id": err.Error()})
		return
	}

	data, err := h.userService.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(data, ""))
}

// Update handles PATCH /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithValidationError(w, r, map[string]string{"id": err.Error()})
		return
	}

	var req UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, map[string]string{"_": "invalid request body"})
		return
	}

	result, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK,
		shared.OK(result, result.Message))
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithValidationError(w, r, map[string]string{"id": err.Error()})
		return
	}

	result, err := h.userService.Delete(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK,
		shared.OK(result, result.Message))
}

// List handles GET /api/users. Query parameters become a ListFilter;
// unknown parameter names are rejected with the validation shape.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	params := make(map[string]string)
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	filter, err := store.NewListFilter(params)
	if err != nil {
		log.Debug("rejected list filter", slog.String("error", err.Error()))
		shared.RespondWithValidationError(w, r, map[string]string{"filter": err.Error()})
		return
	}

	data, err := h.userService.List(r.Context(), filter)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(data, ""))
}
