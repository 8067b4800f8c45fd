package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/avelis/users-api/internal/domain"
	"github.com/avelis/users-api/internal/service/auth"
	"github.com/avelis/users-api/internal/store"
	"github.com/google/uuid"
)

// mutableUserFields is the allow-list of fields a partial update may
// modify. Fields outside this set are silently ignored, not errored: the
// lenient-update policy is deliberate and covered by tests.
var mutableUserFields = map[string]struct{}{
	"name":      {},
	"is_active": {},
}

// CreateUserInput carries the validated fields for user creation.
// Shape validation happened at the transport edge; the service only
// enforces business rules on top of it.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
}

// UserData is the outward projection of a stored user: scalar values only,
// identifier in canonical string form, timestamps in RFC3339. It never
// exposes the password hash or a live store handle.
type UserData struct {
	ID        string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UpdateResult confirms a mutation without echoing the whole entity.
type UpdateResult struct {
	ID      string `json:"user_id"`
	Message string `json:"message"`
}

// UserList is the projection of a filtered listing. Total reflects the
// filtered count, not the unfiltered store size.
type UserList struct {
	Items []*UserData `json:"items"`
	Total int64       `json:"total"`
}

// UserService orchestrates the user store and enforces business rules.
// Every failure it reports is a taxonomy *Error; it never returns bare
// sentinel values to the transport layer.
type UserService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a UserService with its dependencies. There are no
// silent defaults: the composition root supplies the store and hasher.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) (*UserService, error) {
	if userStore == nil {
		return nil, errors.New("userStore cannot be nil")
	}
	if hasher == nil {
		return nil, errors.New("hasher cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserService{
		userStore: userStore,
		hasher:    hasher,
		logger:    log.With(slog.String("component", "user_service")),
	}, nil
}

// Create registers a new user. The ExistsByEmail pre-check fails fast with
// a friendly error; the store's unique constraint is the authoritative
// guard, and its rejection is re-surfaced as AlreadyExists so concurrent
// callers see the same outcome as sequential ones.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserData, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, WrapStoreError("failed to check email availability", err)
	}
	if exists {
		return nil, NewError(KindAlreadyExists, "user with this email already exists", nil)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("password hashing failed", slog.String("error", err.Error()))
		return nil, NewError(KindUnhandled, "failed to process credentials", err)
	}

	user, err := domain.NewUser(email, input.Name, hashed)
	if err != nil {
		return nil, NewError(KindInvalidData, err.Error(), err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			// Lost the creation race; same outward answer as the pre-check.
			return nil, NewError(KindAlreadyExists, "user with this email already exists", err)
		}
		return nil, WrapStoreError("failed to create user", err)
	}

	return projectUser(user), nil
}

// Get returns the projection of the user with the given ID.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserData, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, WrapStoreError("failed to get user", err)
	}

	return projectUser(user), nil
}

// GetByEmail returns the projection of the user with the given email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*UserData, error) {
	user, err := s.userStore.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, WrapStoreError("failed to get user by email", err)
	}

	return projectUser(user), nil
}

// Update applies a partial field mapping to the user with the given ID.
// Only allow-listed fields are applied; everything else in the mapping is
// ignored. Returns the ID and a confirmation message.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*UpdateResult, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, WrapStoreError("failed to get user", err)
	}

	changed := false
	for name, value := range fields {
		if _, mutable := mutableUserFields[name]; !mutable {
			continue
		}

		switch name {
		case "name":
			str, ok := value.(string)
			if !ok {
				return nil, NewError(KindInvalidData, "name must be a string", nil)
			}
			user.Name = str
		case "is_active":
			active, ok := value.(bool)
			if !ok {
				return nil, NewError(KindInvalidData, "is_active must be a boolean", nil)
			}
			user.IsActive = active
		}
		changed = true
	}

	if changed {
		if err := s.userStore.Update(ctx, user); err != nil {
			return nil, WrapStoreError("failed to update user", err)
		}
	}

	return &UpdateResult{
		ID:      user.ID.String(),
		Message: "user updated successfully",
	}, nil
}

// Delete removes the user with the given ID. The operation is terminal:
// subsequent lookups by this ID report not found.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (*UpdateResult, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, WrapStoreError("failed to get user", err)
	}

	if err := s.userStore.Delete(ctx, user.ID); err != nil {
		return nil, WrapStoreError("failed to delete user", err)
	}

	return &UpdateResult{
		ID:      user.ID.String(),
		Message: "user deleted successfully",
	}, nil
}

// List returns the users matching the filter along with the filtered count.
func (s *UserService) List(ctx context.Context, filter *store.ListFilter) (*UserList, error) {
	users, err := s.userStore.List(ctx, filter)
	if err != nil {
		return nil, WrapStoreError("failed to list users", err)
	}

	total, err := s.userStore.Count(ctx, filter)
	if err != nil {
		return nil, WrapStoreError("failed to count users", err)
	}

	items := make([]*UserData, 0, len(users))
	for _, user := range users {
		items = append(items, projectUser(user))
	}

	return &UserList{Items: items, Total: total}, nil
}

// projectUser converts a stored user into its wire-safe projection.
func projectUser(user *domain.User) *UserData {
	return &UserData{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
