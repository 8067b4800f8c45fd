// Package mocks provides hand-written test doubles for the store interfaces.
package mocks

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"github.com/avelis/users-api/internal/domain"
	"github.com/avelis/users-api/internal/store"
	"github.com/google/uuid"
)

// MemoryUserStore is an in-memory store.UserStore used by service and
// handler tests. It keeps a real unique email index guarded by a mutex, so
// the create/create race behaves like the database's constraint: exactly
// one concurrent writer wins.
//
// Each method can be overridden with its Fn field to inject failures.
type MemoryUserStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*domain.User
	emails map[string]uuid.UUID

	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	ListFn          func(ctx context.Context, filter *store.ListFilter) ([]*domain.User, error)
	CountFn         func(ctx context.Context, filter *store.ListFilter) (int64, error)
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users:  make(map[uuid.UUID]*domain.User),
		emails: make(map[string]uuid.UUID),
	}
}

var _ store.UserStore = (*MemoryUserStore)(nil)

// Create implements store.UserStore.Create.
func (m *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, taken := m.emails[email]; taken {
		return store.ErrEmailExists
	}

	cp := *user
	m.users[user.ID] = &cp
	m.emails[email] = user.ID
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (m *MemoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (m *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.emails[strings.ToLower(email)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *m.users[id]
	return &cp, nil
}

// ExistsByEmail implements store.UserStore.ExistsByEmail.
func (m *MemoryUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.emails[strings.ToLower(email)]
	return ok, nil
}

// Update implements store.UserStore.Update.
func (m *MemoryUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}

	newEmail := strings.ToLower(user.Email)
	oldEmail := strings.ToLower(existing.Email)
	if newEmail != oldEmail {
		if _, taken := m.emails[newEmail]; taken {
			return store.ErrStorageConflict
		}
		delete(m.emails, oldEmail)
		m.emails[newEmail] = user.ID
	}

	user.Touch()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

// Delete implements store.UserStore.Delete.
func (m *MemoryUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return store.ErrUserNotFound
	}

	delete(m.emails, strings.ToLower(user.Email))
	delete(m.users, id)
	return nil
}

// List implements store.UserStore.List.
func (m *MemoryUserStore) List(ctx context.Context, filter *store.ListFilter) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var users []*domain.User
	for _, user := range m.users {
		if matches(user, filter) {
			cp := *user
			users = append(users, &cp)
		}
	}
	return users, nil
}

// Count implements store.UserStore.Count.
func (m *MemoryUserStore) Count(ctx context.Context, filter *store.ListFilter) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, user := range m.users {
		if matches(user, filter) {
			count++
		}
	}
	return count, nil
}

// WithTx implements store.UserStore.WithTx. The in-memory store has no
// transactions; it returns itself.
func (m *MemoryUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// Len reports the number of stored users.
func (m *MemoryUserStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func matches(user *domain.User, filter *store.ListFilter) bool {
	if filter.IsZero() {
		return true
	}
	if filter.EmailContains != "" &&
		!strings.Contains(user.Email, strings.ToLower(filter.EmailContains)) {
		return false
	}
	if filter.NameContains != "" &&
		!strings.Contains(strings.ToLower(user.Name), strings.ToLower(filter.NameContains)) {
		return false
	}
	if filter.IsActive != nil && user.IsActive != *filter.IsActive {
		return false
	}
	if filter.CreatedAfter != nil && user.CreatedAt.Before(*filter.CreatedAfter) {
		return false
	}
	return true
}
