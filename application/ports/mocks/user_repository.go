// Package mocks provides mock implementations of the application ports for testing.
package mocks

import (
	"context"
	"sync"

	"user-service/application/ports"
	"user-service/domain/core/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of ports.UserRepository
type MockUserRepository struct {
	mock.Mock
}

var _ ports.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entities.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) Save(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// InMemoryUserRepository keeps users in a map and behaves like the DynamoDB table:
// saves and updates are upserts, deletes of missing keys succeed.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entities.User

	// For testing error scenarios
	shouldFailOn map[string]error
}

var _ ports.UserRepository = (*InMemoryUserRepository)(nil)

// NewInMemoryUserRepository creates an empty in-memory repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:        make(map[uuid.UUID]entities.User),
		shouldFailOn: make(map[string]error),
	}
}

// SetError configures the repository to return err from the named method.
func (m *InMemoryUserRepository) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn[method] = err
}

// Len returns the number of stored users
func (m *InMemoryUserRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

func (m *InMemoryUserRepository) fail(method string) error {
	return m.shouldFailOn[method]
}

func (m *InMemoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entities.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.fail("FindByID"); err != nil {
		return nil, false, err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, false, nil
	}
	return &user, true, nil
}

func (m *InMemoryUserRepository) Save(_ context.Context, user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("Save"); err != nil {
		return err
	}
	m.users[user.ID] = *user
	return nil
}

func (m *InMemoryUserRepository) Update(_ context.Context, user *entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("Update"); err != nil {
		return nil, err
	}
	m.users[user.ID] = *user
	stored := m.users[user.ID]
	return &stored, nil
}

func (m *InMemoryUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("Delete"); err != nil {
		return err
	}
	delete(m.users, id)
	return nil
}
