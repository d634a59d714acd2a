package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"intern-hub.backend/internal/domain/entities"
	"intern-hub.backend/internal/domain/repositories"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	args := m.Called(ctx, f)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return f(ctx)
}

// Mock AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateIdentity(ctx context.Context, id uuid.UUID, upd entities.IdentityUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockAccountRepository) SetApproval(ctx context.Context, id uuid.UUID, approved, rejected bool) error {
	args := m.Called(ctx, id, approved, rejected)
	return args.Error(0)
}

func (m *MockAccountRepository) List(ctx context.Context, filter repositories.AccountListFilter) ([]*entities.Account, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Account), args.Get(1).(int64), args.Error(2)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) Replace(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) SetReview(ctx context.Context, accountID uuid.UUID, approved, rejected bool) error {
	args := m.Called(ctx, accountID, approved, rejected)
	return args.Error(0)
}

func (m *MockProfileRepository) ListStudents(ctx context.Context, filter repositories.StudentListFilter) ([]*entities.Account, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockProfileRepository) Search(ctx context.Context, filter repositories.DirectorySearchFilter) ([]*entities.Account, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockProfileRepository) Stats(ctx context.Context, since time.Time) (*repositories.DirectoryStats, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.DirectoryStats), args.Error(1)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyApproved(ctx context.Context, n repositories.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotifier) NotifyRejected(ctx context.Context, n repositories.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
