package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"fx-bothub.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUID(ctx context.Context, uid string) (*entities.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus, completed bool) error {
	args := m.Called(ctx, id, status, completed)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

// Mock KycProfileRepository
type MockKycProfileRepository struct {
	mock.Mock
}

func (m *MockKycProfileRepository) Create(ctx context.Context, profile *entities.KycProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockKycProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KycProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.KycProfile), args.Error(1)
}

func (m *MockKycProfileRepository) ListRequests(ctx context.Context) ([]*entities.KycRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.KycRequest), args.Error(1)
}

func (m *MockKycProfileRepository) GetRequest(ctx context.Context, userID uuid.UUID) (*entities.KycRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.KycRequest), args.Error(1)
}

// Mock BrokerAccountRepository
type MockBrokerAccountRepository struct {
	mock.Mock
}

func (m *MockBrokerAccountRepository) Create(ctx context.Context, account *entities.BrokerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBrokerAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BrokerAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BrokerAccount), args.Error(1)
}

func (m *MockBrokerAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BrokerAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BrokerAccount), args.Error(1)
}

// Mock BotRepository
type MockBotRepository struct {
	mock.Mock
}

func (m *MockBotRepository) Create(ctx context.Context, bot *entities.Bot) error {
	args := m.Called(ctx, bot)
	return args.Error(0)
}

func (m *MockBotRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Bot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bot), args.Error(1)
}

func (m *MockBotRepository) Update(ctx context.Context, bot *entities.Bot) error {
	args := m.Called(ctx, bot)
	return args.Error(0)
}

func (m *MockBotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBotRepository) List(ctx context.Context) ([]*entities.Bot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bot), args.Error(1)
}

func (m *MockBotRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock BotAssignmentRepository
type MockBotAssignmentRepository struct {
	mock.Mock
}

func (m *MockBotAssignmentRepository) Create(ctx context.Context, assignment *entities.BotAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockBotAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BotAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BotAssignment), args.Error(1)
}

func (m *MockBotAssignmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BotAssignment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BotAssignment), args.Error(1)
}

func (m *MockBotAssignmentRepository) List(ctx context.Context) ([]*entities.BotAssignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BotAssignment), args.Error(1)
}

func (m *MockBotAssignmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBotAssignmentRepository) CountByBot(ctx context.Context, botID uuid.UUID) (int64, error) {
	args := m.Called(ctx, botID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBotAssignmentRepository) CountByStatus(ctx context.Context, status entities.ApprovalStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
