package handlers

import (
	"context"

	"github.com/google/uuid"
	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
)

type userRepoStub struct {
	createFn          func(ctx context.Context, user *entities.User) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByUIDFn        func(ctx context.Context, uid string) (*entities.User, error)
	updateStatusFn    func(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error
	updateKYCStatusFn func(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus, completed bool) error
	listFn            func(ctx context.Context, search string) ([]*entities.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByUID(ctx context.Context, uid string) (*entities.User, error) {
	if s.getByUIDFn != nil {
		return s.getByUIDFn(ctx, uid)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *userRepoStub) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus, completed bool) error {
	if s.updateKYCStatusFn != nil {
		return s.updateKYCStatusFn(ctx, id, status, completed)
	}
	return nil
}

func (s *userRepoStub) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (s *userRepoStub) List(ctx context.Context, search string) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search)
	}
	return []*entities.User{}, nil
}

func (s *userRepoStub) Count(context.Context) (int64, error) { return 0, nil }

type kycRepoStub struct {
	createFn       func(ctx context.Context, profile *entities.KycProfile) error
	getByUserIDFn  func(ctx context.Context, userID uuid.UUID) (*entities.KycProfile, error)
	listRequestsFn func(ctx context.Context) ([]*entities.KycRequest, error)
	getRequestFn   func(ctx context.Context, userID uuid.UUID) (*entities.KycRequest, error)
}

func (s *kycRepoStub) Create(ctx context.Context, profile *entities.KycProfile) error {
	if s.createFn != nil {
		return s.createFn(ctx, profile)
	}
	return nil
}

func (s *kycRepoStub) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KycProfile, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *kycRepoStub) ListRequests(ctx context.Context) ([]*entities.KycRequest, error) {
	if s.listRequestsFn != nil {
		return s.listRequestsFn(ctx)
	}
	return []*entities.KycRequest{}, nil
}

func (s *kycRepoStub) GetRequest(ctx context.Context, userID uuid.UUID) (*entities.KycRequest, error) {
	if s.getRequestFn != nil {
		return s.getRequestFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

type accountRepoStub struct {
	createFn     func(ctx context.Context, account *entities.BrokerAccount) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.BrokerAccount, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*entities.BrokerAccount, error)
}

func (s *accountRepoStub) Create(ctx context.Context, account *entities.BrokerAccount) error {
	if s.createFn != nil {
		return s.createFn(ctx, account)
	}
	return nil
}

func (s *accountRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.BrokerAccount, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *accountRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BrokerAccount, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return []*entities.BrokerAccount{}, nil
}

type botRepoStub struct {
	createFn  func(ctx context.Context, bot *entities.Bot) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.Bot, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	listFn    func(ctx context.Context) ([]*entities.Bot, error)
}

func (s *botRepoStub) Create(ctx context.Context, bot *entities.Bot) error {
	if s.createFn != nil {
		return s.createFn(ctx, bot)
	}
	return nil
}

func (s *botRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Bot, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *botRepoStub) Update(context.Context, *entities.Bot) error { return nil }

func (s *botRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *botRepoStub) List(ctx context.Context) ([]*entities.Bot, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Bot{}, nil
}

func (s *botRepoStub) Count(context.Context) (int64, error) { return 0, nil }

type assignmentRepoStub struct {
	createFn        func(ctx context.Context, assignment *entities.BotAssignment) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*entities.BotAssignment, error)
	listByUserFn    func(ctx context.Context, userID uuid.UUID) ([]*entities.BotAssignment, error)
	listFn          func(ctx context.Context) ([]*entities.BotAssignment, error)
	updateStatusFn  func(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error
	countByBotFn    func(ctx context.Context, botID uuid.UUID) (int64, error)
	countByStatusFn func(ctx context.Context, status entities.ApprovalStatus) (int64, error)
}

func (s *assignmentRepoStub) Create(ctx context.Context, assignment *entities.BotAssignment) error {
	if s.createFn != nil {
		return s.createFn(ctx, assignment)
	}
	return nil
}

func (s *assignmentRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.BotAssignment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *assignmentRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BotAssignment, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return []*entities.BotAssignment{}, nil
}

func (s *assignmentRepoStub) List(ctx context.Context) ([]*entities.BotAssignment, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.BotAssignment{}, nil
}

func (s *assignmentRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *assignmentRepoStub) CountByBot(ctx context.Context, botID uuid.UUID) (int64, error) {
	if s.countByBotFn != nil {
		return s.countByBotFn(ctx, botID)
	}
	return 0, nil
}

func (s *assignmentRepoStub) CountByStatus(ctx context.Context, status entities.ApprovalStatus) (int64, error) {
	if s.countByStatusFn != nil {
		return s.countByStatusFn(ctx, status)
	}
	return 0, nil
}

type adminRepoStub struct {
	getByEmailFn func(ctx context.Context, email string) (*entities.Admin, error)
}

func (s *adminRepoStub) Create(context.Context, *entities.Admin) error { return nil }

func (s *adminRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}
