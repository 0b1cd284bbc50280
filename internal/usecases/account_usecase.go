package usecases

import (
	"context"
	"time"

	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/domain/repositories"
	"fx-bothub.backend/pkg/utils"
)

// AccountUsecase handles a user's broker account declarations
type AccountUsecase struct {
	accountRepo repositories.BrokerAccountRepository
	userRepo    repositories.UserRepository
}

// NewAccountUsecase creates a new account usecase
func NewAccountUsecase(
	accountRepo repositories.BrokerAccountRepository,
	userRepo repositories.UserRepository,
) *AccountUsecase {
	return &AccountUsecase{
		accountRepo: accountRepo,
		userRepo:    userRepo,
	}
}

// Create declares a broker account for the user. Accounts are free-form
// declarations; duplicates are allowed.
func (u *AccountUsecase) Create(ctx context.Context, uid string, input *entities.CreateBrokerAccountInput) (*entities.BrokerAccount, error) {
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	account := &entities.BrokerAccount{
		ID:            utils.GenerateUUIDv7(),
		UserID:        user.ID,
		Broker:        input.Broker,
		AccountType:   input.AccountType,
		AccountNumber: input.AccountNumber,
		CreatedAt:     time.Now(),
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// ListByUser lists the user's broker accounts, oldest first
func (u *AccountUsecase) ListByUser(ctx context.Context, uid string) ([]*entities.BrokerAccount, error) {
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return u.accountRepo.ListByUser(ctx, user.ID)
}
