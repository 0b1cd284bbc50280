package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	"fx-bothub.backend/internal/infrastructure/models"
)

// BrokerAccountRepository implements broker account operations
type BrokerAccountRepository struct {
	db *gorm.DB
}

// NewBrokerAccountRepository creates a new broker account repository
func NewBrokerAccountRepository(db *gorm.DB) *BrokerAccountRepository {
	return &BrokerAccountRepository{db: db}
}

// Create declares a new broker account
func (r *BrokerAccountRepository) Create(ctx context.Context, account *entities.BrokerAccount) error {
	m := &models.BrokerAccount{
		ID:            account.ID,
		UserID:        account.UserID,
		Broker:        account.Broker,
		AccountType:   account.AccountType,
		AccountNumber: account.AccountNumber,
		CreatedAt:     account.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a broker account by ID
func (r *BrokerAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BrokerAccount, error) {
	var m models.BrokerAccount
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// ListByUser lists a user's broker accounts in creation order
func (r *BrokerAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BrokerAccount, error) {
	var accountModels []models.BrokerAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accountModels).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]*entities.BrokerAccount, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountToEntity(&accountModels[i]))
	}
	return accounts, nil
}

func accountToEntity(m *models.BrokerAccount) *entities.BrokerAccount {
	return &entities.BrokerAccount{
		ID:            m.ID,
		UserID:        m.UserID,
		Broker:        m.Broker,
		AccountType:   m.AccountType,
		AccountNumber: m.AccountNumber,
		CreatedAt:     m.CreatedAt,
	}
}
