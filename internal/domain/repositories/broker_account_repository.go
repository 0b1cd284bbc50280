package repositories

import (
	"context"

	"github.com/google/uuid"
	"fx-bothub.backend/internal/domain/entities"
)

// BrokerAccountRepository defines broker account operations
type BrokerAccountRepository interface {
	Create(ctx context.Context, account *entities.BrokerAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BrokerAccount, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BrokerAccount, error)
}
