package repositories

import (
	"context"

	"github.com/google/uuid"
	"fx-bothub.backend/internal/domain/entities"
)

// KycProfileRepository defines KYC submission operations. Profiles are
// written once; review state lives on the owning user.
type KycProfileRepository interface {
	Create(ctx context.Context, profile *entities.KycProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KycProfile, error)
	ListRequests(ctx context.Context) ([]*entities.KycRequest, error)
	GetRequest(ctx context.Context, userID uuid.UUID) (*entities.KycRequest, error)
}
